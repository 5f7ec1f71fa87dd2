package openapi

import (
	"strings"

	"github.com/iancoleman/strcase"
	v3high "github.com/pb33f/libopenapi/datamodel/high/v3"
)

const apiPrefix = "/api/"

// SynthesizeOperationID builds a deterministic operation id from the
// HTTP method, the path template and the declared parameters.
//
// The id starts with the lower-cased method, followed by every literal
// path segment in PascalCase up to (but not including) the first
// placeholder segment. If any parameters are declared, the literal "By"
// is appended, followed by the PascalCased name of every path parameter
// in declaration order:
//
//	GET /api/users/{id} + [id in path] -> getUsersById
func SynthesizeOperationID(method, pathTemplate string, parameters []*v3high.Parameter) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(method))

	rest := pathTemplate
	if len(rest) >= len(apiPrefix) && strings.EqualFold(rest[:len(apiPrefix)], apiPrefix) {
		rest = rest[len(apiPrefix):]
	}

	for _, segment := range strings.Split(rest, "/") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		// Nothing at or after the first placeholder contributes.
		if strings.HasPrefix(segment, "{") {
			break
		}
		b.WriteString(strcase.ToCamel(segment))
	}

	if len(parameters) == 0 {
		return b.String()
	}

	b.WriteString("By")
	for _, param := range parameters {
		if param == nil || param.In != "path" || param.Name == "" {
			continue
		}
		b.WriteString(strcase.ToCamel(param.Name))
	}

	return b.String()
}
