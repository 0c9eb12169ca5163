package registry

import (
	"fmt"
	"strings"
)

var scalarTypes = map[string]string{
	"GLenum":     "Enum",
	"GLbitfield": "Bitfield",
	"GLuint":     "Uint",
	"GLint":      "Int",
	"GLsizei":    "Sizei",
	"GLboolean":  "Boolean",
	"GLfloat":    "Float",
	"GLintptr":   "Intptr",
	"GLsizeiptr": "Sizeiptr",
	"GLchar":     "Char",
	"GLubyte":    "Ubyte",
	"GLint64":    "Int64",
	"GLuint64":   "Uint64",
	"GLsync":     "Sync",
}

// Identifiers that cannot be used as Go parameter names as they are.
var reservedParams = map[string]string{
	"type":   "xtype",
	"func":   "xfunc",
	"range":  "xrange",
	"string": "xstring",
}

// GoType maps a C type from the registry to the Go type used by package
// gles. "void" maps to the empty string.
func GoType(ctype string) (string, error) {
	t := strings.ReplaceAll(ctype, "const", " ")
	stars := strings.Count(t, "*")
	base := strings.TrimSpace(strings.ReplaceAll(t, "*", " "))
	if base == "void" {
		if stars == 0 {
			return "", nil
		}
		return strings.Repeat("*", stars-1) + "unsafe.Pointer", nil
	}
	gt, ok := scalarTypes[base]
	if !ok {
		return "", fmt.Errorf("unknown type %q", ctype)
	}
	return strings.Repeat("*", stars) + gt, nil
}

// GoParamName renames parameters that collide with Go keywords or
// predeclared identifiers.
func GoParamName(name string) string {
	if r, ok := reservedParams[name]; ok {
		return r
	}
	return name
}
