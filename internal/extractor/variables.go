package extractor

import "regexp"

// Variable is a declared operation variable. Type keeps a trailing "!"
// verbatim and is not otherwise interpreted.
type Variable struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

var variableRe = regexp.MustCompile(`\$(\w+)\s*:\s*([^\s,)!]+!?)`)

// ExtractVariables pulls $name: Type declarations out of an operation in
// left-to-right order. Repeated names are reported each time they appear.
func ExtractVariables(operation string) []Variable {
	matches := variableRe.FindAllStringSubmatch(operation, -1)
	if len(matches) == 0 {
		return nil
	}
	vars := make([]Variable, 0, len(matches))
	for _, m := range matches {
		vars = append(vars, Variable{Name: m[1], Type: m[2]})
	}
	return vars
}
