package rendering

import "fmt"

// ParseError reports a malformed line while parsing rendered output
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}
