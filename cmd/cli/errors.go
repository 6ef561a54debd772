package main

import "fmt"

type inputError struct {
	lineNo int
	line   string
	reason string
}

func (e *inputError) Error() string {
	return fmt.Sprintf("input %d (%q): %s", e.lineNo, e.line, e.reason)
}
