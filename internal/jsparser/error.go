package jsparser

import (
	"fmt"

	"github.com/cwbudde/jsklve/internal/jsast"
)

// ParseError is a single syntax error encountered while parsing,
// carrying the location the spec's error adapter requires.
type ParseError struct {
	Message string
	Pos     jsast.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %s", e.Message, e.Pos)
}
