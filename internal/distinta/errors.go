package distinta

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRosterRequest no usable surname was submitted.
	ErrEmptyRosterRequest = errors.New("no surnames submitted")
	// ErrTemplateStructure the template lacks the team sheet.
	ErrTemplateStructure = errors.New("template structure")
)

// SerializationError writing the populated workbook failed; no artifact is
// returned.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialize team sheet: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
