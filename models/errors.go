package models

import (
	"errors"
	"fmt"
)

// ErrInvalidAmount reports a money string with no usable digits.
var ErrInvalidAmount = errors.New("invalid money amount")

// ErrInvalidPercent reports a malformed VAT percentage.
var ErrInvalidPercent = errors.New("invalid VAT percent")

// TemplateOpenError reports a template archive that could not be opened at
// all. Unlike per-part parse failures this is fatal and propagates to the
// caller.
type TemplateOpenError struct {
	Path string
	Err  error
}

func (e *TemplateOpenError) Error() string {
	return fmt.Sprintf("cannot open template %s: %v", e.Path, e.Err)
}

func (e *TemplateOpenError) Unwrap() error {
	return e.Err
}

// PartParseWarning records an archive part that failed to parse during
// repair or the formatting pass. The part is passed through unchanged and
// the render continues.
type PartParseWarning struct {
	Part string
	Err  error
}

func (w PartParseWarning) String() string {
	return fmt.Sprintf("part %s left unmodified: %v", w.Part, w.Err)
}

// RenderError wraps any unexpected failure inside the render pipeline.
type RenderError struct {
	Stage string
	Err   error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed at %s: %v", e.Stage, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
