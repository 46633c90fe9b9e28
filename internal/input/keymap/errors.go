package keymap

import (
	"errors"
	"fmt"
)

// Errors reported while turning a keymap document into bindings.
var (
	// ErrMalformedToken indicates an attribute value that does not parse.
	ErrMalformedToken = errors.New("malformed token")

	// ErrUnsupportedSelector indicates a non-literal selector value.
	ErrUnsupportedSelector = errors.New("unsupported selector")

	// ErrMissingRequiredAttribute indicates a control without an action.
	ErrMissingRequiredAttribute = errors.New("missing required attribute")

	// ErrUnknownFormat indicates a file extension with no decoder.
	ErrUnknownFormat = errors.New("unknown keymap format")
)

// AttrError locates a bad attribute within a document.
type AttrError struct {
	// Control is the index of the control in the document, or -1 when
	// the attributes were parsed outside a document.
	Control int
	// Action is the control's action, if it has one.
	Action string
	// Key is the index of the key within the control, or -1 when the
	// error concerns the control itself.
	Key int
	// Attr is the attribute name.
	Attr string
	// Value is the offending value, if any.
	Value any
	// Err is ErrMalformedToken, ErrUnsupportedSelector or
	// ErrMissingRequiredAttribute, possibly wrapped with detail.
	Err error
}

// Error implements the error interface.
func (e *AttrError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Attr, e.Err)
	if e.Value != nil {
		msg = fmt.Sprintf("%s = %#v: %v", e.Attr, e.Value, e.Err)
	}
	if e.Control < 0 {
		return msg
	}
	where := fmt.Sprintf("control %d", e.Control)
	if e.Action != "" {
		where += fmt.Sprintf(" (%s)", e.Action)
	}
	if e.Key >= 0 {
		where += fmt.Sprintf(" key %d", e.Key)
	}
	return where + ": " + msg
}

// Unwrap returns the underlying error.
func (e *AttrError) Unwrap() error {
	return e.Err
}

// ParseError represents an error while decoding a keymap file.
type ParseError struct {
	// Path is the file path, or "<reader>".
	Path string
	// Err is the decoder's error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
