package record

import (
	"errors"
	"fmt"

	"github.com/carlosqueiroz/rtp-connect/token"
)

var (
	ErrFormat         = token.ErrFormat
	ErrUnknownKeyword = fmt.Errorf("%w: unknown keyword", ErrFormat)
	ErrEmptyLine      = fmt.Errorf("%w: empty line", ErrFormat)

	ErrInsufficientElements = errors.New("insufficient elements")
	ErrHierarchy            = errors.New("hierarchy error")
	ErrKeyword              = errors.New("invalid keyword")
	ErrLength               = errors.New("length mismatch")
	ErrUnknownAttr          = errors.New("unknown attribute")
	ErrVersion              = errors.New("invalid version")
)

// CardinalityErr reports a line with fewer elements than its record
// type requires.
type CardinalityErr struct {
	Keyword Keyword
	Min     int
	Got     int
}

func (e *CardinalityErr) Error() string {
	return fmt.Sprintf("%s: expected at least %d elements for %s, got %d",
		ErrInsufficientElements, e.Min, e.Keyword, e.Got)
}

func (e *CardinalityErr) Unwrap() error {
	return ErrInsufficientElements
}

// HierarchyErr reports that no record of keyword Want could be found
// walking up from a record of keyword From.  From is empty when there
// was no candidate at all.
type HierarchyErr struct {
	From   Keyword
	Want   Keyword
	Reason string
}

func (e *HierarchyErr) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", ErrHierarchy, e.Reason)
	}
	if e.From == "" {
		return fmt.Sprintf("%s: no %s ancestor (no parent context)", ErrHierarchy, e.Want)
	}
	return fmt.Sprintf("%s: no %s ancestor above %s", ErrHierarchy, e.Want, e.From)
}

func (e *HierarchyErr) Unwrap() error {
	return ErrHierarchy
}

// LengthErr reports a fixed length attribute assigned the wrong number
// of elements.
type LengthErr struct {
	Attr string
	Want int
	Got  int
}

func (e *LengthErr) Error() string {
	return fmt.Sprintf("%s: %s expects %d elements, got %d", ErrLength, e.Attr, e.Want, e.Got)
}

func (e *LengthErr) Unwrap() error {
	return ErrLength
}
