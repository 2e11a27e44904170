package exchart

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input could not be parsed as a workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrUnsupportedFormat indicates the file extension is not supported.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// LoadError represents an error while loading one sheet.
type LoadError struct {
	SheetName string
	Component string // "rows", "csv"
	Err       error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(sheetName, component string, err error) *LoadError {
	return &LoadError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
