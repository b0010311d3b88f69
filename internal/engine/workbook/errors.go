package workbook

import "errors"

// Document model errors.
var (
	// ErrSheetNotFound indicates a sheet index or name does not exist.
	ErrSheetNotFound = errors.New("sheet not found")

	// ErrDuplicateSheet indicates a sheet name is already in use.
	ErrDuplicateSheet = errors.New("duplicate sheet name")

	// ErrInvalidSheetName indicates a name Excel would reject.
	ErrInvalidSheetName = errors.New("invalid sheet name")

	// ErrLastSheet indicates an attempt to remove the only sheet.
	ErrLastSheet = errors.New("cannot remove the last sheet")
)
