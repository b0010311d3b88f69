package workbook

import (
	"fmt"
	"strings"
)

// DefaultSheetName is the name given to the sheet of a fresh workbook.
const DefaultSheetName = "Sheet1"

// maxSheetNameLen is Excel's sheet name limit.
const maxSheetNameLen = 31

// Workbook is an ordered collection of sheets with a dirty flag.
// A Workbook is not safe for concurrent use; the session owns it exclusively.
type Workbook struct {
	sheets []*Sheet
	widths WidthPolicy
	dirty  bool
}

// New creates an empty workbook with no sheets.
func New() *Workbook {
	return &Workbook{widths: DefaultWidthPolicy()}
}

// NewDefault creates a clean workbook holding a single empty sheet.
func NewDefault() *Workbook {
	wb := New()
	wb.sheets = append(wb.sheets, newSheet(DefaultSheetName, wb))
	return wb
}

// SetWidthPolicy replaces the column width bounds used by all sheets.
// Stored widths are not rewritten.
func (wb *Workbook) SetWidthPolicy(p WidthPolicy) {
	wb.widths = p.normalized()
}

// WidthPolicy returns the column width bounds.
func (wb *Workbook) WidthPolicy() WidthPolicy {
	return wb.widths
}

// SheetCount returns the number of sheets.
func (wb *Workbook) SheetCount() int {
	return len(wb.sheets)
}

// Sheet returns the sheet at index, or nil if out of range.
func (wb *Workbook) Sheet(index int) *Sheet {
	if index < 0 || index >= len(wb.sheets) {
		return nil
	}
	return wb.sheets[index]
}

// SheetByName returns the sheet with the given name (case-insensitive) and its index.
func (wb *Workbook) SheetByName(name string) (*Sheet, int) {
	for i, s := range wb.sheets {
		if strings.EqualFold(s.name, name) {
			return s, i
		}
	}
	return nil, -1
}

// SheetNames returns sheet names in order.
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.sheets))
	for i, s := range wb.sheets {
		names[i] = s.name
	}
	return names
}

// AddSheet appends a new empty sheet.
func (wb *Workbook) AddSheet(name string) (*Sheet, error) {
	if err := wb.checkName(name, -1); err != nil {
		return nil, err
	}
	s := newSheet(name, wb)
	wb.sheets = append(wb.sheets, s)
	wb.dirty = true
	return s, nil
}

// RemoveSheet deletes the sheet at index. The last remaining sheet cannot be removed.
func (wb *Workbook) RemoveSheet(index int) error {
	if index < 0 || index >= len(wb.sheets) {
		return fmt.Errorf("%w: index %d", ErrSheetNotFound, index)
	}
	if len(wb.sheets) == 1 {
		return ErrLastSheet
	}
	wb.sheets[index].book = nil
	wb.sheets = append(wb.sheets[:index], wb.sheets[index+1:]...)
	wb.dirty = true
	return nil
}

// RenameSheet changes the name of the sheet at index.
func (wb *Workbook) RenameSheet(index int, name string) error {
	if index < 0 || index >= len(wb.sheets) {
		return fmt.Errorf("%w: index %d", ErrSheetNotFound, index)
	}
	if wb.sheets[index].name == name {
		return nil
	}
	if err := wb.checkName(name, index); err != nil {
		return err
	}
	wb.sheets[index].name = name
	wb.dirty = true
	return nil
}

// Dirty reports whether the workbook has unsaved mutations.
func (wb *Workbook) Dirty() bool {
	return wb.dirty
}

// MarkClean clears the dirty flag after a successful save or load.
func (wb *Workbook) MarkClean() {
	wb.dirty = false
}

func (wb *Workbook) checkName(name string, self int) error {
	if err := ValidateSheetName(name); err != nil {
		return err
	}
	if _, idx := wb.SheetByName(name); idx >= 0 && idx != self {
		return fmt.Errorf("%w: %q", ErrDuplicateSheet, name)
	}
	return nil
}

// ValidateSheetName applies Excel's sheet naming rules.
func ValidateSheetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidSheetName)
	}
	if len([]rune(name)) > maxSheetNameLen {
		return fmt.Errorf("%w: %q longer than %d characters", ErrInvalidSheetName, name, maxSheetNameLen)
	}
	if strings.ContainsAny(name, `:\/?*[]`) {
		return fmt.Errorf("%w: %q contains one of : \\ / ? * [ ]", ErrInvalidSheetName, name)
	}
	if strings.HasPrefix(name, "'") || strings.HasSuffix(name, "'") {
		return fmt.Errorf("%w: %q starts or ends with an apostrophe", ErrInvalidSheetName, name)
	}
	return nil
}
