// Package editbuf holds the working text of a cell being edited.
//
// The caret counts grapheme clusters, so combining marks, emoji sequences and
// wide characters move and delete as a single unit.
package editbuf

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

// Buffer is the in-progress edit of a single cell.
type Buffer struct {
	target   workbook.Address
	original string

	clusters []string
	caret    int
}

// New starts an edit of target with the cell's current text.
// The caret starts at the end of the text.
func New(target workbook.Address, original string) *Buffer {
	b := &Buffer{target: target, original: original}
	b.clusters = split(original)
	b.caret = len(b.clusters)
	return b
}

// Target returns the cell being edited.
func (b *Buffer) Target() workbook.Address {
	return b.target
}

// Original returns the text the cell held when editing began.
func (b *Buffer) Original() string {
	return b.original
}

// Text returns the working text.
func (b *Buffer) Text() string {
	return strings.Join(b.clusters, "")
}

// Len returns the working text length in grapheme clusters.
func (b *Buffer) Len() int {
	return len(b.clusters)
}

// Caret returns the caret position in grapheme clusters.
func (b *Buffer) Caret() int {
	return b.caret
}

// CaretColumn returns the display width of the text before the caret.
func (b *Buffer) CaretColumn() int {
	return uniseg.StringWidth(strings.Join(b.clusters[:b.caret], ""))
}

// Changed reports whether the working text differs from the original.
func (b *Buffer) Changed() bool {
	return b.Text() != b.original
}

// Insert adds text at the caret and moves the caret past it.
func (b *Buffer) Insert(text string) {
	if text == "" {
		return
	}
	before := strings.Join(b.clusters[:b.caret], "") + text
	after := strings.Join(b.clusters[b.caret:], "")
	b.clusters = split(before + after)
	// Text may join the cluster after it (e.g. a combining mark); keep the
	// caret on a cluster boundary.
	b.caret = min(uniseg.GraphemeClusterCount(before), len(b.clusters))
}

// Backspace removes the cluster before the caret.
func (b *Buffer) Backspace() bool {
	if b.caret == 0 {
		return false
	}
	b.clusters = append(b.clusters[:b.caret-1], b.clusters[b.caret:]...)
	b.caret--
	return true
}

// Delete removes the cluster under the caret.
func (b *Buffer) Delete() bool {
	if b.caret >= len(b.clusters) {
		return false
	}
	b.clusters = append(b.clusters[:b.caret], b.clusters[b.caret+1:]...)
	return true
}

// Left moves the caret one cluster left.
func (b *Buffer) Left() {
	if b.caret > 0 {
		b.caret--
	}
}

// Right moves the caret one cluster right.
func (b *Buffer) Right() {
	if b.caret < len(b.clusters) {
		b.caret++
	}
}

// Home moves the caret to the start.
func (b *Buffer) Home() {
	b.caret = 0
}

// End moves the caret past the last cluster.
func (b *Buffer) End() {
	b.caret = len(b.clusters)
}

func split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}
