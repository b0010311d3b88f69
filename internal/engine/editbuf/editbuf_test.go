package editbuf

import (
	"testing"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

var a1 = workbook.Address{Row: 1, Col: 1}

func TestNew(t *testing.T) {
	b := New(a1, "abc")

	if b.Text() != "abc" {
		t.Errorf("Text() = %q, want abc", b.Text())
	}
	if b.Caret() != 3 {
		t.Errorf("Caret() = %d, want 3", b.Caret())
	}
	if b.Changed() {
		t.Error("Changed() = true for a fresh buffer")
	}
	if b.Target() != a1 || b.Original() != "abc" {
		t.Errorf("Target/Original = %v/%q", b.Target(), b.Original())
	}
}

func TestInsertAtCaret(t *testing.T) {
	b := New(a1, "X")
	b.Insert("Y")
	if b.Text() != "XY" {
		t.Errorf("Text() = %q, want XY", b.Text())
	}

	b.Home()
	b.Insert(">")
	if b.Text() != ">XY" {
		t.Errorf("Text() = %q, want >XY", b.Text())
	}
	if b.Caret() != 1 {
		t.Errorf("Caret() = %d, want 1", b.Caret())
	}
	if !b.Changed() {
		t.Error("Changed() = false after insert")
	}
}

func TestBackspaceAndDelete(t *testing.T) {
	b := New(a1, "abcd")

	if !b.Backspace() {
		t.Fatal("Backspace() = false")
	}
	if b.Text() != "abc" {
		t.Errorf("Text() = %q, want abc", b.Text())
	}

	b.Home()
	if b.Backspace() {
		t.Error("Backspace() at start should report false")
	}
	if !b.Delete() {
		t.Fatal("Delete() = false")
	}
	if b.Text() != "bc" {
		t.Errorf("Text() = %q, want bc", b.Text())
	}

	b.End()
	if b.Delete() {
		t.Error("Delete() at end should report false")
	}
}

func TestCaretBounds(t *testing.T) {
	b := New(a1, "ab")
	b.Right()
	if b.Caret() != 2 {
		t.Errorf("Caret() = %d, want 2", b.Caret())
	}
	b.Left()
	b.Left()
	b.Left()
	if b.Caret() != 0 {
		t.Errorf("Caret() = %d, want 0", b.Caret())
	}
}

func TestGraphemeClusters(t *testing.T) {
	// "e" + combining acute, then a family emoji sequence.
	text := "e\u0301\U0001F468\u200D\U0001F469\u200D\U0001F467"
	b := New(a1, text)

	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
	b.Backspace()
	if b.Text() != "e\u0301" {
		t.Errorf("Text() = %q, want e+acute", b.Text())
	}
	b.Left()
	b.Delete()
	if b.Text() != "" {
		t.Errorf("Text() = %q, want empty", b.Text())
	}
}

func TestInsertCombiningMark(t *testing.T) {
	b := New(a1, "e")
	b.Insert("\u0301")

	if b.Len() != 1 {
		t.Errorf("Len() = %d, want 1", b.Len())
	}
	if b.Caret() != 1 {
		t.Errorf("Caret() = %d, want 1", b.Caret())
	}
}

func TestCaretColumnWide(t *testing.T) {
	b := New(a1, "日本")
	if got := b.CaretColumn(); got != 4 {
		t.Errorf("CaretColumn() = %d, want 4", got)
	}
	b.Left()
	if got := b.CaretColumn(); got != 2 {
		t.Errorf("CaretColumn() = %d, want 2", got)
	}
}
