package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/dshills/xlgrid/internal/engine/workbook"
	"github.com/dshills/xlgrid/internal/persist"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info file.xlsx",
		Short: "Summarize the sheets of a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); err != nil {
				return fmt.Errorf("file not found: %s", args[0])
			}
			wb, err := persist.Load(args[0])
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), args[0], wb)
			return nil
		},
	}
}

// sheetSummary is one row of the info table.
type sheetSummary struct {
	Name     string
	Used     string
	Cells    int
	Styled   int
	Formulas int
	Widths   string
}

func summarize(s *workbook.Sheet) sheetSummary {
	sum := sheetSummary{Name: s.Name(), Used: "-", Widths: "-"}
	if maxRow, maxCol := s.UsedRange(); maxRow > 0 && maxCol > 0 {
		sum.Used = "A1:" + workbook.Address{Row: maxRow, Col: maxCol}.String()
	}
	for _, a := range s.Addresses() {
		c, _ := s.Cell(a)
		if c.Value != "" || c.IsFormula() {
			sum.Cells++
		}
		if c.Style != workbook.TagNone {
			sum.Styled++
		}
		if c.IsFormula() {
			sum.Formulas++
		}
	}

	widths := s.CustomWidths()
	if len(widths) > 0 {
		cols := make([]int, 0, len(widths))
		for col := range widths {
			cols = append(cols, col)
		}
		sort.Ints(cols)
		parts := make([]string, len(cols))
		for i, col := range cols {
			parts[i] = workbook.ColumnName(col) + "=" + strconv.Itoa(widths[col])
		}
		sum.Widths = strings.Join(parts, " ")
	}
	return sum
}

func printInfo(w io.Writer, path string, wb *workbook.Workbook) {
	bold := color.New(color.Bold).SprintFunc()
	faint := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(w, "%s %s\n", bold(path), faint(fmt.Sprintf("(%d sheet(s))", wb.SheetCount())))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("SHEET"), bold("USED"), bold("CELLS"), bold("STYLED"), bold("FORMULAS"), bold("WIDTHS"))
	for i := 0; i < wb.SheetCount(); i++ {
		s := summarize(wb.Sheet(i))
		name := s.Name
		if i == 0 {
			name = color.CyanString(name)
		}
		tbl.AddRow(name, s.Used, s.Cells, s.Styled, s.Formulas, s.Widths)
	}
	fmt.Fprintln(w, tbl)
}
