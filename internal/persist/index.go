package persist

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dshills/xlgrid/internal/engine/workbook"
)

const (
	rootRelsPath          = "_rels/.rels"
	relTypeOfficeDocument = "/officeDocument"
)

type xmlRelationships struct {
	Items []struct {
		ID     string `xml:"Id,attr"`
		Type   string `xml:"Type,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

type xmlWorkbook struct {
	Sheets []struct {
		Name string `xml:"name,attr"`
		RID  string `xml:"id,attr"`
	} `xml:"sheets>sheet"`
}

// cellIndex maps a sheet name to the addresses its worksheet part stores a
// <c> element for, in document order. Only those addresses can carry a
// value, formula or cell style.
type cellIndex map[string][]workbook.Address

// indexCells streams every worksheet part of the package at filename and
// records the cells it stores.
func indexCells(filename string) (cellIndex, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[strings.TrimPrefix(f.Name, "/")] = f
	}

	wbPath := "xl/workbook.xml"
	var root xmlRelationships
	if err := decodePart(parts, rootRelsPath, &root); err == nil {
		for _, rel := range root.Items {
			if strings.HasSuffix(rel.Type, relTypeOfficeDocument) {
				wbPath = strings.TrimPrefix(rel.Target, "/")
				break
			}
		}
	}

	var book xmlWorkbook
	if err := decodePart(parts, wbPath, &book); err != nil {
		return nil, err
	}
	var rels xmlRelationships
	relsPath := path.Join(path.Dir(wbPath), "_rels", path.Base(wbPath)+".rels")
	if err := decodePart(parts, relsPath, &rels); err != nil {
		return nil, err
	}
	targets := make(map[string]string, len(rels.Items))
	for _, rel := range rels.Items {
		target := rel.Target
		if strings.HasPrefix(target, "/") {
			target = strings.TrimPrefix(target, "/")
		} else {
			target = path.Join(path.Dir(wbPath), target)
		}
		targets[rel.ID] = target
	}

	idx := make(cellIndex, len(book.Sheets))
	for _, s := range book.Sheets {
		part, ok := parts[targets[s.RID]]
		if !ok {
			return nil, fmt.Errorf("sheet %q: worksheet part not found", s.Name)
		}
		addrs, err := scanSheet(part)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", s.Name, err)
		}
		idx[s.Name] = addrs
	}
	return idx, nil
}

func decodePart(parts map[string]*zip.File, name string, v any) error {
	f, ok := parts[name]
	if !ok {
		return fmt.Errorf("missing part %s", name)
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	return xml.NewDecoder(rc).Decode(v)
}

// scanSheet walks the <row> and <c> elements of a worksheet part. Rows and
// cells without an r attribute follow the previous one.
func scanSheet(part *zip.File) ([]workbook.Address, error) {
	rc, err := part.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var addrs []workbook.Address
	row, col := 0, 0
	d := xml.NewDecoder(rc)
	for {
		tok, err := d.Token()
		if err == io.EOF {
			return addrs, nil
		}
		if err != nil {
			return nil, err
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "row":
			row++
			col = 0
			if r := attr(start, "r"); r != "" {
				n, err := strconv.Atoi(r)
				if err != nil {
					return nil, fmt.Errorf("row %q: %w", r, err)
				}
				row = n
			}
		case "c":
			col++
			if ref := attr(start, "r"); ref != "" {
				c, r, err := excelize.CellNameToCoordinates(ref)
				if err != nil {
					return nil, err
				}
				row, col = r, c
			}
			if row <= workbook.MaxRows && col <= workbook.MaxColumns {
				addrs = append(addrs, workbook.NewAddress(row, col))
			}
			if err := d.Skip(); err != nil {
				return nil, err
			}
		}
	}
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
