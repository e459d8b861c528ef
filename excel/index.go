package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"kastelo.dev/bookindex"
)

// IndexXLSX renders rows as a workbook with a single sheet named sheet:
// a header row followed by one row per page reference. All values are
// written as strings and Description cells are left empty.
func IndexXLSX(rows []bookindex.Row, sheet string) ([]byte, error) {
	xlsx := excelize.NewFile()
	defer xlsx.Close()

	_ = xlsx.SetAppProps(&excelize.AppProperties{
		Application: "kastelo.dev/bookindex",
		Company:     "Kastelo AB",
	})

	def := xlsx.GetSheetName(xlsx.GetActiveSheetIndex())
	if sheet != "" && sheet != def {
		if err := xlsx.SetSheetName(def, sheet); err != nil {
			return nil, err
		}
	} else {
		sheet = def
	}

	if err := xlsx.SetSheetRow(sheet, cell('A', 1), &bookindex.Header); err != nil {
		return nil, err
	}
	for i, r := range rows {
		vals := []interface{}{r.Topic, nil, r.Page, r.Book}
		if r.Description != "" {
			vals[1] = r.Description
		}
		if err := xlsx.SetSheetRow(sheet, cell('A', i+2), &vals); err != nil {
			return nil, err
		}
	}

	buf, err := xlsx.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadRows returns the data rows of the first sheet of the workbook at
// path, skipping the header. Short rows are padded to four columns.
func ReadRows(path string) ([]bookindex.Row, error) {
	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no sheets", path)
	}
	cells, err := xlsx.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, nil
	}

	rows := make([]bookindex.Row, 0, len(cells)-1)
	for _, c := range cells[1:] {
		for len(c) < len(bookindex.Header) {
			c = append(c, "")
		}
		rows = append(rows, bookindex.Row{Topic: c[0], Description: c[1], Page: c[2], Book: c[3]})
	}
	return rows, nil
}

func cell(col rune, row int) string {
	return fmt.Sprintf("%c%d", col, row)
}
