package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ReadHTMLTable extracts the first <table> of an HTML page. The first row provides
// the header; each following row is a record. Both read th and td cells in
// document order, so row headers stay in their column.
func ReadHTMLTable(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing HTML: %v", ErrUnreadable, err)
	}

	tableSel := doc.Find("table").First()
	if tableSel.Length() == 0 {
		return nil, fmt.Errorf("%w: no table found in HTML", ErrUnreadable)
	}

	table := &Table{}
	tableSel.Find("tr").Each(func(_ int, row *goquery.Selection) {
		// Header row: first row of the table
		if table.Header == nil {
			row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				table.Header = append(table.Header, strings.TrimSpace(cell.Text()))
			})
			return
		}

		cells := row.Find("th, td")
		if cells.Length() == 0 {
			return
		}
		record := make([]Cell, 0, cells.Length())
		cells.Each(func(_ int, cell *goquery.Selection) {
			record = append(record, TextCell(strings.TrimSpace(cell.Text())))
		})
		table.Rows = append(table.Rows, record)
	})

	if len(table.Header) == 0 {
		return nil, fmt.Errorf("%w: table has no header row", ErrUnreadable)
	}

	return table, nil
}
