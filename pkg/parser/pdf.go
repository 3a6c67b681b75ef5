package parser

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ReadPDFText reads a PDF file and returns its text content, one line per
// visual line of text, pages in order
func ReadPDFText(pdfPath string) (string, error) {
	// Open the PDF file
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("%w: opening PDF: %v", ErrUnreadable, err)
	}
	defer f.Close()

	var lines []string
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageLines, err := pageTextLines(page)
		if err != nil {
			return "", fmt.Errorf("%w: extracting text from page %d: %v", ErrUnreadable, i, err)
		}
		lines = append(lines, pageLines...)
	}

	return strings.Join(lines, "\n"), nil
}

// pageTextLines groups the glyphs of a page by baseline, top to bottom, and
// orders each line left to right. Glyphs sharing a position keep stream order.
func pageTextLines(page pdf.Page) (lines []string, err error) {
	// the pdf package panics on malformed content streams
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, errors.New(fmt.Sprint(r))
		}
	}()

	byLine := make(map[float64][]pdf.Text)
	var baselines []float64
	for _, t := range page.Content().Text {
		// TJ arrays end with a synthetic newline glyph
		if t.S == "\n" {
			continue
		}
		y := math.Round(t.Y)
		if _, ok := byLine[y]; !ok {
			baselines = append(baselines, y)
		}
		byLine[y] = append(byLine[y], t)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(baselines)))

	for _, y := range baselines {
		glyphs := byLine[y]
		sort.SliceStable(glyphs, func(i, j int) bool { return glyphs[i].X < glyphs[j].X })

		var b strings.Builder
		for _, g := range glyphs {
			b.WriteString(g.S)
		}
		lines = append(lines, b.String())
	}
	return lines, nil
}

// ReadPDFTable reads a PDF export of the match table, one comma-separated record per line
func ReadPDFTable(pdfPath string) (*Table, error) {
	text, err := ReadPDFText(pdfPath)
	if err != nil {
		return nil, err
	}
	return parseDelimitedText(text)
}
