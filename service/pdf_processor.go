package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/r3r-repasses/fipehunter/dto"
)

// ErrScannedDocument means the first page had no extractable text: the file
// is almost certainly a scanned image, which this service cannot read.
var ErrScannedDocument = errors.New("document has no extractable text")

// minFirstPageText is the threshold below which a first page counts as
// empty. Vector PDFs from the known sources always clear it easily.
const minFirstPageText = 10

// cellGap is the horizontal distance (in PDF points) between two text runs
// that starts a new cell when rebuilding a row grid.
const cellGap = 12.0

type PDFProcessor interface {
	ExtractDocument(pdfData []byte) (*dto.RawDocument, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractDocument decodes a price-list PDF into per-page text blocks and
// cell grids. The grid is rebuilt from text-run positions: runs on the same
// row separated by more than cellGap belong to different columns.
func (p *pdfProcessor) ExtractDocument(pdfData []byte) (*dto.RawDocument, error) {
	if _, err := api.PageCount(bytes.NewReader(pdfData), model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("invalid pdf: %w", err)
	}

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	doc := &dto.RawDocument{}
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			doc.Pages = append(doc.Pages, dto.Page{})
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			// One broken page must not abort the document.
			doc.Pages = append(doc.Pages, dto.Page{})
			continue
		}

		var textBuilder strings.Builder
		var grid [][]string
		for _, row := range rows {
			cells := groupRowCells(row.Content)
			if len(cells) == 0 {
				continue
			}
			grid = append(grid, cells)
			textBuilder.WriteString(strings.Join(cells, " "))
			textBuilder.WriteString("\n")
		}

		doc.Pages = append(doc.Pages, dto.Page{
			Text: textBuilder.String(),
			Rows: grid,
		})
	}

	if len(doc.Pages) == 0 || len(strings.TrimSpace(doc.Pages[0].Text)) < minFirstPageText {
		return nil, ErrScannedDocument
	}
	return doc, nil
}

// groupRowCells merges adjacent text runs into cells, splitting where the
// horizontal gap exceeds cellGap.
func groupRowCells(words []pdf.Text) []string {
	var cells []string
	var current strings.Builder
	var prevEnd float64

	for i, word := range words {
		if word.S == "" {
			continue
		}
		if i > 0 && current.Len() > 0 && word.X-prevEnd > cellGap {
			cells = append(cells, strings.TrimSpace(current.String()))
			current.Reset()
		}
		current.WriteString(word.S)
		prevEnd = word.X + word.W
	}
	if current.Len() > 0 {
		cells = append(cells, strings.TrimSpace(current.String()))
	}

	// Drop empty cells so classification never sees blanks.
	out := cells[:0]
	for _, c := range cells {
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}
