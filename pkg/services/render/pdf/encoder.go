package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
	"github.com/safetyworks/depot-report/pkg/services/render"
)

const fontFamily = "Helvetica"

// Encoder turns a rendered page sequence into a PDF byte stream. Layout is
// fully decided upstream; the encoder draws each text run at its position
// and never reflows.
type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Encode(pages []render.Page, w io.Writer) error {
	doc := gofpdf.New("P", "pt", "A4", "")
	doc.SetAutoPageBreak(false, 0)

	// A PDF needs at least one page to be well formed.
	if len(pages) == 0 {
		doc.AddPage()
	}

	for _, page := range pages {
		doc.AddPage()
		for _, op := range page.Ops {
			doc.SetFont(fontFamily, string(op.Style), op.Size)
			doc.Text(op.X, op.Y, op.Text)
		}
	}

	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func (e *Encoder) EncodeBytes(pages []render.Page) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Encode(pages, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
