package pdf

import (
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PageDimensions is a page's media box size in PDF points.
type PageDimensions struct {
	Width  float64
	Height float64
}

// Stamp is one piece of text burned onto a page. Coordinates are in PDF
// points with the origin at the page's bottom-left corner.
type Stamp struct {
	PageNumber int
	Text       string
	X          float64
	Y          float64
	FontSize   int
}

type Document interface {
	PageCount() int
	PageDimensions(pageNumber int) (PageDimensions, error)
}

type Processor interface {
	Open(rs io.ReadSeeker) (Document, error)
	Stamp(rs io.ReadSeeker, w io.Writer, stamps []Stamp) error
}

var _ Processor = (*PDFCPUProcessor)(nil)

type PDFCPUProcessor struct {
	conf *model.Configuration
}

func NewProcessor() *PDFCPUProcessor {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFCPUProcessor{conf: conf}
}

func (p *PDFCPUProcessor) Open(rs io.ReadSeeker) (Document, error) {
	ctx, err := api.ReadContext(rs, p.conf)
	if err != nil {
		return nil, fmt.Errorf("reading pdf context: %w", err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("resolving page count: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("resolving page dimensions: %w", err)
	}

	return &pdfcpuDocument{pageCount: ctx.PageCount, dims: dims}, nil
}

// Stamp writes a copy of the document with every stamp rendered on top of its
// page's content. Stamps for pages outside the document are the caller's
// responsibility to filter out beforehand.
func (p *PDFCPUProcessor) Stamp(rs io.ReadSeeker, w io.Writer, stamps []Stamp) error {
	marks := make(map[int][]*model.Watermark)
	for _, stamp := range stamps {
		wm, err := api.TextWatermark(stamp.Text, stampDescription(stamp), true, false, types.POINTS)
		if err != nil {
			return fmt.Errorf("building stamp for page %d: %w", stamp.PageNumber, err)
		}
		marks[stamp.PageNumber] = append(marks[stamp.PageNumber], wm)
	}

	if err := api.AddWatermarksSliceMap(rs, w, marks, p.conf); err != nil {
		return fmt.Errorf("stamping document: %w", err)
	}
	return nil
}

func stampDescription(stamp Stamp) string {
	return fmt.Sprintf(
		"font:Helvetica, points:%d, pos:bl, off:%.2f %.2f, scale:1 abs, rot:0, fillcol:#1a1a1a",
		stamp.FontSize, stamp.X, stamp.Y,
	)
}

type pdfcpuDocument struct {
	pageCount int
	dims      []types.Dim
}

func (d *pdfcpuDocument) PageCount() int {
	return d.pageCount
}

func (d *pdfcpuDocument) PageDimensions(pageNumber int) (PageDimensions, error) {
	if pageNumber < 1 || pageNumber > len(d.dims) {
		return PageDimensions{}, fmt.Errorf("page %d out of range (document has %d pages)", pageNumber, len(d.dims))
	}
	dim := d.dims[pageNumber-1]
	return PageDimensions{Width: dim.Width, Height: dim.Height}, nil
}
