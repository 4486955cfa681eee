package flattening

import (
	"fmt"
	"io"
	"log/slog"

	"signflow-server/internal/infra/pdf"
	"signflow-server/internal/signing/domain"
	"signflow-server/internal/signing/geometry"
)

const (
	stampFontSize    = 12
	minStampFontSize = 4

	// Helvetica's average glyph advance relative to the font size.
	glyphAspect = 0.5
)

// BurnInRect converts a stored percent position into page points for burn-in.
// Stored positions are top-left anchored; PDF content is placed from the
// bottom-left corner, so the vertical coordinate is flipped against the page
// height.
func BurnInRect(page pdf.PageDimensions, position geometry.PercentRect) geometry.Rect {
	surface := geometry.Size{Width: page.Width, Height: page.Height}
	r := geometry.PercentToPixels(surface, position)
	r.Y = geometry.FlipYForBurnIn(page.Height, r.Y, r.Height)
	return r
}

// SkippedField records one field left out of the flattened output and why.
type SkippedField struct {
	FieldID    string
	PageNumber int
	Reason     string
}

// Plan is the full set of stamps for one document plus the fields that could
// not be rendered. Skipped fields never abort a flatten; they are aggregated
// and reported so the caller can decide whether the result is acceptable.
type Plan struct {
	Stamps  []pdf.Stamp
	Skipped []SkippedField
}

// BuildPlan maps every completed field onto a page stamp. Fields referencing
// pages outside the document and fields with nothing to render are skipped,
// not fatal.
func BuildPlan(doc pdf.Document, fields []domain.FormField) Plan {
	var plan Plan
	for _, field := range fields {
		if !field.Completed {
			plan.Skipped = append(plan.Skipped, SkippedField{
				FieldID:    field.ID(),
				PageNumber: field.PageNumber,
				Reason:     "field not completed",
			})
			continue
		}

		page, err := doc.PageDimensions(field.PageNumber)
		if err != nil {
			plan.Skipped = append(plan.Skipped, SkippedField{
				FieldID:    field.ID(),
				PageNumber: field.PageNumber,
				Reason:     "page out of range",
			})
			continue
		}

		text := renderText(field)
		if text == "" {
			plan.Skipped = append(plan.Skipped, SkippedField{
				FieldID:    field.ID(),
				PageNumber: field.PageNumber,
				Reason:     "no content to render",
			})
			continue
		}

		rect := BurnInRect(page, field.Position)
		plan.Stamps = append(plan.Stamps, pdf.Stamp{
			PageNumber: field.PageNumber,
			Text:       text,
			X:          rect.X,
			Y:          rect.Y,
			FontSize:   fitFontSize(rect, text),
		})
	}
	return plan
}

// fitFontSize shrinks the stamp font until the rendered text fits the burn-in
// rectangle. The rectangle's height bounds the font directly; its width bounds
// the font through the average glyph advance.
func fitFontSize(rect geometry.Rect, text string) int {
	size := float64(stampFontSize)
	if h := rect.Height * 0.72; h < size {
		size = h
	}
	if n := len([]rune(text)); n > 0 {
		if w := rect.Width / (glyphAspect * float64(n)); w < size {
			size = w
		}
	}
	if size < minStampFontSize {
		size = minStampFontSize
	}
	return int(size)
}

// renderText chooses what a completed field contributes to the page. Checkbox
// fields render a mark regardless of value; everything else renders the
// captured value.
func renderText(field domain.FormField) string {
	if field.FieldType == domain.FieldTypeCheckbox {
		return "X"
	}
	return field.Value
}

// Report summarizes one flatten run.
type Report struct {
	PageCount int
	Stamped   int
	Skipped   []SkippedField
}

type Flattener struct {
	processor pdf.Processor
}

func NewFlattener(processor pdf.Processor) *Flattener {
	return &Flattener{processor: processor}
}

// Flatten burns every completed field into the source document and writes the
// result. The returned report carries the skipped fields; an error is returned
// only when the document itself cannot be read or written.
func (f *Flattener) Flatten(rs io.ReadSeeker, w io.Writer, fields []domain.FormField) (Report, error) {
	doc, err := f.processor.Open(rs)
	if err != nil {
		return Report{}, fmt.Errorf("opening document: %w", err)
	}

	plan := BuildPlan(doc, fields)
	for _, skipped := range plan.Skipped {
		slog.Warn("field skipped during flatten",
			slog.String("field_id", skipped.FieldID),
			slog.Int("page", skipped.PageNumber),
			slog.String("reason", skipped.Reason))
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return Report{}, fmt.Errorf("rewinding document: %w", err)
	}

	if len(plan.Stamps) > 0 {
		if err := f.processor.Stamp(rs, w, plan.Stamps); err != nil {
			return Report{}, fmt.Errorf("flattening document: %w", err)
		}
	} else {
		if _, err := io.Copy(w, rs); err != nil {
			return Report{}, fmt.Errorf("copying document: %w", err)
		}
	}

	return Report{
		PageCount: doc.PageCount(),
		Stamped:   len(plan.Stamps),
		Skipped:   plan.Skipped,
	}, nil
}
