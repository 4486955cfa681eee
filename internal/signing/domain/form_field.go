package domain

import (
	"time"

	"signflow-server/internal/infra/utils"
	"signflow-server/internal/signing/geometry"
)

type FieldType string

const (
	FieldTypeSignature FieldType = "signature"
	FieldTypeInitials  FieldType = "initials"
	FieldTypeText      FieldType = "text"
	FieldTypeDate      FieldType = "date"
	FieldTypeCheckbox  FieldType = "checkbox"
)

func (ft FieldType) Valid() bool {
	switch ft {
	case FieldTypeSignature, FieldTypeInitials, FieldTypeText, FieldTypeDate, FieldTypeCheckbox:
		return true
	default:
		return false
	}
}

// MinimumDimensions is the pixel size a field of this type gets when placed
// with a plain click, and the floor it can never be resized below in a single
// click-placement. Sizes are chosen so every field stays legible at scale 1.
func (ft FieldType) MinimumDimensions() geometry.Size {
	switch ft {
	case FieldTypeSignature:
		return geometry.Size{Width: 200, Height: 60}
	case FieldTypeInitials:
		return geometry.Size{Width: 100, Height: 50}
	case FieldTypeText:
		return geometry.Size{Width: 150, Height: 40}
	case FieldTypeDate:
		return geometry.Size{Width: 120, Height: 40}
	case FieldTypeCheckbox:
		return geometry.Size{Width: 30, Height: 30}
	default:
		return geometry.Size{Width: 150, Height: 50}
	}
}

const (
	// clickDragThreshold separates an accidental wiggle from a deliberate
	// drag. Below it, on both axes, the gesture counts as a click.
	clickDragThreshold = 5.0

	// drawnMinWidth/Height floor deliberately drawn rectangles, independent
	// of the per-type click-placement minimums.
	drawnMinWidth  = 50.0
	drawnMinHeight = 30.0
)

// ResolveDrawnRect turns a pointer-down/pointer-up pair into the pixel
// rectangle for a new field. A sub-threshold drag is treated as a click and
// yields the per-type minimum anchored at the start point; a real drag yields
// the bounding box floored at drawnMinWidth x drawnMinHeight.
func ResolveDrawnRect(start, end geometry.Point, ft FieldType) geometry.Rect {
	box := geometry.BoundingBox(start, end)
	if box.Width < clickDragThreshold && box.Height < clickDragThreshold {
		minimum := ft.MinimumDimensions()
		return geometry.Rect{X: start.X, Y: start.Y, Width: minimum.Width, Height: minimum.Height}
	}

	box.Width = max(box.Width, drawnMinWidth)
	box.Height = max(box.Height, drawnMinHeight)
	return box
}

// FieldIdentity tracks the two-phase identity of a field: locally created
// fields carry a temporary id until the server acknowledges creation, after
// which the server id becomes the current one. Both ids keep resolving to the
// same record.
type FieldIdentity struct {
	TempID   string
	ServerID string
}

func NewPendingIdentity() FieldIdentity {
	return FieldIdentity{TempID: "local-" + utils.GenerateUUID()}
}

func CommittedIdentity(serverID string) FieldIdentity {
	return FieldIdentity{ServerID: serverID}
}

func (i FieldIdentity) IsPending() bool {
	return i.ServerID == ""
}

// Current returns the id downstream consumers should key on: the server id
// once committed, the temporary id before that.
func (i FieldIdentity) Current() string {
	if i.ServerID != "" {
		return i.ServerID
	}
	return i.TempID
}

// Matches reports whether the given id refers to this identity, under either
// of its two names.
func (i FieldIdentity) Matches(id string) bool {
	return (i.ServerID != "" && i.ServerID == id) || (i.TempID != "" && i.TempID == id)
}

func (i *FieldIdentity) Commit(serverID string) {
	i.ServerID = serverID
}

// FormField is a rectangular region on one page, assigned to one signer, to
// be completed during signing. Position is stored in percentages of the page
// rendering surface so placement survives zoom and client differences.
type FormField struct {
	Identity         FieldIdentity
	DocumentID       ID
	FieldType        FieldType
	PageNumber       int
	AssignedSignerID ID
	Position         geometry.PercentRect
	Required         bool
	Value            string
	Completed        bool
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (f *FormField) ID() string {
	return f.Identity.Current()
}

// Validate enforces the placement invariants: a signer assignment, a valid
// 1-indexed page, positive dimensions and a rectangle fully inside the page.
func (f *FormField) Validate() error {
	if !f.FieldType.Valid() {
		return ErrUnknownFieldType
	}
	if f.AssignedSignerID == "" {
		return ErrFieldSignerRequired
	}
	if f.PageNumber < 1 {
		return ErrFieldPageInvalid
	}
	if f.Position.Width <= 0 || f.Position.Height <= 0 {
		return ErrFieldRectDegenerate
	}
	if f.Position.X < 0 || f.Position.Y < 0 ||
		f.Position.X+f.Position.Width > 100 || f.Position.Y+f.Position.Height > 100 {
		return ErrFieldOutOfBounds
	}
	return nil
}

// UpdatePosition applies a resize/move commit. The page never changes.
func (f *FormField) UpdatePosition(position geometry.PercentRect) error {
	previous := f.Position
	f.Position = geometry.ClampPercent(position)
	if err := f.Validate(); err != nil {
		f.Position = previous
		return err
	}
	f.UpdatedAt = time.Now()
	return nil
}

// Complete records the signer's value. A field can be completed once, only by
// its assigned signer; text and date fields require a non-empty value.
func (f *FormField) Complete(signerID ID, value string) error {
	if f.Completed {
		return ErrFieldAlreadyCompleted
	}
	if f.AssignedSignerID != signerID {
		return ErrFieldWrongSigner
	}
	if value == "" && f.FieldTypeRequiresValue() {
		return ErrFieldValueRequired
	}
	now := time.Now()
	f.Value = value
	f.Completed = true
	f.CompletedAt = &now
	f.UpdatedAt = now
	return nil
}

// FieldTypeRequiresValue reports whether completion must carry literal
// content. Signature, initials and checkbox fields get a drawn mark instead.
func (f *FormField) FieldTypeRequiresValue() bool {
	return f.FieldType == FieldTypeText || f.FieldType == FieldTypeDate
}

func NewFormFieldBuilder() *formFieldBuilder {
	return &formFieldBuilder{}
}

type formFieldBuilder struct {
	actions []formFieldHandler
}

type formFieldHandler func(f *FormField) error

func (b *formFieldBuilder) WithDocument(value ID) *formFieldBuilder {
	b.actions = append(b.actions, func(f *FormField) error {
		f.DocumentID = value
		return nil
	})
	return b
}

func (b *formFieldBuilder) WithFieldType(value FieldType) *formFieldBuilder {
	b.actions = append(b.actions, func(f *FormField) error {
		f.FieldType = value
		return nil
	})
	return b
}

func (b *formFieldBuilder) WithPageNumber(value int) *formFieldBuilder {
	b.actions = append(b.actions, func(f *FormField) error {
		f.PageNumber = value
		return nil
	})
	return b
}

func (b *formFieldBuilder) WithAssignedSigner(value ID) *formFieldBuilder {
	b.actions = append(b.actions, func(f *FormField) error {
		f.AssignedSignerID = value
		return nil
	})
	return b
}

func (b *formFieldBuilder) WithPosition(value geometry.PercentRect) *formFieldBuilder {
	b.actions = append(b.actions, func(f *FormField) error {
		f.Position = value
		return nil
	})
	return b
}

func (b *formFieldBuilder) WithRequired(value bool) *formFieldBuilder {
	b.actions = append(b.actions, func(f *FormField) error {
		f.Required = value
		return nil
	})
	return b
}

func (b *formFieldBuilder) Build() (FormField, error) {
	now := time.Now()
	result := FormField{
		Identity:  CommittedIdentity(utils.GenerateUUID()),
		Required:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, a := range b.actions {
		if err := a(&result); err != nil {
			return FormField{}, err
		}
	}
	if err := result.Validate(); err != nil {
		return FormField{}, err
	}
	return result, nil
}
