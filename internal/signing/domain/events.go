package domain

// Typed events carried over the internal broker. Viewer signals come from the
// PDF rendering surface; field events fan out to websocket subscribers and
// the audit stream; finalize events drive the flattening worker.

type PageChangedEvent struct {
	Page int
}

type ScaleChangedEvent struct {
	Scale float64
}

type FieldCreatedEvent struct {
	Field FormField
}

type FieldUpdatedEvent struct {
	Field FormField
}

type FieldDeletedEvent struct {
	DocumentID ID
	FieldID    string
	PageNumber int
}

type FieldCompletedEvent struct {
	Field FormField
}

type DocumentFinalizeRequestedEvent struct {
	DocumentID ID
}

type DocumentFinalizedEvent struct {
	DocumentID   ID
	FinalizedKey string
	SkippedCount int
}

type DocumentFinalizeFailedEvent struct {
	DocumentID ID
	Reason     string
}
