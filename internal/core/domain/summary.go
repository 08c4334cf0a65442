package domain

// SummaryKind selects the shape of a document summary.
type SummaryKind string

// Available summary kinds.
const (
	// SummaryShort asks for at most two sentences.
	SummaryShort SummaryKind = "short"

	// SummaryDetailed asks for 6-8 lines, optionally bulleted.
	SummaryDetailed SummaryKind = "detailed"

	// SummaryTabular asks for a table of at most 6-7 points.
	SummaryTabular SummaryKind = "tabular"
)

// IsValid returns true if the summary kind is recognised.
func (k SummaryKind) IsValid() bool {
	switch k {
	case SummaryShort, SummaryDetailed, SummaryTabular:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SummaryKind) String() string {
	return string(k)
}

// SummaryKinds returns all summary kinds in display order.
func SummaryKinds() []SummaryKind {
	return []SummaryKind{SummaryShort, SummaryDetailed, SummaryTabular}
}

// SummaryRequest describes one summarisation call.
type SummaryRequest struct {
	// DocumentName selects the session document to summarise.
	DocumentName string

	// Kind selects the summary shape.
	Kind SummaryKind

	// BulletPoints requests bullet formatting. Only honoured for
	// SummaryDetailed.
	BulletPoints bool
}
