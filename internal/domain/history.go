package domain

// History holds the records of every transaction an account accepted, oldest first.
// It only grows.
type History struct {
	records []Record
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Append adds r to the end of the history.
func (h *History) Append(r Record) {
	h.records = append(h.records, r)
}

// Records returns a copy of the recorded transactions.
func (h *History) Records() []Record {
	out := make([]Record, len(h.records))
	copy(out, h.records)

	return out
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.records)
}

// Count returns the number of records of the given kind.
func (h *History) Count(kind Kind) int {
	n := 0

	for _, r := range h.records {
		if r.Kind == kind {
			n++
		}
	}

	return n
}
