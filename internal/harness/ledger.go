package harness

// Entry is one recorded assertion outcome.
type Entry struct {
	Label   string `json:"label"`
	Passed  bool   `json:"passed"`
	Details string `json:"details,omitempty"`
}

// Summary counts ledger outcomes.
type Summary struct {
	Passed int `json:"passed"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}

// Ledger is the ordered record of assertion outcomes for a run.
// It is passed explicitly to every assertion; nothing is global.
type Ledger struct {
	entries []Entry
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{entries: []Entry{}}
}

// Record appends an outcome.
func (l *Ledger) Record(label string, passed bool, details string) {
	l.entries = append(l.entries, Entry{Label: label, Passed: passed, Details: details})
}

// Entries returns a copy of the recorded outcomes in order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Drain returns the recorded outcomes and clears the ledger.
func (l *Ledger) Drain() []Entry {
	out := l.entries
	l.entries = []Entry{}
	return out
}

// Reset clears the ledger.
func (l *Ledger) Reset() {
	l.entries = []Entry{}
}

// Len returns the number of recorded outcomes.
func (l *Ledger) Len() int { return len(l.entries) }

// Summary counts the recorded outcomes.
func (l *Ledger) Summary() Summary {
	return Summarize(l.entries)
}

// Summarize counts outcomes.
func Summarize(entries []Entry) Summary {
	s := Summary{Total: len(entries)}
	for _, e := range entries {
		if e.Passed {
			s.Passed++
		} else {
			s.Failed++
		}
	}
	return s
}

// AllPassed reports whether no outcome failed.
func (s Summary) AllPassed() bool { return s.Failed == 0 }
