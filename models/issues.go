package models

// IssueLog accumulates data-quality findings (unparseable dates, numeric
// coercion losses) during a run. It is append-only while the pipeline runs
// and is read back only by the end-of-run summary; it never influences
// control flow.
type IssueLog struct {
	kinds   []string
	entries map[string][]string
}

func NewIssueLog() *IssueLog {
	return &IssueLog{entries: make(map[string][]string)}
}

// Add records one finding under the given issue kind.
func (l *IssueLog) Add(kind, message string) {
	if _, ok := l.entries[kind]; !ok {
		l.kinds = append(l.kinds, kind)
	}
	l.entries[kind] = append(l.entries[kind], message)
}

// Merge appends every finding of other into l, preserving kind order.
func (l *IssueLog) Merge(other *IssueLog) {
	if other == nil {
		return
	}
	for _, kind := range other.kinds {
		for _, msg := range other.entries[kind] {
			l.Add(kind, msg)
		}
	}
}

// Kinds returns the issue kinds in first-seen order.
func (l *IssueLog) Kinds() []string {
	return append([]string(nil), l.kinds...)
}

// Entries returns the findings recorded under a kind.
func (l *IssueLog) Entries(kind string) []string {
	return append([]string(nil), l.entries[kind]...)
}

// Count returns the number of findings recorded under a kind.
func (l *IssueLog) Count(kind string) int {
	return len(l.entries[kind])
}

// Empty reports whether no findings were recorded at all.
func (l *IssueLog) Empty() bool {
	return len(l.kinds) == 0
}
