package go_aerotable

import (
	"fmt"
	"strings"
)

//WarningSet collects the modeling caveats a calculator reports for one
//evaluation. Repeated warnings are stored once, in the order they were
//first added.
type WarningSet struct {
	warnings []string
	seen     map[string]struct{}
}

//NewWarningSet creates an empty warning set
func NewWarningSet() *WarningSet {
	return &WarningSet{seen: make(map[string]struct{})}
}

//Add adds a warning formatted the same way as fmt.Sprintf does
func (w *WarningSet) Add(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if w.seen == nil {
		w.seen = make(map[string]struct{})
	}
	if _, ok := w.seen[msg]; ok {
		return
	}
	w.seen[msg] = struct{}{}
	w.warnings = append(w.warnings, msg)
}

//Len returns the number of distinct warnings
func (w *WarningSet) Len() int {
	if w == nil {
		return 0
	}
	return len(w.warnings)
}

//IsEmpty returns true if no warnings were added
func (w *WarningSet) IsEmpty() bool {
	return w.Len() == 0
}

//Warnings returns a copy of the warnings
func (w *WarningSet) Warnings() []string {
	if w == nil {
		return nil
	}
	out := make([]string, len(w.warnings))
	copy(out, w.warnings)
	return out
}

func (w *WarningSet) String() string {
	if w == nil {
		return ""
	}
	return strings.Join(w.warnings, "; ")
}
