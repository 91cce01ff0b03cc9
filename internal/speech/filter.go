package speech

import (
	. "github.com/roelfdiedericks/fillerclaw/internal/logging"
)

// Suppressor is the classification predicate behind the filter.
// *fillerwords.Classifier satisfies it; tests can inject a fake.
type Suppressor interface {
	IsOnlyFillerWords(text string) bool
}

// Filter drops transcript events that consist entirely of filler words
// so they never reach the runtime's interruption logic.
type Filter struct {
	suppressor Suppressor
	enabled    bool
}

// NewFilter creates a filter. A disabled filter passes every event
// through untouched.
func NewFilter(suppressor Suppressor, enabled bool) *Filter {
	return &Filter{
		suppressor: suppressor,
		enabled:    enabled,
	}
}

// Apply returns true when the event should be delivered to the runtime
// and false when it should be suppressed. Both interim and final
// transcripts are checked: interim fillers would otherwise trigger
// interruption before the final transcript settles.
func (f *Filter) Apply(ev Event) bool {
	if !f.enabled {
		return true
	}

	if !f.suppressor.IsOnlyFillerWords(ev.Text) {
		return true
	}

	switch ev.Type {
	case EventFinal:
		L_info("speech: filtered filler transcript", "type", ev.Type.String(), "text", ev.Text)
	default:
		L_debug("speech: filtered filler transcript", "type", ev.Type.String(), "text", ev.Text)
	}
	return false
}

// Pipe wraps an event channel, forwarding only events that pass the
// filter. The returned channel closes when the input closes.
func (f *Filter) Pipe(in <-chan Event) <-chan Event {
	out := make(chan Event)
	go func() {
		defer close(out)
		for ev := range in {
			if f.Apply(ev) {
				out <- ev
			}
		}
	}()
	return out
}
