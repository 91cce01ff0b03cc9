// Package speech models the transcript events delivered by an external
// speech-to-text provider and the filtering hook that decides which of
// them may interrupt the agent. It makes no assumptions about the
// runtime's event loop: Apply is a plain call-and-return decision, and
// Pipe is offered for runtimes that expose event channels.
package speech

// EventType represents the type of transcript event.
type EventType int

const (
	// EventInterim represents partial transcription results that may change
	EventInterim EventType = iota
	// EventFinal represents final transcription results that won't change
	EventFinal
)

// String returns the event type name for logging.
func (t EventType) String() string {
	switch t {
	case EventInterim:
		return "interim"
	case EventFinal:
		return "final"
	default:
		return "unknown"
	}
}

// Event is a single transcript event from the STT provider. Only Text
// is consulted for filtering; the remaining fields pass through for the
// runtime's benefit.
type Event struct {
	Type      EventType
	Text      string // Transcribed text
	Language  string // Detected or configured language code
	Timestamp int64  // Event timestamp in milliseconds since epoch
}
