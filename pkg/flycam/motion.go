package flycam

// MotionEvent is one raw pointer-motion delta in pixels. Positive DY points down the screen.
type MotionEvent struct {
	DX float32
	DY float32
}

// MotionLog buffers pointer-motion events for readers that poll once per frame.
//
// Events are addressed by an absolute sequence number. The log keeps the events of
// the current and the previous frame; Update drops anything older. A reader that
// stores the sequence number returned by Read sees every event exactly once as long
// as it reads at least every other frame.
type MotionLog struct {
	events []MotionEvent

	// sequence number of events[0]
	start uint64

	// number of leading events that were pushed before the last Update
	previous int
}

// NewMotionLog creates an empty log
func NewMotionLog() *MotionLog {
	return &MotionLog{}
}

// Push appends an event to the current frame
func (l *MotionLog) Push(ev MotionEvent) {
	l.events = append(l.events, ev)
}

// Update starts a new frame, discarding the events of the frame before the last.
// The host calls it once per frame before pushing new input.
func (l *MotionLog) Update() {
	n := copy(l.events, l.events[l.previous:])
	l.events = l.events[:n]
	l.start += uint64(l.previous)
	l.previous = n
}

// End returns the sequence number the next pushed event will get.
func (l *MotionLog) End() uint64 {
	return l.start + uint64(len(l.events))
}

// Len returns the number of buffered events
func (l *MotionLog) Len() int {
	return len(l.events)
}

// Read returns the events from cursor onwards, the cursor to use next time, and
// how many events were discarded before the reader got to them. The returned slice
// is only valid until the next Push or Update.
func (l *MotionLog) Read(cursor uint64) (events []MotionEvent, next uint64, missed uint64) {
	if cursor < l.start {
		missed = l.start - cursor
		cursor = l.start
	}
	end := l.End()
	if cursor > end {
		cursor = end
	}
	return l.events[cursor-l.start:], end, missed
}
