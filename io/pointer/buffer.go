// SPDX-License-Identifier: Unlicense OR MIT

package pointer

// Buffer is an ordered queue of events awaiting a receiver.
// The zero value is an empty buffer.
type Buffer struct {
	events []Event
}

// Push appends e to the buffer.
func (b *Buffer) Push(e Event) {
	b.events = append(b.events, e)
}

// Len returns the number of buffered events.
func (b *Buffer) Len() int {
	return len(b.events)
}

// Replay empties the buffer and delivers its events to fn in
// arrival order. Events pushed by fn are kept for the next
// Replay.
func (b *Buffer) Replay(fn func(Event)) {
	events := b.events
	b.events = nil
	for _, e := range events {
		fn(e)
	}
}

// Discard empties the buffer without delivering its events.
func (b *Buffer) Discard() {
	b.events = b.events[:0]
}
