// Package message composes formatted host messages and hands them to a
// delivery sink. Composition is best-effort: a message whose body cannot be
// rendered is still delivered, with an absent body.
package message

import (
	"fmt"

	"github.com/nweston/openfx-runner/handle"
	"github.com/nweston/openfx-runner/suite"
)

// Sink delivers a composed message to its destination (a host log or UI).
// A nil body means the message carries no text.
type Sink interface {
	Deliver(h handle.Handle, messageType, messageID string, body []byte) suite.Status
}

// Allocator provides the composer's transient body buffers. It returns a
// slice with at least the requested capacity, or nil if the buffer cannot be
// provided.
type Allocator func(size int) []byte

func defaultAllocator(size int) []byte {
	return make([]byte, 0, size)
}

// Composer renders format strings into exactly-sized buffers and delivers
// them through a Sink. It holds no state between calls.
type Composer struct {
	sink  Sink
	alloc Allocator
}

// NewComposer creates a Composer delivering to sink
func NewComposer(sink Sink) *Composer {
	return &Composer{sink: sink, alloc: defaultAllocator}
}

// NewComposerWithAllocator creates a Composer with a custom body allocator
func NewComposerWithAllocator(sink Sink, alloc Allocator) *Composer {
	return &Composer{sink: sink, alloc: alloc}
}

// lengthCounter is the zero-allocation sizing target for the first render
// pass: it discards bytes and records only the length.
type lengthCounter struct {
	n int
}

func (c *lengthCounter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}

// Message renders format with args and delivers the result. The format is
// realized in two passes: a sizing pass against a counting target, then a
// render pass into a buffer of exactly the rendered length plus one. If the
// rendered length is zero no buffer is requested; if the allocator declines,
// delivery proceeds with an absent body rather than failing the call. The
// sink is invoked exactly once on every path and its status is returned.
func (c *Composer) Message(h handle.Handle, messageType, messageID, format string, args ...interface{}) suite.Status {
	var counter lengthCounter
	fmt.Fprintf(&counter, format, args...)

	var body []byte
	if counter.n > 0 {
		if buf := c.alloc(counter.n + 1); buf != nil {
			body = fmt.Appendf(buf[:0], format, args...)
		}
	}

	return c.sink.Deliver(h, messageType, messageID, body)
}
