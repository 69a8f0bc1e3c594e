// Package book derives the cosmetic resting state of a flip book from the
// page it is open at.
package book

import "fmt"

// DisplayState is the resting position of the book.
type DisplayState int

const (
	// ClosedStart shows the book closed on its first leaf.
	ClosedStart DisplayState = iota
	// Open shows an interior spread.
	Open
	// ClosedEnd shows the book closed on its last leaf.
	ClosedEnd
)

// InitialState is the state before any flip event.
const InitialState = ClosedStart

func (s DisplayState) String() string {
	switch s {
	case ClosedStart:
		return "closed-start"
	case Open:
		return "open"
	case ClosedEnd:
		return "closed-end"
	default:
		return fmt.Sprintf("DisplayState(%d)", int(s))
	}
}

func (s DisplayState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Total is a page count that may not be known yet.
type Total struct {
	n     int
	known bool
}

// UnknownTotal is a page count that has not been measured.
var UnknownTotal = Total{}

// KnownTotal wraps a measured page count. Counts below one are treated as
// unknown.
func KnownTotal(n int) Total {
	if n <= 0 {
		return UnknownTotal
	}
	return Total{n: n, known: true}
}

// Get returns the count and whether it is known.
func (t Total) Get() (int, bool) {
	return t.n, t.known
}

func (t Total) String() string {
	if !t.known {
		return "unknown"
	}
	return fmt.Sprint(t.n)
}

// OnPageChange maps a flip to pageIndex onto a display state. An unknown
// total never yields ClosedEnd.
func OnPageChange(pageIndex int, total Total) DisplayState {
	if pageIndex == 0 {
		return ClosedStart
	}
	if n, ok := total.Get(); ok && pageIndex >= n-1 {
		return ClosedEnd
	}
	return Open
}
