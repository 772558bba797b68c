package transcode

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrInsufficientCapacity indicates that a destination cannot hold the converted output.
	// Nothing is written when it is returned.
	ErrInsufficientCapacity = errors.New("transcode: insufficient destination capacity")

	// ErrInvalidSeek indicates a seek was attempted to a negative position.
	ErrInvalidSeek = errors.New("transcode: seek to an invalid position")

	// ErrInvalidWhence indicates that an invalid 'whence' parameter was provided to a Seek operation.
	ErrInvalidWhence = errors.New("transcode: invalid whence")
)

// CapacityError reports how many units a conversion needed and how many the destination had.
// It matches both ErrInsufficientCapacity and io.ErrShortBuffer under errors.Is.
type CapacityError struct {
	Required  int   // units the output needs
	Available int   // units the destination can take
	Width     Width // width of the destination units
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: %d %s units required, %d available", ErrInsufficientCapacity, e.Required, e.Width, e.Available)
}

func (e *CapacityError) Unwrap() []error {
	return []error{ErrInsufficientCapacity, io.ErrShortBuffer}
}
