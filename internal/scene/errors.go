package scene

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownScene indicates a scene name or kind that is not registered.
	ErrUnknownScene = errors.New("scene: unknown scene")

	// ErrCanceled indicates the render was interrupted by its context.
	ErrCanceled = errors.New("scene: render canceled")

	// ErrInvalidRuns indicates a batch with a negative run count.
	ErrInvalidRuns = errors.New("scene: negative batch run count")
)

// RenderError wraps a failure with the scene that produced it.
type RenderError struct {
	Kind    Kind
	Wrapped error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Kind, e.Wrapped)
}

func (e *RenderError) Unwrap() error {
	return e.Wrapped
}
