package domain

import "errors"

var (
	// ErrTagOverflow is returned when appending a tag would exceed the
	// path buffer capacity. The buffer is left unmodified.
	ErrTagOverflow = errors.New("tag path capacity exceeded")

	// ErrRunActive is returned when Run is invoked while another run
	// is in flight. Engine state is not re-entrant.
	ErrRunActive = errors.New("a run is already active")
)
