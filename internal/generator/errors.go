package generator

import "errors"

var (
	// ErrNoProject indicates no requested project could be generated.
	ErrNoProject = errors.New("no project could be generated")

	// ErrValidation indicates an entry path failed safety validation.
	ErrValidation = errors.New("validation failed")
)
