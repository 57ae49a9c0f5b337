package kitgen

import (
	"github.com/pkg/errors"
)

var (
	ErrGenerationInProgress = errors.New("a kit generation is already running")
	ErrNotGenerating        = errors.New("no kit generation is running")
	ErrGenerationAborted    = errors.New("generation aborted")
	ErrGenerationTimeout    = errors.New("generation timed out")
	ErrGenerationFailed     = errors.New("Generation failed")
)

// ValidationError envolve a falha de validação do formulário
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
