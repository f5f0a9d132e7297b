package prop

import (
	"errors"
	"fmt"
)

var ErrMissingVar = errors.New("missing variable")

// MissingVarErr reports an interpretation lookup which failed for a
// variable actually needed during evaluation.
type MissingVarErr struct {
	Name string
}

func (e *MissingVarErr) Unwrap() error {
	return ErrMissingVar
}

func (e *MissingVarErr) Error() string {
	return fmt.Sprintf("%s: %q unassigned", ErrMissingVar.Error(), e.Name)
}
