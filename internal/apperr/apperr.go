// Errores compartidos entre repositorios y handlers
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup by identifier that found nothing. Handlers map
// it to 404; it never aborts anything beyond the current request.
var ErrNotFound = errors.New("not found")

// ValidationError is malformed or missing input. The operation is not
// attempted when one is raised.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// MissingProductError is a cart or order line pointing at a product that no
// longer exists in the catalog. Checkout aborts whole rather than pricing a
// partial cart.
type MissingProductError struct {
	ProductID int64
}

func (e *MissingProductError) Error() string {
	return fmt.Sprintf("produto %d não existe no catálogo", e.ProductID)
}
