package repository

import "errors"

var (
	// ErrNotFound indica que el recurso solicitado no existe (o fue borrado).
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken indica que ya existe un usuario con ese email.
	ErrEmailTaken = errors.New("email already exists")
)

// IsNotFound verifica si el error es ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
