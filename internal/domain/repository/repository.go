// Package repository define los modelos de dominio y los contratos de acceso
// a datos. Las implementaciones (pg, memory) traducen entre filas de storage
// y estos structs planos; el dominio nunca ve una fila.
package repository

import "context"

// Crud es el contrato uniforme de acceso para los recursos de contenido
// (Member, Testimonial, Activity, News, Category).
//
// Semántica de soft-delete: toda lectura excluye filas con deleted = true;
// SoftDelete marca la fila en lugar de borrarla. Una fila marcada se comporta
// como inexistente (ErrNotFound) para cualquier operación posterior.
type Crud[M any] interface {
	// FindAll devuelve todos los registros activos en orden de inserción.
	FindAll(ctx context.Context) ([]M, error)

	// FindByID busca por id. Retorna ErrNotFound si no existe.
	FindByID(ctx context.Context, id int64) (*M, error)

	// Create inserta un registro nuevo; el storage asigna id y timestamps.
	Create(ctx context.Context, m *M) (*M, error)

	// Update pisa los campos de negocio del registro existente. Nunca toca
	// el id ni created_at; refresca updated_at. Retorna ErrNotFound si el
	// registro no existe.
	Update(ctx context.Context, id int64, m *M) (*M, error)

	// SoftDelete marca el registro como borrado. Retorna ErrNotFound si no
	// existe (o ya estaba borrado).
	SoftDelete(ctx context.Context, id int64) error

	// List devuelve una ventana de registros activos en orden de inserción.
	List(ctx context.Context, offset, limit int) ([]M, error)

	// Count devuelve la cantidad de registros activos.
	Count(ctx context.Context) (int64, error)
}

// UserRepository agrega a Crud las búsquedas propias de autenticación.
type UserRepository interface {
	Crud[User]

	// FindByEmail busca un usuario activo por email (case-insensitive).
	// Retorna ErrNotFound si no existe.
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// RoleRepository resuelve roles por nombre (USER, ADMIN).
type RoleRepository interface {
	FindByName(ctx context.Context, name string) (*Role, error)
}

// Store agrupa los repositorios que expone un backend de storage.
type Store interface {
	Members() Crud[Member]
	Testimonials() Crud[Testimonial]
	Activities() Crud[Activity]
	News() Crud[News]
	Categories() Crud[Category]
	Users() UserRepository
	Roles() RoleRepository

	// Ping verifica la conexión al storage.
	Ping(ctx context.Context) error

	// Close libera recursos (idempotente).
	Close()
}
