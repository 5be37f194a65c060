package repository

import "time"

// Member representa a un integrante de la organización.
type Member struct {
	ID           int64
	Name         string
	FacebookURL  string
	InstagramURL string
	LinkedinURL  string
	Image        string
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Deleted      bool
}

// Testimonial representa un testimonio publicado en el sitio.
type Testimonial struct {
	ID        int64
	Name      string
	Image     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// Activity representa una actividad de la organización.
type Activity struct {
	ID        int64
	Name      string
	Content   string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Deleted   bool
}

// News representa una novedad.
// CategoryID existe en el esquema pero todavía no participa de ningún
// comportamiento: queda reservado para cuando se vincule con Category.
type News struct {
	ID         int64
	Name       string
	Content    string
	Image      string
	CategoryID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Deleted    bool
}

// Category es data de referencia de solo lectura, sembrada por migración.
type Category struct {
	ID          int64
	Name        string
	Description string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Deleted     bool
}

// User representa un usuario del sistema.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Photo        string
	RoleID       int64
	Role         *Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Deleted      bool
}

// Role representa un rol referenciado por User (USER, ADMIN).
type Role struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Nombres de roles conocidos.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)
