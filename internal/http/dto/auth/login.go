package auth

// LoginRequest es el body de POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse devuelve el token emitido. El nombre del campo ("jwt")
// es parte del contrato con los clientes existentes.
type LoginResponse struct {
	JWT string `json:"jwt"`
}
