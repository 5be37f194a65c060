package auth

// RegisterRequest es el body de POST /auth/register.
type RegisterRequest struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	MatchingPassword string `json:"matchingPassword"`
	Photo            string `json:"photo"`
}

// Validate devuelve los mensajes de violación de campos. El mensaje de
// firstName dice 'name' y no 'first name': los clientes existentes
// dependen del texto literal.
func (r RegisterRequest) Validate() []string {
	var msgs []string
	if r.FirstName == "" {
		msgs = append(msgs, "The 'name' field is required.")
	}
	if r.LastName == "" {
		msgs = append(msgs, "The 'last name' field is required.")
	}
	if r.Email == "" {
		msgs = append(msgs, "The 'email' field is required.")
	}
	if r.Password == "" {
		msgs = append(msgs, "The 'password' field is required.")
	}
	if r.MatchingPassword == "" {
		msgs = append(msgs, "The 'matching password' field is required.")
	}
	return msgs
}
