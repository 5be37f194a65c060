package users

import "github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"

// UserResponse es el DTO público de usuario. Nunca expone el hash de
// la contraseña ni el rol.
type UserResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Photo     string `json:"photo"`
}

func FromModel(u repository.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Photo:     u.Photo,
	}
}

func FromModels(us []repository.User) []UserResponse {
	out := make([]UserResponse, 0, len(us))
	for _, u := range us {
		out = append(out, FromModel(u))
	}
	return out
}
