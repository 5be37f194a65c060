package members

import (
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
)

// MemberRequest es el body de POST /members y PUT /members/{id}.
// En updates el id del body (si viene) debe coincidir con el del path.
type MemberRequest struct {
	ID           int64  `json:"id,omitempty"`
	Name         string `json:"name"`
	FacebookURL  string `json:"facebookUrl"`
	InstagramURL string `json:"instagramUrl"`
	LinkedinURL  string `json:"linkedinUrl"`
	Image        string `json:"image"`
	Description  string `json:"description"`
}

// Validate devuelve los mensajes de violación de campos (vacío = ok).
func (r MemberRequest) Validate() []string {
	var msgs []string
	if r.Name == "" {
		msgs = append(msgs, "The 'name' field is required.")
	}
	return msgs
}

func (r MemberRequest) ToModel() repository.Member {
	return repository.Member{
		Name:         r.Name,
		FacebookURL:  r.FacebookURL,
		InstagramURL: r.InstagramURL,
		LinkedinURL:  r.LinkedinURL,
		Image:        r.Image,
		Description:  r.Description,
	}
}

type MemberResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	FacebookURL  string    `json:"facebookUrl"`
	InstagramURL string    `json:"instagramUrl"`
	LinkedinURL  string    `json:"linkedinUrl"`
	Image        string    `json:"image"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func FromModel(m repository.Member) MemberResponse {
	return MemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		FacebookURL:  m.FacebookURL,
		InstagramURL: m.InstagramURL,
		LinkedinURL:  m.LinkedinURL,
		Image:        m.Image,
		Description:  m.Description,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func FromModels(ms []repository.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, FromModel(m))
	}
	return out
}
