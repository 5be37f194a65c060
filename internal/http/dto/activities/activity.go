package activities

import (
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
)

type ActivityRequest struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

func (r ActivityRequest) Validate() []string {
	var msgs []string
	if r.Name == "" {
		msgs = append(msgs, "The 'name' field is required.")
	}
	if r.Content == "" {
		msgs = append(msgs, "The 'content' field is required.")
	}
	return msgs
}

func (r ActivityRequest) ToModel() repository.Activity {
	return repository.Activity{
		Name:    r.Name,
		Content: r.Content,
		Image:   r.Image,
	}
}

type ActivityResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(a repository.Activity) ActivityResponse {
	return ActivityResponse{
		ID:        a.ID,
		Name:      a.Name,
		Content:   a.Content,
		Image:     a.Image,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func FromModels(as []repository.Activity) []ActivityResponse {
	out := make([]ActivityResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromModel(a))
	}
	return out
}
