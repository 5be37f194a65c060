package news

import (
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
)

type NewsRequest struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Content string `json:"content"`
	Image   string `json:"image"`
}

func (r NewsRequest) Validate() []string {
	var msgs []string
	if r.Name == "" {
		msgs = append(msgs, "The 'name' field is required.")
	}
	if r.Content == "" {
		msgs = append(msgs, "The 'content' field is required.")
	}
	return msgs
}

func (r NewsRequest) ToModel() repository.News {
	return repository.News{
		Name:    r.Name,
		Content: r.Content,
		Image:   r.Image,
	}
}

type NewsResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(n repository.News) NewsResponse {
	return NewsResponse{
		ID:        n.ID,
		Name:      n.Name,
		Content:   n.Content,
		Image:     n.Image,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func FromModels(ns []repository.News) []NewsResponse {
	out := make([]NewsResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromModel(n))
	}
	return out
}
