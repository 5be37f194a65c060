package testimonials

import (
	"time"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
)

type TestimonialRequest struct {
	ID      int64  `json:"id,omitempty"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Content string `json:"content"`
}

func (r TestimonialRequest) Validate() []string {
	var msgs []string
	if r.Name == "" {
		msgs = append(msgs, "The 'name' field is required.")
	}
	if r.Content == "" {
		msgs = append(msgs, "The 'content' field is required.")
	}
	return msgs
}

func (r TestimonialRequest) ToModel() repository.Testimonial {
	return repository.Testimonial{
		Name:    r.Name,
		Image:   r.Image,
		Content: r.Content,
	}
}

type TestimonialResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromModel(t repository.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:        t.ID,
		Name:      t.Name,
		Image:     t.Image,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func FromModels(ts []repository.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromModel(t))
	}
	return out
}
