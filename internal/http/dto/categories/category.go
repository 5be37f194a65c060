package categories

import "github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"

// CategoryResponse es data de referencia de solo lectura: el listado
// público no expone timestamps.
type CategoryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func FromModel(c repository.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
	}
}

func FromModels(cs []repository.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromModel(c))
	}
	return out
}
