// Package pagination arma el DTO de página que comparten los recursos
// de contenido. Los links son relativos: "/<recurso>?page=<n>"; cuando
// no hay página anterior/siguiente el campo viaja como string vacío.
package pagination

import "fmt"

type DTO[T any] struct {
	Body         []T    `json:"body"`
	PreviousPage string `json:"previousPage"`
	NextPage     string `json:"nextPage"`
}

// Render construye el DTO para un recurso. prev/next en nil significan
// "no hay tal página". Body nunca viaja como null.
func Render[T any](resource string, body []T, prev, next *int) DTO[T] {
	if body == nil {
		body = []T{}
	}
	out := DTO[T]{Body: body}
	if prev != nil {
		out.PreviousPage = fmt.Sprintf("/%s?page=%d", resource, *prev)
	}
	if next != nil {
		out.NextPage = fmt.Sprintf("/%s?page=%d", resource, *next)
	}
	return out
}
