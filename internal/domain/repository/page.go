package repository

// Page es una ventana de resultados con los números de página vecinos ya
// resueltos. Previous/Next son nil cuando no hay página anterior/siguiente;
// la capa web los traduce a links relativos ("/<recurso>?page=<n>") o a
// string vacío.
type Page[M any] struct {
	Items    []M
	Previous *int
	Next     *int
}
