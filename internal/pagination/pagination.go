// Package pagination provides the page abstraction shared by the product
// and blog listings: a window of items plus enough bookkeeping for
// templates to render prev/next navigation.
package pagination

// Page is one window of a paginated listing. Number is 1-based.
type Page[T any] struct {
	Items  []T
	Number int
	Size   int
	Total  int
}

// New builds a Page, clamping the page number to at least 1.
func New[T any](items []T, number, size, total int) Page[T] {
	if number < 1 {
		number = 1
	}
	return Page[T]{Items: items, Number: number, Size: size, Total: total}
}

// Offset returns the row offset for a 1-based page number.
func Offset(number, size int) int {
	if number < 1 {
		number = 1
	}
	return (number - 1) * size
}

// TotalPages returns the number of pages needed for Total items.
// An empty listing still has one (empty) page.
func (p Page[T]) TotalPages() int {
	if p.Size <= 0 || p.Total <= 0 {
		return 1
	}
	pages := p.Total / p.Size
	if p.Total%p.Size != 0 {
		pages++
	}
	return pages
}

// HasPrev reports whether a previous page exists.
func (p Page[T]) HasPrev() bool {
	return p.Number > 1
}

// HasNext reports whether a next page exists.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages()
}

// PrevNumber returns the previous page number, clamped to 1.
func (p Page[T]) PrevNumber() int {
	if p.Number <= 1 {
		return 1
	}
	return p.Number - 1
}

// NextNumber returns the next page number, clamped to the last page.
func (p Page[T]) NextNumber() int {
	if n := p.Number + 1; n <= p.TotalPages() {
		return n
	}
	return p.TotalPages()
}
