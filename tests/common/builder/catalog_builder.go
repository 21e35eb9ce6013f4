//go:build unit || e2e

package builder

import (
	"time"

	"bikepacking-api/internal/usecase/queries"
)

type RouteBuilder struct {
	ID      int64
	Title   string
	Country string
	Live    bool
}

func NewRouteBuilder() *RouteBuilder {
	return &RouteBuilder{
		ID:      1,
		Title:   "South Downs Way",
		Country: "England",
		Live:    true,
	}
}

func (r *RouteBuilder) With(mutate func(*RouteBuilder)) *RouteBuilder {
	mutate(r)
	return r
}

func (r *RouteBuilder) BuildView() *queries.RouteView {
	now := time.Now()
	country := r.Country
	return &queries.RouteView{
		ID:        r.ID,
		Title:     r.Title,
		Country:   &country,
		Live:      r.Live,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type BookBuilder struct {
	ID       int64
	Title    string
	Price    *int64
	Currency string
}

func NewBookBuilder() *BookBuilder {
	price := int64(1999)
	return &BookBuilder{
		ID:       7,
		Title:    "Bikepacking Wales",
		Price:    &price,
		Currency: "GBP",
	}
}

func (b *BookBuilder) BuildView() *queries.BookView {
	return &queries.BookView{
		ID:            b.ID,
		Title:         b.Title,
		PriceAmount:   b.Price,
		PriceCurrency: b.Currency,
	}
}
