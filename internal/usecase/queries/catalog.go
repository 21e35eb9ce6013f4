package queries

import (
	"context"

	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/pkg/errs"
)

var (
	ErrBookNotFound  = errs.ErrBookNotFound
	ErrRouteNotFound = errs.ErrRouteNotFound
)

type CatalogReadStore interface {
	ListBooks(ctx context.Context) ([]BookView, error)
	FindBookByID(ctx context.Context, id int64) (*BookView, error)
	ListRoutes(ctx context.Context, includeUnpublished bool) ([]RouteView, error)
	FindRouteByID(ctx context.Context, id int64) (*RouteView, error)
}

type CatalogQueries interface {
	ListBooks(ctx context.Context) ([]BookView, error)
	GetBook(ctx context.Context, id int64) (*BookView, error)
	ListRoutes(ctx context.Context, includeUnpublished bool) ([]RouteView, error)
	// GetRoute hides unpublished routes unless includeUnpublished is set.
	GetRoute(ctx context.Context, id int64, includeUnpublished bool) (*RouteView, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) ListBooks(ctx context.Context) ([]BookView, error) {
	return q.readStore.ListBooks(ctx)
}

func (q *catalogQueriesImpl) GetBook(ctx context.Context, id int64) (*BookView, error) {
	book, err := q.readStore.FindBookByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookNotFound)
		}
		return nil, err
	}
	return book, nil
}

func (q *catalogQueriesImpl) ListRoutes(ctx context.Context, includeUnpublished bool) ([]RouteView, error) {
	return q.readStore.ListRoutes(ctx, includeUnpublished)
}

func (q *catalogQueriesImpl) GetRoute(ctx context.Context, id int64, includeUnpublished bool) (*RouteView, error) {
	r, err := q.readStore.FindRouteByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrRouteNotFound)
		}
		return nil, err
	}
	if !r.Live && !includeUnpublished {
		return nil, ErrRouteNotFound
	}
	return r, nil
}
