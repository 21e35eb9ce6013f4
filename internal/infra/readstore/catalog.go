package readstore

import (
	"context"

	"bikepacking-api/internal/infra"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/pkg/pgconv"
	"bikepacking-api/internal/usecase/queries"
)

type CatalogReadQueries interface {
	ListBooks(ctx context.Context, db sqlc.DBTX) ([]sqlc.Books, error)
	FindBookByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Books, error)
	ListRoutes(ctx context.Context, db sqlc.DBTX, includeUnpublished bool) ([]sqlc.Routes, error)
	FindRouteByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Routes, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      sqlc.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db sqlc.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) ListBooks(ctx context.Context) ([]queries.BookView, error) {
	rows, err := r.queries.ListBooks(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list books", err)
	}

	views := make([]queries.BookView, 0, len(rows))
	for _, row := range rows {
		views = append(views, *toBookView(row))
	}
	return views, nil
}

func (r *CatalogReadStore) FindBookByID(ctx context.Context, id int64) (*queries.BookView, error) {
	row, err := r.queries.FindBookByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("book not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find book", err)
	}
	return toBookView(row), nil
}

func (r *CatalogReadStore) ListRoutes(ctx context.Context, includeUnpublished bool) ([]queries.RouteView, error) {
	rows, err := r.queries.ListRoutes(ctx, r.db, includeUnpublished)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list routes", err)
	}

	views := make([]queries.RouteView, 0, len(rows))
	for _, row := range rows {
		views = append(views, *toRouteView(row))
	}
	return views, nil
}

func (r *CatalogReadStore) FindRouteByID(ctx context.Context, id int64) (*queries.RouteView, error) {
	row, err := r.queries.FindRouteByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("route not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find route", err)
	}
	return toRouteView(row), nil
}

func toBookView(row sqlc.Books) *queries.BookView {
	return &queries.BookView{
		ID:            row.ID,
		Title:         row.Title,
		Author:        pgconv.StringPtrFromPgtype(row.Author),
		PublishedAt:   pgconv.DatePtrFromPgtype(row.PublishedAt),
		ISBN:          pgconv.StringPtrFromPgtype(row.Isbn),
		CoverURL:      pgconv.StringPtrFromPgtype(row.CoverUrl),
		PurchaseURL:   pgconv.StringPtrFromPgtype(row.PurchaseUrl),
		PriceAmount:   pgconv.Int64PtrFromPgtype(row.PriceAmount),
		PriceCurrency: row.PriceCurrency,
	}
}

func toRouteView(row sqlc.Routes) *queries.RouteView {
	return &queries.RouteView{
		ID:              row.ID,
		Title:           row.Title,
		GPXURL:          pgconv.StringPtrFromPgtype(row.GpxUrl),
		Difficulty:      pgconv.StringPtrFromPgtype(row.Difficulty),
		Country:         pgconv.StringPtrFromPgtype(row.Country),
		County:          pgconv.StringPtrFromPgtype(row.County),
		Distance:        pgconv.Float64PtrFromPgtype(row.DistanceKm),
		Ascent:          pgconv.Int32PtrFromPgtype(row.AscentM),
		Descent:         pgconv.Int32PtrFromPgtype(row.DescentM),
		StartingStation: pgconv.StringPtrFromPgtype(row.StartingStation),
		EndingStation:   pgconv.StringPtrFromPgtype(row.EndingStation),
		GettingThere:    pgconv.StringPtrFromPgtype(row.GettingThere),
		BikeChoice:      pgconv.StringPtrFromPgtype(row.BikeChoice),
		GuidebookID:     pgconv.Int64PtrFromPgtype(row.GuidebookID),
		Live:            row.Live,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
