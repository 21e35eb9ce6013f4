package repository

import (
	"context"

	"bikepacking-api/internal/domain/route"
	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/infra/repository/converter"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/pkg/pgconv"
)

type RouteWriteQueries interface {
	CreateRoute(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateRouteParams) (sqlc.Routes, error)
	FindRouteByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Routes, error)
	UpdateRoute(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateRouteParams) (int64, error)
	DeleteRoute(ctx context.Context, db sqlc.DBTX, id int64) (int64, error)
}

type RouteRepository struct {
	queries RouteWriteQueries
}

func NewRouteRepository(queries RouteWriteQueries) *RouteRepository {
	return &RouteRepository{
		queries: queries,
	}
}

func (r *RouteRepository) Create(ctx context.Context, tx sqlc.DBTX, rt *route.Route) (*route.Route, error) {
	row, err := r.queries.CreateRoute(ctx, tx, converter.RouteToCreateParams(rt))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create route", err)
	}
	return converter.RouteFromRow(row), nil
}

func (r *RouteRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id int64) (*route.Route, error) {
	row, err := r.queries.FindRouteByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("route not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find route", err)
	}
	return converter.RouteFromRow(row), nil
}

func (r *RouteRepository) Update(ctx context.Context, tx sqlc.DBTX, rt *route.Route) error {
	affected, err := r.queries.UpdateRoute(ctx, tx, converter.RouteToUpdateParams(rt))
	if err != nil {
		return infra.WrapRepoErr("failed to update route", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("route not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RouteRepository) Delete(ctx context.Context, tx sqlc.DBTX, id int64) error {
	affected, err := r.queries.DeleteRoute(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete route", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("route not found", nil, infra.KindNotFound)
	}
	return nil
}
