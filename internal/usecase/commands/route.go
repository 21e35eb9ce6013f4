package commands

import (
	"context"

	"bikepacking-api/internal/domain/route"
	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/pkg/clock"
	"bikepacking-api/internal/pkg/errs"
	"bikepacking-api/internal/usecase/shared"
)

var (
	ErrRouteNotFound     = errs.ErrRouteNotFound
	ErrGuidebookNotFound = errs.New("guidebook not found")
	ErrInvalidRoute      = errs.New("invalid route data")
)

type CreateRouteInput struct {
	Title   string
	Details route.Details
	Live    bool
}

type RouteCommands interface {
	CreateRoute(ctx context.Context, in CreateRouteInput) (int64, error)
	UpdateRoute(ctx context.Context, id int64, p route.Patch) error
	DeleteRoute(ctx context.Context, id int64) error
	ToggleLive(ctx context.Context, id int64) (bool, error)
}

type routeCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRouteCommands(uow shared.UnitOfWork, clk clock.Clock) RouteCommands {
	return &routeCommandsImpl{uow: uow, clock: clk}
}

func (uc *routeCommandsImpl) CreateRoute(ctx context.Context, in CreateRouteInput) (int64, error) {
	r, err := route.NewRoute(in.Title, in.Details, in.Live, uc.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, ErrInvalidRoute)
	}

	var id int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err := tx.Routes().Create(ctx, tx.DB(), r)
		if err != nil {
			return err
		}
		id = created.ID()
		return nil
	})
	if err != nil {
		return 0, mapRouteErr(err)
	}
	return id, nil
}

func (uc *routeCommandsImpl) UpdateRoute(ctx context.Context, id int64, p route.Patch) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Routes().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		if err := r.Apply(p, uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrInvalidRoute)
		}
		return tx.Routes().Update(ctx, tx.DB(), r)
	})
	return mapRouteErr(err)
}

func (uc *routeCommandsImpl) DeleteRoute(ctx context.Context, id int64) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Routes().Delete(ctx, tx.DB(), id)
	})
	return mapRouteErr(err)
}

func (uc *routeCommandsImpl) ToggleLive(ctx context.Context, id int64) (bool, error) {
	var live bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		r, err := tx.Routes().FindByID(ctx, tx.DB(), id)
		if err != nil {
			return err
		}
		r.ToggleLive(uc.clock.Now())
		live = r.Live()
		return tx.Routes().Update(ctx, tx.DB(), r)
	})
	if err != nil {
		return false, mapRouteErr(err)
	}
	return live, nil
}

func mapRouteErr(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrRouteNotFound)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, ErrGuidebookNotFound)
	default:
		return err
	}
}
