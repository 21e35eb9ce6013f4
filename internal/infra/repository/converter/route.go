package converter

import (
	"bikepacking-api/internal/domain/route"
	sqlc "bikepacking-api/internal/infra/sqlc/generated"
	"bikepacking-api/internal/pkg/pgconv"
)

func RouteToCreateParams(r *route.Route) sqlc.CreateRouteParams {
	d := r.Details()
	return sqlc.CreateRouteParams{
		Title:           r.Title(),
		GpxUrl:          pgconv.StringPtrToPgtype(d.GPXURL),
		Difficulty:      pgconv.StringPtrToPgtype(d.Difficulty),
		Country:         pgconv.StringPtrToPgtype(d.Country),
		County:          pgconv.StringPtrToPgtype(d.County),
		DistanceKm:      pgconv.Float64PtrToPgtype(d.DistanceKm),
		AscentM:         pgconv.Int32PtrToPgtype(d.AscentM),
		DescentM:        pgconv.Int32PtrToPgtype(d.DescentM),
		StartingStation: pgconv.StringPtrToPgtype(d.StartingStation),
		EndingStation:   pgconv.StringPtrToPgtype(d.EndingStation),
		GettingThere:    pgconv.StringPtrToPgtype(d.GettingThere),
		BikeChoice:      pgconv.StringPtrToPgtype(d.BikeChoice),
		GuidebookID:     pgconv.Int64PtrToPgtype(d.GuidebookID),
		Live:            r.Live(),
	}
}

func RouteToUpdateParams(r *route.Route) sqlc.UpdateRouteParams {
	c := RouteToCreateParams(r)
	return sqlc.UpdateRouteParams{
		ID:              r.ID(),
		Title:           c.Title,
		GpxUrl:          c.GpxUrl,
		Difficulty:      c.Difficulty,
		Country:         c.Country,
		County:          c.County,
		DistanceKm:      c.DistanceKm,
		AscentM:         c.AscentM,
		DescentM:        c.DescentM,
		StartingStation: c.StartingStation,
		EndingStation:   c.EndingStation,
		GettingThere:    c.GettingThere,
		BikeChoice:      c.BikeChoice,
		GuidebookID:     c.GuidebookID,
		Live:            c.Live,
		UpdatedAt:       pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RouteFromRow(row sqlc.Routes) *route.Route {
	return route.Reconstruct(
		row.ID,
		row.Title,
		route.Details{
			GPXURL:          pgconv.StringPtrFromPgtype(row.GpxUrl),
			Difficulty:      pgconv.StringPtrFromPgtype(row.Difficulty),
			Country:         pgconv.StringPtrFromPgtype(row.Country),
			County:          pgconv.StringPtrFromPgtype(row.County),
			DistanceKm:      pgconv.Float64PtrFromPgtype(row.DistanceKm),
			AscentM:         pgconv.Int32PtrFromPgtype(row.AscentM),
			DescentM:        pgconv.Int32PtrFromPgtype(row.DescentM),
			StartingStation: pgconv.StringPtrFromPgtype(row.StartingStation),
			EndingStation:   pgconv.StringPtrFromPgtype(row.EndingStation),
			GettingThere:    pgconv.StringPtrFromPgtype(row.GettingThere),
			BikeChoice:      pgconv.StringPtrFromPgtype(row.BikeChoice),
			GuidebookID:     pgconv.Int64PtrFromPgtype(row.GuidebookID),
		},
		row.Live,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
