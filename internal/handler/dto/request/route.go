package request

import "bikepacking-api/internal/domain/route"

// RouteFields are the optional attributes shared by create and update.
type RouteFields struct {
	GPXURL          *string  `json:"gpx_url"`
	Difficulty      *string  `json:"difficulty"`
	Country         *string  `json:"country"`
	County          *string  `json:"county"`
	Distance        *float64 `json:"distance" binding:"omitempty,gte=0"`
	Ascent          *int32   `json:"ascent" binding:"omitempty,gte=0"`
	Descent         *int32   `json:"descent" binding:"omitempty,gte=0"`
	StartingStation *string  `json:"starting_station"`
	EndingStation   *string  `json:"ending_station"`
	GettingThere    *string  `json:"getting_there"`
	BikeChoice      *string  `json:"bike_choice"`
	GuidebookID     *int64   `json:"guidebook_id" binding:"omitempty,gt=0"`
}

func (f RouteFields) Details() route.Details {
	return route.Details{
		GPXURL:          f.GPXURL,
		Difficulty:      f.Difficulty,
		Country:         f.Country,
		County:          f.County,
		DistanceKm:      f.Distance,
		AscentM:         f.Ascent,
		DescentM:        f.Descent,
		StartingStation: f.StartingStation,
		EndingStation:   f.EndingStation,
		GettingThere:    f.GettingThere,
		BikeChoice:      f.BikeChoice,
		GuidebookID:     f.GuidebookID,
	}
}

type CreateRouteRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Live  bool   `json:"live"`
	RouteFields
}

// UpdateRouteRequest is a partial update; absent fields keep their value.
type UpdateRouteRequest struct {
	Title *string `json:"title" binding:"omitempty,max=200"`
	RouteFields
}

func (r UpdateRouteRequest) ToPatch() route.Patch {
	return route.Patch{Title: r.Title, Details: r.Details()}
}
