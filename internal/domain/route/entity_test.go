//go:build unit

package route_test

import (
	"testing"
	"time"

	"bikepacking-api/internal/domain/route"
	"bikepacking-api/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestNewRoute(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := route.NewRoute("  Cairngorms Loop ", route.Details{DistanceKm: ptr.Of(312.5)}, false, now)
		require.NoError(t, err)

		assert.Equal(t, "Cairngorms Loop", r.Title())
		assert.False(t, r.Live())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, 312.5, *r.Details().DistanceKm)
	})

	tests := []struct {
		name    string
		title   string
		details route.Details
		errIs   error
	}{
		{name: "empty title", title: "   ", errIs: route.ErrEmptyTitle},
		{name: "negative distance", title: "x", details: route.Details{DistanceKm: ptr.Of(-1.0)}, errIs: route.ErrInvalidDistance},
		{name: "negative ascent", title: "x", details: route.Details{AscentM: ptr.Of(int32(-5))}, errIs: route.ErrInvalidElevation},
		{name: "zero guidebook", title: "x", details: route.Details{GuidebookID: ptr.Of(int64(0))}, errIs: route.ErrInvalidGuidebook},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := route.NewRoute(tt.title, tt.details, true, now)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestRouteApply(t *testing.T) {
	base := func() *route.Route {
		return route.Reconstruct(7, "South Downs Way", route.Details{
			Country:    ptr.Of("England"),
			DistanceKm: ptr.Of(160.0),
		}, true, now, now)
	}

	t.Run("nil fields keep current values", func(t *testing.T) {
		r := base()
		later := now.Add(time.Hour)
		err := r.Apply(route.Patch{Details: route.Details{County: ptr.Of("Sussex")}}, later)
		require.NoError(t, err)

		assert.Equal(t, "South Downs Way", r.Title())
		assert.Equal(t, "England", *r.Details().Country)
		assert.Equal(t, "Sussex", *r.Details().County)
		assert.Equal(t, later, r.UpdatedAt())
		assert.Equal(t, now, r.CreatedAt())
	})

	t.Run("invalid patch leaves route unchanged", func(t *testing.T) {
		r := base()
		err := r.Apply(route.Patch{Title: ptr.Of(""), Details: route.Details{County: ptr.Of("Kent")}}, now.Add(time.Hour))
		assert.ErrorIs(t, err, route.ErrEmptyTitle)
		assert.Nil(t, r.Details().County)
		assert.Equal(t, now, r.UpdatedAt())
	})

	t.Run("toggle live", func(t *testing.T) {
		r := base()
		r.ToggleLive(now.Add(time.Minute))
		assert.False(t, r.Live())
		r.ToggleLive(now.Add(2 * time.Minute))
		assert.True(t, r.Live())
	})
}
