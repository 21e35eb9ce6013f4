package route

import (
	"strings"
	"time"

	"bikepacking-api/internal/pkg/errs"
	"bikepacking-api/internal/pkg/patch"
)

const MaxTitleLength = 200

var (
	ErrEmptyTitle       = errs.New("route title is required")
	ErrTitleTooLong     = errs.New("route title is too long")
	ErrInvalidDistance  = errs.New("route distance must not be negative")
	ErrInvalidElevation = errs.New("route ascent and descent must not be negative")
	ErrInvalidGuidebook = errs.New("guidebook id must be positive")
)

// Details are the optional descriptive attributes of a route.
type Details struct {
	GPXURL          *string
	Difficulty      *string
	Country         *string
	County          *string
	DistanceKm      *float64
	AscentM         *int32
	DescentM        *int32
	StartingStation *string
	EndingStation   *string
	GettingThere    *string
	BikeChoice      *string
	GuidebookID     *int64
}

// Patch carries a partial update. Nil fields keep the current value.
type Patch struct {
	Title *string
	Details
}

type Route struct {
	id        int64
	title     string
	details   Details
	live      bool
	createdAt time.Time
	updatedAt time.Time
}

func NewRoute(title string, details Details, live bool, now time.Time) (*Route, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}
	if err := validateDetails(details); err != nil {
		return nil, err
	}

	return &Route{
		title:     title,
		details:   details,
		live:      live,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(id int64, title string, details Details, live bool, createdAt, updatedAt time.Time) *Route {
	return &Route{
		id:        id,
		title:     title,
		details:   details,
		live:      live,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Apply merges p into the route. The route is left unchanged on error.
func (r *Route) Apply(p Patch, now time.Time) error {
	title, err := validateTitle(patch.Value(p.Title, r.title))
	if err != nil {
		return err
	}

	d := r.details
	merged := Details{
		GPXURL:          patch.Ptr(p.GPXURL, d.GPXURL),
		Difficulty:      patch.Ptr(p.Difficulty, d.Difficulty),
		Country:         patch.Ptr(p.Country, d.Country),
		County:          patch.Ptr(p.County, d.County),
		DistanceKm:      patch.Ptr(p.DistanceKm, d.DistanceKm),
		AscentM:         patch.Ptr(p.AscentM, d.AscentM),
		DescentM:        patch.Ptr(p.DescentM, d.DescentM),
		StartingStation: patch.Ptr(p.StartingStation, d.StartingStation),
		EndingStation:   patch.Ptr(p.EndingStation, d.EndingStation),
		GettingThere:    patch.Ptr(p.GettingThere, d.GettingThere),
		BikeChoice:      patch.Ptr(p.BikeChoice, d.BikeChoice),
		GuidebookID:     patch.Ptr(p.GuidebookID, d.GuidebookID),
	}
	if err := validateDetails(merged); err != nil {
		return err
	}

	r.title = title
	r.details = merged
	r.updatedAt = now
	return nil
}

func (r *Route) ToggleLive(now time.Time) {
	r.live = !r.live
	r.updatedAt = now
}

func (r *Route) ID() int64            { return r.id }
func (r *Route) Title() string        { return r.title }
func (r *Route) Details() Details     { return r.details }
func (r *Route) Live() bool           { return r.live }
func (r *Route) CreatedAt() time.Time { return r.createdAt }
func (r *Route) UpdatedAt() time.Time { return r.updatedAt }

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if len([]rune(title)) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return title, nil
}

func validateDetails(d Details) error {
	if d.DistanceKm != nil && *d.DistanceKm < 0 {
		return ErrInvalidDistance
	}
	if (d.AscentM != nil && *d.AscentM < 0) || (d.DescentM != nil && *d.DescentM < 0) {
		return ErrInvalidElevation
	}
	if d.GuidebookID != nil && *d.GuidebookID <= 0 {
		return ErrInvalidGuidebook
	}
	return nil
}
