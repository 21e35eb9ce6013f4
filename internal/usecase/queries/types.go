package queries

import (
	"encoding/json"
	"time"
)

// UserView represents read-optimized user data with authorization info
type UserView struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Age       *int32     `json:"age,omitempty"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type BookView struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Author        *string    `json:"author,omitempty"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	ISBN          *string    `json:"isbn,omitempty"`
	CoverURL      *string    `json:"cover_url,omitempty"`
	PurchaseURL   *string    `json:"purchase_url,omitempty"`
	PriceAmount   *int64     `json:"price_amount,omitempty"`
	PriceCurrency string     `json:"price_currency"`
}

type RouteView struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	GPXURL          *string   `json:"gpx_url,omitempty"`
	Difficulty      *string   `json:"difficulty,omitempty"`
	Country         *string   `json:"country,omitempty"`
	County          *string   `json:"county,omitempty"`
	Distance        *float64  `json:"distance,omitempty"`
	Ascent          *int32    `json:"ascent,omitempty"`
	Descent         *int32    `json:"descent,omitempty"`
	StartingStation *string   `json:"starting_station,omitempty"`
	EndingStation   *string   `json:"ending_station,omitempty"`
	GettingThere    *string   `json:"getting_there,omitempty"`
	BikeChoice      *string   `json:"bike_choice,omitempty"`
	GuidebookID     *int64    `json:"guidebook_id,omitempty"`
	Live            bool      `json:"live"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BlogPostView struct {
	Title        string     `json:"title"`
	Link         string     `json:"link"`
	Author       string     `json:"author"`
	Username     string     `json:"username"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	Excerpt      string     `json:"excerpt"`
	Content      string     `json:"content,omitempty"`
	ThumbnailURL string     `json:"thumbnail_url,omitempty"`
	Categories   []string   `json:"categories"`
}

type WebhookEventView struct {
	EventID    string          `json:"event_id"`
	Provider   string          `json:"provider"`
	EventType  string          `json:"event_type"`
	PaymentID  *string         `json:"payment_id,omitempty"`
	Status     string          `json:"status"`
	Reason     *string         `json:"reason,omitempty"`
	Attempts   int32           `json:"attempts"`
	PurchaseID *int64          `json:"purchase_id,omitempty"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

type AccessKeyValidation struct {
	Valid  bool   `json:"valid"`
	UserID *int64 `json:"user_id,omitempty"`
}
