package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"bikepacking-api/internal/domain/payment"
	"bikepacking-api/internal/pkg/config"
	"bikepacking-api/internal/pkg/errs"
)

const (
	sandboxBaseURL    = "https://connect.squareupsandbox.com"
	productionBaseURL = "https://connect.squareup.com"

	maxResponseBytes = 1 << 20
)

var (
	ErrNotConfigured = errs.New("square access token not configured")
	ErrNoLocation    = errs.New("no square location available")
)

// APIError is a non-2xx response from the Square API.
type APIError struct {
	StatusCode int
	Code       string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("square api: status %d", e.StatusCode)
	}
	return fmt.Sprintf("square api: status %d: %s: %s", e.StatusCode, e.Code, e.Detail)
}

type Client struct {
	baseURL    string
	apiVersion string
	locationID string
	configured bool
	http       *http.Client
	limiter    *rate.Limiter
}

func NewClient(cfg config.SquareConfig) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = sandboxBaseURL
		if strings.EqualFold(cfg.Environment, "production") {
			base = productionBaseURL
		}
	}

	limit := rate.Limit(cfg.RateLimit)
	if cfg.RateLimit <= 0 {
		limit = rate.Inf
	}
	burst := int(cfg.RateLimit)
	if burst < 1 {
		burst = 1
	}

	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		apiVersion: cfg.APIVersion,
		locationID: cfg.LocationID,
		configured: cfg.AccessToken != "",
		http: &http.Client{
			Timeout: cfg.HTTPTimeout,
			Transport: &oauth2.Transport{
				Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken, TokenType: "Bearer"}),
				Base:   http.DefaultTransport,
			},
		},
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (c *Client) Configured() bool {
	return c.configured
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*payment.Order, error) {
	var resp orderResponse
	if err := c.do(ctx, http.MethodGet, "/v2/orders/"+url.PathEscape(orderID), nil, &resp); err != nil {
		return nil, errs.Wrapf(err, "get order %s", orderID)
	}
	if resp.Order == nil {
		return nil, nil
	}
	return toOrder(resp.Order), nil
}

func (c *Client) ListLocations(ctx context.Context) ([]payment.Location, error) {
	var resp locationsResponse
	if err := c.do(ctx, http.MethodGet, "/v2/locations", nil, &resp); err != nil {
		return nil, errs.Wrap(err, "list locations")
	}
	out := make([]payment.Location, 0, len(resp.Locations))
	for _, l := range resp.Locations {
		out = append(out, payment.Location{ID: l.ID, Name: l.Name, Status: l.Status})
	}
	return out, nil
}

// CreatePaymentLink creates a quick-pay link for one book. The order carries
// the book id and buyer email in metadata and in the note so that the webhook
// can recover them when the payment itself does not.
func (c *Client) CreatePaymentLink(ctx context.Context, req payment.CheckoutRequest) (*payment.PaymentLink, error) {
	locationID := req.LocationID
	if locationID == "" {
		locationID = c.locationID
	}
	if locationID == "" {
		resolved, err := c.firstLocation(ctx)
		if err != nil {
			return nil, err
		}
		locationID = resolved
	}

	var resp paymentLinkResponse
	body := newPaymentLinkRequest(req, locationID)
	if err := c.do(ctx, http.MethodPost, "/v2/online-checkout/payment-links", body, &resp); err != nil {
		return nil, errs.Wrap(err, "create payment link")
	}
	if resp.PaymentLink == nil {
		return nil, errs.New("square returned no payment link")
	}

	link := &payment.PaymentLink{
		ID:      resp.PaymentLink.ID,
		URL:     resp.PaymentLink.URL,
		OrderID: resp.PaymentLink.OrderID,
	}
	if link.URL == "" {
		link.URL = resp.PaymentLink.LongURL
	}
	return link, nil
}

func (c *Client) firstLocation(ctx context.Context) (string, error) {
	locations, err := c.ListLocations(ctx)
	if err != nil {
		return "", err
	}
	if len(locations) == 0 {
		return "", ErrNoLocation
	}
	slog.Info("using first square location", "location_id", locations[0].ID, "name", locations[0].Name)
	return locations[0].ID, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	if !c.configured {
		return ErrNotConfigured
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return errs.Wrap(err, "rate limiter")
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return errs.Wrap(err, "encode request")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiVersion != "" {
		req.Header.Set("Square-Version", c.apiVersion)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errs.Wrap(err, "send request")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return errs.Wrap(err, "read response")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		apiErr := &APIError{StatusCode: res.StatusCode}
		var env struct {
			Errors []apiErrorDetail `json:"errors"`
		}
		if json.Unmarshal(raw, &env) == nil && len(env.Errors) > 0 {
			apiErr.Code = env.Errors[0].Code
			apiErr.Detail = env.Errors[0].Detail
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.Wrap(err, "decode response")
	}
	return nil
}
