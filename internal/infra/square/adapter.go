package square

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"bikepacking-api/internal/domain/payment"
	"bikepacking-api/internal/pkg/errs"
)

var ErrInvalidPayload = errs.New("invalid webhook payload")

// Wire shapes of the Square JSON this service consumes. Everything outside
// this file works on domain/payment types.

type wireMoney struct {
	Amount   *int64 `json:"amount"`
	Currency string `json:"currency"`
}

type wireOrder struct {
	ID         string   `json:"id"`
	LocationID string   `json:"location_id"`
	Note       string   `json:"note"`
	BuyerEmail string   `json:"buyer_email"`
	Metadata   metadata `json:"metadata"`
}

// metadata accepts scalar values of any JSON type and keeps them as strings.
// Square only emits strings, but hand-crafted test deliveries send numbers.
type metadata map[string]string

func (m *metadata) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(metadata, len(raw))
	for k, v := range raw {
		var s string
		if err := json.Unmarshal(v, &s); err == nil {
			out[k] = s
			continue
		}
		trimmed := bytes.TrimSpace(v)
		if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || trimmed[0] == '{' || trimmed[0] == '[' {
			continue
		}
		out[k] = string(trimmed)
	}
	*m = out
	return nil
}

// fields is a JSON object read leniently. A member of an unexpected type
// reads as absent instead of failing the whole delivery.
type fields map[string]json.RawMessage

func objectOf(raw json.RawMessage) fields {
	var f fields
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	return f
}

func (f fields) object(key string) fields {
	return objectOf(f[key])
}

// text returns strings as is and numbers or booleans in their JSON spelling.
func (f fields) text(key string) string {
	v := bytes.TrimSpace(f[key])
	if len(v) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	switch v[0] {
	case '{', '[', 'n':
		return ""
	}
	return string(v)
}

// integer accepts an integer or a string holding one.
func (f fields) integer(key string) *int64 {
	v := bytes.TrimSpace(f[key])
	if len(v) == 0 || bytes.Equal(v, []byte("null")) {
		return nil
	}
	var n int64
	if err := json.Unmarshal(v, &n); err == nil {
		return &n
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func (f fields) metadata(key string) map[string]string {
	var m metadata
	if err := m.UnmarshalJSON(f[key]); err != nil || len(m) == 0 {
		return nil
	}
	return map[string]string(m)
}

// DecodeEvent parses a raw delivery. The body must be a JSON object; inside
// it, members of the wrong type are ignored.
func DecodeEvent(raw []byte) (*payment.Event, error) {
	var env fields
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode square event"), ErrInvalidPayload)
	}
	if env == nil {
		return nil, errs.Mark(errs.New("square event is not a JSON object"), ErrInvalidPayload)
	}
	return &payment.Event{
		ID:      env.text("event_id"),
		Type:    env.text("type"),
		Payment: toPayment(env.object("data").object("object").object("payment")),
		Raw:     json.RawMessage(raw),
	}, nil
}

func toPayment(f fields) *payment.Payment {
	if f == nil {
		return nil
	}
	p := &payment.Payment{
		ID:                f.text("id"),
		Status:            f.text("status"),
		OrderID:           f.text("order_id"),
		BuyerEmailAddress: f.text("buyer_email_address"),
		BuyerEmail:        f.text("buyer_email"),
		EmailAddress:      f.text("email_address"),
		Email:             f.text("email"),
		BillingEmail:      f.object("billing_address").text("email_address"),
		Metadata:          f.metadata("metadata"),
	}
	if o := f.object("order"); o != nil {
		p.Order = &payment.Order{
			ID:         o.text("id"),
			LocationID: o.text("location_id"),
			Note:       o.text("note"),
			BuyerEmail: o.text("buyer_email"),
			Metadata:   o.metadata("metadata"),
		}
	}
	if m := f.object("amount_money"); m != nil {
		p.AmountMoney = &payment.Money{Amount: m.integer("amount"), Currency: m.text("currency")}
	}
	return p
}

func toOrder(w *wireOrder) *payment.Order {
	if w == nil {
		return nil
	}
	return &payment.Order{
		ID:         w.ID,
		LocationID: w.LocationID,
		Note:       w.Note,
		BuyerEmail: w.BuyerEmail,
		Metadata:   map[string]string(w.Metadata),
	}
}

// Outbound request bodies.

type createPaymentLinkRequest struct {
	IdempotencyKey   string            `json:"idempotency_key"`
	Description      string            `json:"description,omitempty"`
	Order            linkOrder         `json:"order"`
	CheckoutOptions  checkoutOptions   `json:"checkout_options"`
	PrePopulatedData *prePopulatedData `json:"pre_populated_data,omitempty"`
}

type linkOrder struct {
	LocationID string            `json:"location_id"`
	LineItems  []lineItem        `json:"line_items"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Note       string            `json:"note,omitempty"`
}

type lineItem struct {
	Name           string    `json:"name"`
	Quantity       string    `json:"quantity"`
	ItemType       string    `json:"item_type"`
	BasePriceMoney wireMoney `json:"base_price_money"`
}

type checkoutOptions struct {
	AllowTipping          bool `json:"allow_tipping"`
	AskForShippingAddress bool `json:"ask_for_shipping_address"`
}

type prePopulatedData struct {
	BuyerEmail string `json:"buyer_email,omitempty"`
}

type paymentLinkResponse struct {
	PaymentLink *struct {
		ID      string `json:"id"`
		URL     string `json:"url"`
		LongURL string `json:"long_url"`
		OrderID string `json:"order_id"`
	} `json:"payment_link"`
	RelatedResources *struct {
		Orders []wireOrder `json:"orders"`
	} `json:"related_resources"`
	Errors []apiErrorDetail `json:"errors"`
}

type orderResponse struct {
	Order  *wireOrder       `json:"order"`
	Errors []apiErrorDetail `json:"errors"`
}

type locationsResponse struct {
	Locations []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Status string `json:"status"`
	} `json:"locations"`
	Errors []apiErrorDetail `json:"errors"`
}

type apiErrorDetail struct {
	Category string `json:"category"`
	Code     string `json:"code"`
	Detail   string `json:"detail"`
	Field    string `json:"field"`
}

func newPaymentLinkRequest(req payment.CheckoutRequest, locationID string) createPaymentLinkRequest {
	amount := req.Amount
	currency := req.Currency
	if currency == "" {
		currency = "GBP"
	}
	body := createPaymentLinkRequest{
		IdempotencyKey: req.IdempotencyKey,
		Description:    "Purchase: " + req.Title,
		Order: linkOrder{
			LocationID: locationID,
			LineItems: []lineItem{{
				Name:           req.Title,
				Quantity:       "1",
				ItemType:       "ITEM",
				BasePriceMoney: wireMoney{Amount: &amount, Currency: currency},
			}},
			Metadata: map[string]string{
				payment.MetadataBookID: strconv.FormatInt(req.BookID, 10),
			},
			Note: payment.FormatNote(req.BookID, req.BuyerEmail),
		},
		CheckoutOptions: checkoutOptions{},
	}
	if req.BuyerEmail != "" {
		body.Order.Metadata[payment.MetadataUserEmail] = req.BuyerEmail
		body.PrePopulatedData = &prePopulatedData{BuyerEmail: req.BuyerEmail}
	}
	return body
}

// Decoder adapts DecodeEvent to the webhook command port.
type Decoder struct{}

func (Decoder) Decode(raw []byte) (*payment.Event, error) {
	return DecodeEvent(raw)
}
