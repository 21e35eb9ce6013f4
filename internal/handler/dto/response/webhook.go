package response

import "bikepacking-api/internal/usecase/commands"

// WebhookResponse is the 200 body returned for every business outcome.
type WebhookResponse struct {
	Processed bool    `json:"processed"`
	Reason    string  `json:"reason,omitempty"`
	Test      bool    `json:"test,omitempty"`
	Message   string  `json:"message,omitempty"`
	EventID   string  `json:"event_id,omitempty"`
	UserID    *int64  `json:"user_id,omitempty"`
	BookID    *int64  `json:"book_id,omitempty"`
	PaymentID *string `json:"payment_id,omitempty"`
	AccessKey *string `json:"access_key,omitempty"`
}

func FromWebhookOutcome(o *commands.WebhookOutcome) WebhookResponse {
	return WebhookResponse{
		Processed: o.Processed,
		Reason:    o.Reason,
		Test:      o.Test,
		Message:   o.Message,
		EventID:   o.EventID,
		UserID:    o.UserID,
		BookID:    o.BookID,
		PaymentID: o.PaymentID,
		AccessKey: o.AccessKey,
	}
}
