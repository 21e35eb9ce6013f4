package response

import "bikepacking-api/internal/usecase/commands"

type PaymentLinkResponse struct {
	URL           string `json:"url"`
	PaymentLinkID string `json:"payment_link_id"`
	OrderID       string `json:"order_id,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) PaymentLinkResponse {
	return PaymentLinkResponse{URL: r.URL, PaymentLinkID: r.PaymentLinkID, OrderID: r.OrderID}
}
