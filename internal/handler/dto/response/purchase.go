package response

import "bikepacking-api/internal/usecase/commands"

type PurchasedBooksResponse struct {
	BookIDs []int64 `json:"book_ids"`
}

type AccessKeyResponse struct {
	BookID    int64  `json:"book_id"`
	AccessKey string `json:"access_key"`
}

type PurchasedResponse struct {
	Purchased bool `json:"purchased"`
}

type GrantPurchaseResponse struct {
	PurchaseID int64  `json:"purchase_id"`
	UserID     int64  `json:"user_id"`
	BookID     int64  `json:"book_id"`
	AccessKey  string `json:"access_key"`
	Created    bool   `json:"created"`
}

func FromReconcileResult(r *commands.ReconcileResult) GrantPurchaseResponse {
	return GrantPurchaseResponse{
		PurchaseID: r.PurchaseID,
		UserID:     r.UserID,
		BookID:     r.BookID,
		AccessKey:  r.AccessKey,
		Created:    r.Created,
	}
}
