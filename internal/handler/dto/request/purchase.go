package request

type GrantPurchaseRequest struct {
	Email  string `json:"email" binding:"required,email"`
	BookID int64  `json:"book_id" binding:"required,gt=0"`
}

type ValidateAccessKeyRequest struct {
	AccessKey string `json:"access_key" binding:"required"`
	BookID    int64  `json:"book_id" binding:"required,gt=0"`
}
