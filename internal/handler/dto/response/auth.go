package response

import "bikepacking-api/internal/usecase/queries"

const TokenTypeBearer = "bearer"

type LoginResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	User        *queries.UserView `json:"user"`
}
