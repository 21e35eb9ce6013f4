package response

type RouteCreatedResponse struct {
	ID int64 `json:"id"`
}

type ToggleLiveResponse struct {
	ID   int64 `json:"id"`
	Live bool  `json:"live"`
}
