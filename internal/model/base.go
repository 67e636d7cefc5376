package model

// CreatedResponse is returned by every POST that yields a generated key.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

// StatusResponse is returned by endpoints that only acknowledge a write.
type StatusResponse struct {
	Status string `json:"status"`
}

// SuccessResponse acknowledges an update.
type SuccessResponse struct {
	Success bool `json:"success"`
}
