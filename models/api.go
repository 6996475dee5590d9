package models

// HealthCheckResponse returns the health check response duh
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

// MessageResponse is the generic success envelope returned by the lead and
// subscriber endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
