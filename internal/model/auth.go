package model

import "time"

// TokenRequest exchanges a configured API key for a short-lived JWT.
type TokenRequest struct {
	APIKey   string `json:"api_key"`
	ClientID string `json:"client_id"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
