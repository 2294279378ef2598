package model

// GenerateRequest represents a password generation request.
// Pointer fields allow distinguishing between missing (nil -> default) and
// explicit values: {"length":0} must fail validation while an absent length
// defaults to 16, and {"lowercase":false} must not be confused with an
// absent toggle.
type GenerateRequest struct {
	Length           *int   `json:"length"`
	Lowercase        *bool  `json:"lowercase"`
	Uppercase        *bool  `json:"uppercase"`
	Digits           *bool  `json:"digits"`
	Symbols          *bool  `json:"symbols"`
	Custom           string `json:"custom"`
	ExcludeSimilar   bool   `json:"exclude_similar"`
	Exclude          string `json:"exclude"`
	RequireEachClass bool   `json:"require_each_class"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password    string  `json:"password"`
	Length      int     `json:"length"`
	PoolSize    int     `json:"pool_size"`
	EntropyBits float64 `json:"entropy_bits"`
}

// EntropyResponse reports the estimated strength of a configuration without
// generating anything.
type EntropyResponse struct {
	Length      int     `json:"length"`
	PoolSize    int     `json:"pool_size"`
	EntropyBits float64 `json:"entropy_bits"`
}
