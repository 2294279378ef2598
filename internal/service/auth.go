package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
)

var (
	ErrInvalidAPIKey    = errors.New("invalid api key")
	ErrClientIDRequired = errors.New("client_id is required")
)

// AuthService exchanges a configured API key for short-lived JWTs. There
// are no user accounts: the key identifies the deployment, the client_id
// claim identifies the caller for logging.
type AuthService struct {
	apiKey     string
	apiKeyHash string
	jwtSecret  string
	jwtExpiry  time.Duration
}

// NewAuthService creates an AuthService. Exactly one of apiKey (plain,
// development) or apiKeyHash (Argon2id PHC string, production) should be
// set; when both are set the hash wins.
func NewAuthService(apiKey, apiKeyHash, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{
		apiKey:     apiKey,
		apiKeyHash: apiKeyHash,
		jwtSecret:  jwtSecret,
		jwtExpiry:  jwtExpiry,
	}
}

// IssueToken verifies the presented API key and returns a bearer token.
func (s *AuthService) IssueToken(req model.TokenRequest) (model.TokenResponse, error) {
	if req.ClientID == "" {
		return model.TokenResponse{}, ErrClientIDRequired
	}

	ok, err := s.verifyKey(req.APIKey)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !ok {
		return model.TokenResponse{}, ErrInvalidAPIKey
	}

	token, err := crypto.GenerateToken(req.ClientID, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(s.jwtExpiry),
	}, nil
}

func (s *AuthService) verifyKey(presented string) (bool, error) {
	if presented == "" {
		return false, nil
	}
	if s.apiKeyHash != "" {
		match, err := crypto.VerifyAPIKey(presented, s.apiKeyHash)
		if err != nil {
			return false, err
		}
		return match, nil
	}
	return subtle.ConstantTimeCompare([]byte(presented), []byte(s.apiKey)) == 1, nil
}
