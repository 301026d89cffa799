package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"notblank,email"`
	Password string `json:"password" binding:"notblank"`
}

const TokenTypeBearer = "Bearer"

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// MeResponse describes the caller. Roles are sorted.
type MeResponse struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
