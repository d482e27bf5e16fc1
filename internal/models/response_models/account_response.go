package response_models

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

type RegisterResponse struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

type MeResponse struct {
	UserID        string `json:"user_id"`
	Email         string `json:"email"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	WalletAddress string `json:"wallet_address,omitempty"`
}
