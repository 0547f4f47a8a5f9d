package dto

// AdminLoginRequest captures operator credential input.
type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminLoginResponse contains the issued access token.
type AdminLoginResponse struct {
	AccessToken string `json:"access_token"`
}
