package httpdto

// RegisterRequest is used for POST /register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is used for POST /login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned after successful login
type LoginResponse struct {
	UserID      uint64 `json:"user_id"`
	Username    string `json:"username"`
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// LoginEnvelope is the login response. The user id is repeated at the top
// level as userId, where the web client reads it.
type LoginEnvelope struct {
	Response[LoginResponse]
	UserID uint64 `json:"userId"`
}
