package httpdto

// UserDTO is the public view of a user; the password hash never leaves the service.
type UserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	JoinedAt string `json:"joined_at"`
}
