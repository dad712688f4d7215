package dto

// SignupRequest describes the registration payload.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

// LoginRequest describes the credentials payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public view of a user account.
type UserResponse struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
	Role      string `json:"role"`
}

// AuthResponse carries the issued token together with the account.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// ProfileResponse wraps the authenticated account.
type ProfileResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// ErrorResponse is the uniform failure envelope. Internal detail never leaks
// into Message.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
