package transport

// LoginRequest is the credential payload for POST /auth/login.
type LoginRequest struct {
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=6,max=32"`
}

// CustomerResponse exposes the public customer fields.
type CustomerResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Success   bool             `json:"success"`
	Token     string           `json:"token"`
	ExpiresAt int64            `json:"expiresAt"`
	Customer  CustomerResponse `json:"customer"`
}

// MeResponse echoes the session claims for GET /auth/me.
type MeResponse struct {
	Success  bool             `json:"success"`
	Customer CustomerResponse `json:"customer"`
}
