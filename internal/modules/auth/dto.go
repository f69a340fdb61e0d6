package auth

type RegisterRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	ContactNo string `json:"contact_no" binding:"required"`
	DOB       string `json:"dob"`

	// A caller-supplied role is never honored; registration always
	// produces a player.
	Role string `json:"role,omitempty"`
}

type SignInRequest struct {
	Email     string `json:"email" binding:"required"`
	ContactNo string `json:"contact_no" binding:"required"`
}
