package dto

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

type SessionUserResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// CheckAuthResponse reports session state; User is null for anonymous
// callers and the status is 200 either way.
type CheckAuthResponse struct {
	Success bool                 `json:"success"`
	User    *SessionUserResponse `json:"user"`
}
