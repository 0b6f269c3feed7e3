package login

// loginRequest is the admin login payload.
type loginRequest struct {
	Password string `json:"password"`
}
