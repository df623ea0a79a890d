package domain

// User is the authenticated identity reflected from the upstream API.
// A session without a User is a guest.
type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}
