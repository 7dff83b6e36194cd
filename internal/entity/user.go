package entity

// User owns exactly one cart, created together with the account.
// The password is held only as a bcrypt hash and never serialized.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}
