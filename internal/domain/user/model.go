package user

// User is a locally registered account. Authentication here is simulated:
// accounts live in the owner's own store and never leave the machine, so the
// login gate is a convenience, not a security boundary.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	PasswordHash string `json:"passwordHash"`
}
