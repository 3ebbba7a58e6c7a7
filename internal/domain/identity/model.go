package identity

// User is a member of the care team (nurse, doctor, admin).
type User struct {
	ID           int64  `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
	Name         string `db:"name" json:"name"`
	Email        string `db:"email" json:"email"`
	Role         string `db:"role" json:"role"`
	Avatar       string `db:"avatar" json:"avatar,omitempty"`
}

// DefaultRole is applied when a user is created without one.
const DefaultRole = "nurse"
