package models

// User roles. Moderation endpoints require RoleModerator.
const (
	RoleDelegate  = "delegate"
	RoleModerator = "moderator"
)

// User is a registered delegate stored in the users document.
// Password holds the bcrypt hash and never leaves the API (json:"-").
type User struct {
	ID          string `json:"id"`
	IDNumber    string `json:"idNumber"`
	Gmail       string `json:"gmail"`
	Password    string `json:"-"`
	Committee   string `json:"committee"`
	Institution string `json:"institution"`
	Role        string `json:"role,omitempty"`
}

// IsModerator reports whether the user may approve and answer doubts.
func (u User) IsModerator() bool {
	return u.Role == RoleModerator
}
