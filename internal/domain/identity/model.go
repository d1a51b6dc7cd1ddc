package identity

// DefaultRole is assigned when a user is created without one.
const DefaultRole = "staff"

// User is an application login. There is no HTTP surface for users; they
// exist so seeded demo sessions have someone to belong to.
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"-"`
	Role     string  `json:"role"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Avatar   *string `json:"avatar,omitempty"`
}
