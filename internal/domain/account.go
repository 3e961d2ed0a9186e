package domain

// Role distinguishes what a session may do.
type Role string

// Session roles.
const (
	RoleAnonymous Role = ""
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
)

// User is a registered account. PasswordHash is a bcrypt hash.
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
}

// Principal is the caller identity evaluated once per request at the HTTP
// boundary. The zero value is an anonymous caller.
type Principal struct {
	Subject string
	Name    string
	Role    Role
}

// IsAdmin reports whether the principal holds an admin session.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// IsUser reports whether the principal is a signed-in user account.
func (p Principal) IsUser() bool {
	return p.Role == RoleUser && p.Subject != ""
}

// AuthorName returns the display name to record on submitted feedback.
func (p Principal) AuthorName() string {
	if p.IsUser() && p.Name != "" {
		return p.Name
	}

	return AnonymousAuthor
}
