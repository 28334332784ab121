// Package auth describes what the page components may know about the
// signed-in visitor.
package auth

// User is the subset of an account the site shell displays.
type User struct {
	GUID      string
	Username  string
	FirstName string
}

// View is a read-only snapshot of the visitor's session.
type View struct {
	Authenticated bool
	User          *User
}

// Guest is the view of an anonymous visitor.
var Guest = View{}

// Member builds the view for a signed-in user.
func Member(u User) View {
	return View{Authenticated: true, User: &u}
}

// FirstName returns the user's first name or "" when unknown.
func (v View) FirstName() string {
	if v.User == nil {
		return ""
	}
	return v.User.FirstName
}

// Provider owns the session. Logout's outcome is the provider's concern.
type Provider interface {
	View() View
	Logout()
}
