package shared

// NavLink is a top-level destination in the navigation bar.
type NavLink struct {
	ID       string
	Path     string
	LabelKey string
}

// MainLinks are the primary destinations, in display order.
var MainLinks = []NavLink{
	{ID: "home", Path: "/", LabelKey: "nav.home"},
	{ID: "about", Path: "/about", LabelKey: "nav.about"},
	{ID: "services", Path: "/services", LabelKey: "nav.services"},
	{ID: "contact", Path: "/contact", LabelKey: "nav.contact"},
}

// pagePaths are the other pages that render the shell.
var pagePaths = []string{"/dashboard", "/login"}

// KnownPath reports whether p is a page of the site.
func KnownPath(p string) bool {
	for _, l := range MainLinks {
		if l.Path == p {
			return true
		}
	}
	for _, pp := range pagePaths {
		if pp == p {
			return true
		}
	}
	return false
}

// IsActive reports whether a link points at the page being shown.
func IsActive(linkPath, currentPath string) bool {
	return linkPath == currentPath
}

func linkClass(linkPath, currentPath string) string {
	if IsActive(linkPath, currentPath) {
		return "nav-link active"
	}
	return "nav-link"
}
