package ui

// Visibility is the state of a collapsible menu.
type Visibility int

const (
	Closed Visibility = iota
	Open
)

func (v Visibility) String() string {
	if v == Open {
		return "open"
	}
	return "closed"
}

// LanguageMenuID is the element id of the language menu container.
const LanguageMenuID = "lang-menu"

// LanguageToggler flips the visitor's language.
type LanguageToggler interface {
	Toggle()
}

// SessionCloser ends the visitor's session.
type SessionCloser interface {
	Logout()
}

// NavState is the local state of one mounted navigation bar.
// Only its own methods change it.
type NavState struct {
	hub      *Hub
	mobile   Visibility
	language Visibility
	menuID   string
	outside  *Subscription
	mounted  bool
}

// Mount creates a navigation bar state bound to the page's hub.
// Both menus start closed.
func Mount(hub *Hub) *NavState {
	return &NavState{hub: hub, menuID: LanguageMenuID, mounted: true}
}

func (n *NavState) Mobile() Visibility   { return n.mobile }
func (n *NavState) Language() Visibility { return n.language }
func (n *NavState) MenuID() string       { return n.menuID }
func (n *NavState) Mounted() bool        { return n.mounted }

// Listening reports whether the outside-click listener is registered.
func (n *NavState) Listening() bool { return n.outside != nil }

// ToggleLanguageMenu flips the language menu.
func (n *NavState) ToggleLanguageMenu() {
	if n.language == Open {
		n.setLanguage(Closed)
		return
	}
	n.setLanguage(Open)
}

// SelectLanguage closes the open language menu and asks lang to switch.
// The options only exist while the menu is open, so a selection arriving
// while closed is ignored.
func (n *NavState) SelectLanguage(lang LanguageToggler) {
	if n.language != Open {
		return
	}
	n.setLanguage(Closed)
	if lang != nil {
		lang.Toggle()
	}
}

// ToggleMobileMenu flips the mobile menu.
func (n *NavState) ToggleMobileMenu() {
	if n.mobile == Open {
		n.mobile = Closed
		return
	}
	n.mobile = Open
}

// Navigate collapses the mobile menu after a link is chosen.
func (n *NavState) Navigate() {
	n.mobile = Closed
}

// SignOut ends the session and collapses the mobile menu.
func (n *NavState) SignOut(session SessionCloser) {
	if session != nil {
		session.Logout()
	}
	n.mobile = Closed
}

// Unmount releases the outside-click listener. The state is unusable after.
func (n *NavState) Unmount() {
	n.release()
	n.language = Closed
	n.mobile = Closed
	n.mounted = false
}

// setLanguage is the only place the language menu changes state; the
// listener is held exactly while the menu is open.
func (n *NavState) setLanguage(v Visibility) {
	if !n.mounted {
		return
	}
	n.language = v
	if v == Open {
		if n.outside == nil {
			n.outside = n.hub.Subscribe(n.onPointerDown)
		}
		return
	}
	n.release()
}

func (n *NavState) onPointerDown(ev PointerEvent) {
	if n.language == Open && !ev.Within(n.menuID) {
		n.setLanguage(Closed)
	}
}

func (n *NavState) release() {
	if n.outside != nil {
		n.outside.Release()
		n.outside = nil
	}
}

// Snapshot is an immutable copy of the state for rendering.
type Snapshot struct {
	Mobile    Visibility
	Language  Visibility
	MenuID    string
	Listening bool
}

func (n *NavState) Snapshot() Snapshot {
	return Snapshot{
		Mobile:    n.mobile,
		Language:  n.language,
		MenuID:    n.menuID,
		Listening: n.Listening(),
	}
}

// InitialSnapshot is the state of a freshly mounted bar.
func InitialSnapshot() Snapshot {
	return Snapshot{MenuID: LanguageMenuID}
}
