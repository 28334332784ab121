package shared

import (
	"strings"
	"testing"
	"time"

	"github.com/rohanthewiz/element"

	"mizan/auth"
	"mizan/lang"
	"mizan/ui"
)

func translator(t *testing.T, code lang.Code) lang.Translator {
	t.Helper()
	b, err := lang.Load()
	if err != nil {
		t.Fatalf("failed to load translations: %v", err)
	}
	return b.For(code)
}

// openTag returns the opening tag holding marker, an attribute or a "<name"
// prefix. Attribute order is not fixed, so tests check attributes in it
// one at a time.
func openTag(html, marker string) string {
	i := strings.Index(html, marker)
	if i < 0 {
		return ""
	}
	start := i
	if !strings.HasPrefix(marker, "<") {
		start = strings.LastIndex(html[:i], "<")
	}
	end := strings.Index(html[i:], ">")
	if start < 0 || end < 0 {
		return ""
	}
	return html[start : i+end+1]
}

func renderNav(n NavigationBar) string {
	b := element.NewBuilder()
	n.Render(b)
	return b.String()
}

func TestIsActive(t *testing.T) {
	testCases := []struct {
		link, current string
		want          bool
	}{
		{"/", "/", true},
		{"/about", "/about", true},
		{"/", "/about", false},
		{"/about", "/about/team", false},
		{"/services", "/", false},
	}
	for _, tc := range testCases {
		if got := IsActive(tc.link, tc.current); got != tc.want {
			t.Errorf("IsActive(%q, %q) = %v; want %v", tc.link, tc.current, got, tc.want)
		}
	}
}

// Exactly one top-level link is active on each of its own pages and none elsewhere.
func TestNavigationBarActiveLink(t *testing.T) {
	tr := translator(t, lang.English)

	for _, link := range MainLinks {
		html := renderNav(NavigationBar{CurrentPath: link.Path, Tr: tr, State: ui.InitialSnapshot(), Account: GuestArea{Tr: tr}})

		if n := strings.Count(html, `class="nav-link active"`); n != 1 {
			t.Errorf("on %s: %d active links; want 1", link.Path, n)
		}
		if tag := openTag(html, `id="nav-`+link.ID+`"`); !strings.Contains(tag, `class="nav-link active"`) {
			t.Errorf("on %s: expected %s to be the active link", link.Path, link.ID)
		}
	}

	html := renderNav(NavigationBar{CurrentPath: "/dashboard", Tr: tr, State: ui.InitialSnapshot()})
	if strings.Contains(html, `class="nav-link active"`) {
		t.Error("no top-level link should be active on /dashboard")
	}
}

func TestNavigationBarLanguageMenu(t *testing.T) {
	tr := translator(t, lang.English)

	closed := renderNav(NavigationBar{CurrentPath: "/", Tr: tr, State: ui.InitialSnapshot()})
	if strings.Contains(closed, "lang-options") {
		t.Error("closed language menu should not render its options")
	}
	if !strings.Contains(closed, `data-listening="false"`) {
		t.Error("closed language menu should not request the outside-click listener")
	}
	if !strings.Contains(closed, `id="`+ui.LanguageMenuID+`"`) {
		t.Error("language menu container id missing")
	}

	nav := ui.Mount(ui.NewHub())
	nav.ToggleLanguageMenu()
	open := renderNav(NavigationBar{CurrentPath: "/", Tr: tr, State: nav.Snapshot()})

	for _, want := range []string{
		"lang-options",
		`data-listening="true"`,
		`aria-expanded="true"`,
		`data-ui-event="lang-select"`,
		`data-target="ar"`,
		`data-target="en"`,
	} {
		if !strings.Contains(open, want) {
			t.Errorf("open language menu should contain %s", want)
		}
	}
}

func TestNavigationBarMobileMenu(t *testing.T) {
	tr := translator(t, lang.Arabic)
	nav := ui.Mount(ui.NewHub())

	closed := renderNav(NavigationBar{CurrentPath: "/", Tr: tr, State: nav.Snapshot(), Account: GuestArea{Tr: tr}})
	if strings.Contains(closed, `id="mobile-menu"`) {
		t.Error("closed mobile menu should not be rendered")
	}

	nav.ToggleMobileMenu()
	open := renderNav(NavigationBar{CurrentPath: "/about", Tr: tr, State: nav.Snapshot(), Account: GuestArea{Tr: tr}})
	if !strings.Contains(open, `id="mobile-menu"`) {
		t.Fatal("open mobile menu should be rendered")
	}
	if !strings.Contains(open, `data-mobile="open"`) {
		t.Error("nav should expose the mobile state")
	}
	if n := strings.Count(open, `data-ui-event="navigate"`); n != len(MainLinks)+1 {
		t.Errorf("%d navigate links in the mobile menu; want %d", n, len(MainLinks)+1)
	}
	if !strings.Contains(open, `dir="rtl"`) {
		t.Error("Arabic navigation bar should be right to left")
	}
}

func TestAccountAreaGuest(t *testing.T) {
	tr := translator(t, lang.English)
	area := AccountAreaFor(auth.Guest, tr, "")
	if _, ok := area.(GuestArea); !ok {
		t.Fatalf("guest view should give GuestArea, got %T", area)
	}

	nav := ui.Mount(ui.NewHub())
	nav.ToggleMobileMenu()
	html := renderNav(NavigationBar{CurrentPath: "/", Tr: tr, State: nav.Snapshot(), Account: area})

	for _, absent := range []string{"/dashboard", `class="avatar"`, "sign-out", "/logout"} {
		if strings.Contains(html, absent) {
			t.Errorf("guest navigation bar should not contain %s", absent)
		}
	}
	if !strings.Contains(html, `href="/login"`) {
		t.Error("guest navigation bar should offer sign in")
	}
}

func TestAccountAreaMember(t *testing.T) {
	tr := translator(t, lang.English)
	area := AccountAreaFor(auth.Member(auth.User{Username: "sara", FirstName: "sara"}), tr, "tok-123")

	member, ok := area.(MemberArea)
	if !ok {
		t.Fatalf("member view should give MemberArea, got %T", area)
	}
	if member.Glyph != "S" {
		t.Errorf("Glyph = %q; want S", member.Glyph)
	}

	html := renderNav(NavigationBar{CurrentPath: "/", Tr: tr, State: ui.InitialSnapshot(), Account: area})
	for _, want := range []string{`href="/dashboard"`, `class="avatar"`, `action="/logout"`, "Sign out"} {
		if !strings.Contains(html, want) {
			t.Errorf("member navigation bar should contain %s", want)
		}
	}
	if field := openTag(html, `name="csrf_token"`); !strings.Contains(field, `value="tok-123"`) {
		t.Error("sign-out form should post the request token")
	}
}

func TestAccountAreaMemberWithoutFirstName(t *testing.T) {
	tr := translator(t, lang.English)
	area := AccountAreaFor(auth.Member(auth.User{Username: "anon_client"}), tr, "")

	b := element.NewBuilder()
	area.Render(b)
	html := b.String()

	if !strings.Contains(html, `<span class="avatar">`+FallbackGlyph+`</span>`) {
		t.Errorf("expected fallback glyph in %s", html)
	}

	// No user record at all
	area = AccountAreaFor(auth.View{Authenticated: true}, tr, "")
	if m := area.(MemberArea); m.Glyph != FallbackGlyph {
		t.Errorf("Glyph = %q; want fallback", m.Glyph)
	}
}

func TestAvatarGlyph(t *testing.T) {
	testCases := []struct{ name, want string }{
		{"Sara", "S"},
		{"  omar", "O"},
		{"عمر", "ع"},
		{"", FallbackGlyph},
		{"   ", FallbackGlyph},
	}
	for _, tc := range testCases {
		if got := AvatarGlyph(tc.name); got != tc.want {
			t.Errorf("AvatarGlyph(%q) = %q; want %q", tc.name, got, tc.want)
		}
	}
}

func TestFooterYearFollowsClock(t *testing.T) {
	tr := translator(t, lang.English)

	render := func(year int) string {
		b := element.NewBuilder()
		Footer{Tr: tr, Now: func() time.Time { return time.Date(year, 6, 1, 0, 0, 0, 0, time.UTC) }}.Render(b)
		return b.String()
	}

	a, c := render(2024), render(2031)
	if !strings.Contains(a, "2024 Mizan Legal Advisory") {
		t.Error("footer should show 2024")
	}
	if !strings.Contains(c, "2031 Mizan Legal Advisory") {
		t.Error("footer should show 2031")
	}
	if a == c {
		t.Error("footers for different years should differ")
	}
}

func TestFooterDirection(t *testing.T) {
	for code, want := range map[lang.Code]string{lang.English: `dir="ltr"`, lang.Arabic: `dir="rtl"`} {
		b := element.NewBuilder()
		Footer{Tr: translator(t, code)}.Render(b)
		html := b.String()
		if tag := openTag(html, `id="site-footer"`); !strings.Contains(tag, want) || !strings.Contains(tag, `class="site-footer"`) {
			t.Errorf("%s footer should have %s", code, want)
		}
		if !strings.Contains(html, "mailto:") || !strings.Contains(html, "social-link") {
			t.Errorf("%s footer is missing contact or social links", code)
		}
	}
}

func TestShellOrder(t *testing.T) {
	tr := translator(t, lang.English)
	page := Page{Title: "About", Path: "/about", Tr: tr, Nav: ui.InitialSnapshot(), Account: GuestArea{Tr: tr}}

	html := page.Document(testContent{})

	header := strings.Index(html, `id="site-nav"`)
	content := strings.Index(html, "test-content")
	footer := strings.Index(html, `id="site-footer"`)
	if header < 0 || content < 0 || footer < 0 {
		t.Fatalf("shell is missing a region: header=%d content=%d footer=%d", header, content, footer)
	}
	if !(header < content && content < footer) {
		t.Errorf("regions out of order: header=%d content=%d footer=%d", header, content, footer)
	}
	if main := openTag(html, `<main`); !strings.Contains(main, `id="main"`) || !strings.Contains(main, `class="page-content"`) {
		t.Error("content should sit in the growable main region")
	}
	if root := openTag(html, `<html`); !strings.Contains(root, `lang="en"`) || !strings.Contains(root, `dir="ltr"`) {
		t.Error("document should carry language and direction")
	}
	if !strings.Contains(html, "<title>About | Mizan Legal Advisory</title>") {
		t.Error("unexpected document title")
	}
}

func TestShellEmptySlots(t *testing.T) {
	b := element.NewBuilder()
	Shell{}.Render(b)
	if !strings.Contains(b.String(), "page-shell") {
		t.Error("shell should render even with empty slots")
	}
}

func TestNavFragment(t *testing.T) {
	tr := translator(t, lang.English)
	frag := Page{Path: "/", Tr: tr, Nav: ui.InitialSnapshot()}.NavFragment()

	if !strings.HasPrefix(frag, "<nav ") || !strings.Contains(openTag(frag, "<nav"), `id="site-nav"`) {
		t.Errorf("fragment should start with the site-nav element, got %.40s", frag)
	}
	if strings.Contains(frag, "<html") || strings.Contains(frag, "site-footer") {
		t.Error("fragment should contain only the navigation bar")
	}
}

type testContent struct{}

func (testContent) Render(b *element.Builder) any {
	b.Div("class", "test-content").T("Test content")
	return nil
}

func TestKnownPath(t *testing.T) {
	for _, p := range []string{"/", "/about", "/services", "/contact", "/dashboard", "/login"} {
		if !KnownPath(p) {
			t.Errorf("KnownPath(%q) = false; want true", p)
		}
	}
	for _, p := range []string{"", "/about/team", "https://x.example/", `/"><b>`} {
		if KnownPath(p) {
			t.Errorf("KnownPath(%q) = true; want false", p)
		}
	}
}

func TestNavigationBarEscapesLocation(t *testing.T) {
	tr := translator(t, lang.English)
	html := renderNav(NavigationBar{CurrentPath: `/"><b id=x>x</b>`, Tr: tr, State: ui.InitialSnapshot()})

	if strings.Contains(html, "<b id=x>") {
		t.Error("current path must not inject markup")
	}
	if !strings.Contains(openTag(html, `id="site-nav"`), `data-location="/&#34;&gt;&lt;b id=x&gt;x&lt;/b&gt;"`) {
		t.Error("current path should be escaped into data-location")
	}
}
