package ui

import (
	"math/rand"
	"testing"
)

type countingToggler struct{ calls int }

func (c *countingToggler) Toggle() { c.calls++ }

type countingSession struct{ logouts int }

func (c *countingSession) Logout() { c.logouts++ }

var outside = PointerEvent{Path: []string{"hero", "main", "page-shell"}}
var inside = PointerEvent{Path: []string{"lang-option-en", LanguageMenuID, "site-nav"}}

func TestNavStateInitial(t *testing.T) {
	hub := NewHub()
	nav := Mount(hub)

	if nav.Language() != Closed || nav.Mobile() != Closed {
		t.Errorf("new bar should start closed, got language=%s mobile=%s", nav.Language(), nav.Mobile())
	}
	if nav.Listening() || hub.Active() != 0 {
		t.Error("no listener should be registered while closed")
	}
}

// The language menu is open iff the number of toggles since the last
// closing event is odd.
func TestLanguageMenuToggleParity(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 50; run++ {
		hub := NewHub()
		nav := Mount(hub)
		lang := &countingToggler{}
		toggles := 0

		for step := 0; step < 40; step++ {
			switch rng.Intn(4) {
			case 0, 1:
				nav.ToggleLanguageMenu()
				toggles++
			case 2:
				wasOpen := nav.Language() == Open
				hub.Dispatch(outside)
				if wasOpen {
					toggles = 0
				}
			case 3:
				wasOpen := nav.Language() == Open
				nav.SelectLanguage(lang)
				if wasOpen {
					toggles = 0
				}
			}

			wantOpen := toggles%2 == 1
			if (nav.Language() == Open) != wantOpen {
				t.Fatalf("run %d step %d: language=%s after %d toggles", run, step, nav.Language(), toggles)
			}
			if nav.Listening() != wantOpen {
				t.Fatalf("run %d step %d: listening=%v while %s", run, step, nav.Listening(), nav.Language())
			}
			if hub.Active() > 1 {
				t.Fatalf("run %d step %d: %d listeners registered", run, step, hub.Active())
			}
		}
	}
}

func TestOutsidePointerDown(t *testing.T) {
	hub := NewHub()
	nav := Mount(hub)

	// Closed: no listener, no effect.
	hub.Dispatch(outside)
	if nav.Language() != Closed {
		t.Fatal("pointer-down while closed must not change state")
	}

	nav.ToggleLanguageMenu()
	hub.Dispatch(inside)
	if nav.Language() != Open {
		t.Fatal("pointer-down inside the menu must keep it open")
	}

	hub.Dispatch(outside)
	if nav.Language() != Closed {
		t.Fatal("pointer-down outside the menu must close it")
	}
	if hub.Active() != 0 {
		t.Errorf("listener should be released after closing, %d active", hub.Active())
	}

	hub.Dispatch(PointerEvent{})
	if nav.Language() != Closed {
		t.Error("an event with no path is outside and must not reopen the menu")
	}
}

func TestSelectLanguage(t *testing.T) {
	hub := NewHub()
	nav := Mount(hub)
	lang := &countingToggler{}

	nav.SelectLanguage(lang)
	if lang.calls != 0 {
		t.Fatalf("selection while closed should be ignored, got %d toggles", lang.calls)
	}

	for i := 1; i <= 3; i++ {
		nav.ToggleLanguageMenu()
		nav.SelectLanguage(lang)
		if nav.Language() != Closed {
			t.Fatalf("selection %d left the menu %s", i, nav.Language())
		}
		if lang.calls != i {
			t.Fatalf("after %d selections toggle was called %d times", i, lang.calls)
		}
	}
	if hub.Active() != 0 {
		t.Errorf("%d listeners left after selections", hub.Active())
	}
}

func TestMobileMenu(t *testing.T) {
	nav := Mount(NewHub())

	for i := 1; i <= 5; i++ {
		nav.ToggleMobileMenu()
		want := Closed
		if i%2 == 1 {
			want = Open
		}
		if nav.Mobile() != want {
			t.Fatalf("after %d presses mobile=%s; want %s", i, nav.Mobile(), want)
		}
	}

	// Open after five presses; a link forces it closed, twice is the same as once.
	nav.Navigate()
	if nav.Mobile() != Closed {
		t.Fatal("navigating should close the mobile menu")
	}
	nav.Navigate()
	if nav.Mobile() != Closed {
		t.Fatal("navigating again should leave the menu closed")
	}

	// The mobile menu does not touch the language menu.
	if nav.Language() != Closed {
		t.Errorf("language menu changed to %s", nav.Language())
	}
}

func TestSignOut(t *testing.T) {
	nav := Mount(NewHub())
	sess := &countingSession{}

	nav.ToggleMobileMenu()
	nav.SignOut(sess)

	if sess.logouts != 1 {
		t.Errorf("Logout called %d times; want 1", sess.logouts)
	}
	if nav.Mobile() != Closed {
		t.Error("signing out should close the mobile menu")
	}
}

func TestUnmountReleasesListener(t *testing.T) {
	hub := NewHub()

	for cycle := 0; cycle < 10; cycle++ {
		nav := Mount(hub)
		for i := 0; i < 5; i++ {
			nav.ToggleLanguageMenu()
			nav.ToggleLanguageMenu()
			nav.ToggleLanguageMenu()
			if hub.Active() != 1 {
				t.Fatalf("cycle %d: %d listeners while open; want 1", cycle, hub.Active())
			}
			hub.Dispatch(outside)
		}
		nav.ToggleLanguageMenu()
		nav.Unmount()
		if hub.Active() != 0 {
			t.Fatalf("cycle %d: %d listeners after unmount", cycle, hub.Active())
		}

		// An unmounted bar can no longer acquire a listener.
		nav.ToggleLanguageMenu()
		if hub.Active() != 0 || nav.Listening() {
			t.Fatalf("cycle %d: unmounted bar registered a listener", cycle)
		}
	}
}

func TestSnapshot(t *testing.T) {
	nav := Mount(NewHub())
	nav.ToggleLanguageMenu()
	nav.ToggleMobileMenu()

	s := nav.Snapshot()
	if s.Language != Open || s.Mobile != Open || !s.Listening || s.MenuID != LanguageMenuID {
		t.Errorf("unexpected snapshot %+v", s)
	}
	if InitialSnapshot() != (Snapshot{MenuID: LanguageMenuID}) {
		t.Errorf("unexpected initial snapshot %+v", InitialSnapshot())
	}
	if Open.String() != "open" || Closed.String() != "closed" {
		t.Error("unexpected Visibility strings")
	}
}
