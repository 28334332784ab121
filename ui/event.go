package ui

import (
	"encoding/json"
	"strings"

	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// EventType names a user interaction forwarded by the browser.
type EventType string

const (
	EventLanguageToggle EventType = "lang-toggle"
	EventLanguageSelect EventType = "lang-select"
	EventMobileToggle   EventType = "mobile-toggle"
	EventNavigate       EventType = "navigate"
	EventPointerDown    EventType = "pointerdown"
)

// Event is the wire form of an interaction.
// Location is the page path the event came from and is used to re-render
// the bar with the right active link.
type Event struct {
	Type     EventType `json:"type" msgpack:"type"`
	Target   string    `json:"target,omitempty" msgpack:"target,omitempty"`
	Path     []string  `json:"path,omitempty" msgpack:"path,omitempty"`
	Location string    `json:"location,omitempty" msgpack:"location,omitempty"`
}

// IsMsgPack reports whether a request body is msgpack encoded, either by
// content type or the X-Body-Encoding header value.
func IsMsgPack(contentType, bodyEncoding string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "msgpack") || strings.EqualFold(bodyEncoding, "msgpack")
}

// DecodeEvent parses and validates an event body.
func DecodeEvent(body []byte, msgPack bool) (Event, error) {
	var ev Event
	if msgPack {
		if err := msgpack.Unmarshal(body, &ev); err != nil {
			return ev, serr.Wrap(err, "failed to decode msgpack event")
		}
	} else {
		if err := json.Unmarshal(body, &ev); err != nil {
			return ev, serr.Wrap(err, "failed to decode JSON event")
		}
	}
	return ev, ev.Validate()
}

// EncodeEvent is the msgpack encoding used by clients that opt in.
func EncodeEvent(ev Event) ([]byte, error) {
	b, err := msgpack.Marshal(ev)
	if err != nil {
		return nil, serr.Wrap(err, "failed to encode event")
	}
	return b, nil
}

func (e Event) Validate() error {
	switch e.Type {
	case EventLanguageToggle, EventLanguageSelect, EventMobileToggle, EventNavigate, EventPointerDown:
		return nil
	case "":
		return serr.New("event type is required")
	default:
		return serr.New("unknown event type " + string(e.Type))
	}
}

// Apply feeds one event to the navigation bar of a mounted page.
// Pointer-down events go through the page hub so only a registered
// listener can react to them.
func Apply(ev Event, nav *NavState, hub *Hub, lang LanguageToggler) error {
	if err := ev.Validate(); err != nil {
		return err
	}

	switch ev.Type {
	case EventLanguageToggle:
		nav.ToggleLanguageMenu()
	case EventLanguageSelect:
		nav.SelectLanguage(lang)
	case EventMobileToggle:
		nav.ToggleMobileMenu()
	case EventNavigate:
		nav.Navigate()
	case EventPointerDown:
		hub.Dispatch(PointerEvent{Path: ev.Path})
	}
	return nil
}
