// Package lang models the site's two languages, their layout direction
// and the translated labels used by the page components.
package lang

import "strings"

// Code identifies a supported language.
type Code string

const (
	Arabic  Code = "ar"
	English Code = "en"

	// Primary is the site's default language; Alternate is the other one.
	Primary   = Arabic
	Alternate = English
)

// Parse normalizes s and reports whether it names a supported language.
func Parse(s string) (Code, bool) {
	switch c := Code(strings.ToLower(strings.TrimSpace(s))); c {
	case Arabic, English:
		return c, true
	default:
		return "", false
	}
}

// Other returns the language a toggle switches to.
func (c Code) Other() Code {
	if c == Alternate {
		return Primary
	}
	return Alternate
}

// Direction is the text and layout direction of a page.
type Direction string

const (
	RTL Direction = "rtl"
	LTR Direction = "ltr"
)

// DirectionOf maps a language to its layout direction.
// Only the alternate language is laid out left to right.
func DirectionOf(c Code) Direction {
	switch c {
	case Alternate:
		return LTR
	case Primary:
		return RTL
	default:
		return RTL
	}
}

// Provider is the source of truth for the visitor's language.
type Provider interface {
	Current() Code
	Toggle()
}

// Preference is a Provider holding the code in memory.
// OnChange, when set, is called with the new code after every toggle.
type Preference struct {
	code     Code
	OnChange func(Code)
}

// NewPreference starts a preference at code (Primary if code is unknown).
func NewPreference(code Code, onChange func(Code)) *Preference {
	if _, ok := Parse(string(code)); !ok {
		code = Primary
	}
	return &Preference{code: code, OnChange: onChange}
}

func (p *Preference) Current() Code {
	return p.code
}

func (p *Preference) Toggle() {
	p.code = p.code.Other()
	if p.OnChange != nil {
		p.OnChange(p.code)
	}
}
