package lang

import (
	"embed"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/rohanthewiz/serr"
)

//go:embed locales/*.json
var localeFiles embed.FS

// Bundle holds a flat key -> text dictionary per language.
type Bundle struct {
	dict map[Code]map[string]string
}

// Load reads the embedded dictionaries. The primary language must be present.
func Load() (*Bundle, error) {
	b := &Bundle{dict: map[Code]map[string]string{}}

	for _, code := range []Code{Primary, Alternate} {
		raw, err := localeFiles.ReadFile("locales/" + string(code) + ".json")
		if err != nil {
			if code == Primary {
				return nil, serr.Wrap(err, "failed to read primary locale")
			}
			continue
		}
		var m map[string]string
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, serr.Wrap(err, "failed to parse locale "+string(code))
		}
		b.dict[code] = m
	}
	return b, nil
}

// T returns the text for key in code, falling back to the primary
// language and finally to the key itself.
func (b *Bundle) T(code Code, key string) string {
	if m, ok := b.dict[code]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := b.dict[Primary]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}

// For binds the bundle to one language.
func (b *Bundle) For(code Code) Translator {
	return Translator{bundle: b, code: code}
}

// Resolve picks the best supported language from an Accept-Language header.
func (b *Bundle) Resolve(acceptLang string, fallback Code) Code {
	type pref struct {
		code Code
		q    float64
		pos  int
	}
	var prefs []pref
	for i, raw := range strings.Split(acceptLang, ",") {
		p := strings.TrimSpace(raw)
		if p == "" {
			continue
		}
		q := 1.0
		if sc := strings.IndexByte(p, ';'); sc != -1 {
			params := strings.TrimSpace(p[sc+1:])
			p = strings.TrimSpace(p[:sc])
			if strings.HasPrefix(params, "q=") {
				if v, err := strconv.ParseFloat(strings.TrimPrefix(params, "q="), 64); err == nil {
					q = v
				}
			}
		}
		if dash := strings.IndexByte(p, '-'); dash != -1 {
			p = p[:dash]
		}
		if code, ok := Parse(p); ok && q > 0 {
			prefs = append(prefs, pref{code: code, q: q, pos: i})
		}
	}
	if len(prefs) == 0 {
		return fallback
	}
	sort.SliceStable(prefs, func(i, j int) bool {
		if prefs[i].q == prefs[j].q {
			return prefs[i].pos < prefs[j].pos
		}
		return prefs[i].q > prefs[j].q
	})
	return prefs[0].code
}

// Translator is a Bundle bound to the language of the current request.
type Translator struct {
	bundle *Bundle
	code   Code
}

func (t Translator) T(key string) string {
	if t.bundle == nil {
		return key
	}
	return t.bundle.T(t.code, key)
}

func (t Translator) Code() Code { return t.code }

func (t Translator) Dir() Direction { return DirectionOf(t.code) }
