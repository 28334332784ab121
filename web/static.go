package web

import (
	"embed"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

//go:embed static
var staticFiles embed.FS

// faviconSVG is the scales mark, served for /favicon.ico
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64"><rect width="64" height="64" rx="10" fill="#1f3a5f"/><path d="M32 12v36M18 20h28M12 36l6-16 6 16zM40 36l6-16 6 16zM22 50h20" stroke="#c9a44c" stroke-width="3" fill="none" stroke-linejoin="round"/></svg>`

var assetTypes = map[string]string{
	".css":  "text/css; charset=utf-8",
	".js":   "application/javascript; charset=utf-8",
	".json": "application/json",
	".svg":  "image/svg+xml",
}

type asset struct {
	body        []byte
	contentType string
}

// loadAssets reads the embedded stylesheet and scripts once, keyed by
// their path under /static/. Files of unknown type are not served.
func loadAssets() (map[string]asset, error) {
	assets := map[string]asset{}
	err := fs.WalkDir(staticFiles, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ct, ok := assetTypes[path.Ext(p)]
		if !ok {
			return nil
		}
		body, err := staticFiles.ReadFile(p)
		if err != nil {
			return serr.Wrap(err, "failed to read asset "+p)
		}
		assets[strings.TrimPrefix(p, "static/")] = asset{body: body, contentType: ct}
		return nil
	})
	if err != nil {
		return nil, serr.Wrap(err, "failed to load static assets")
	}
	return assets, nil
}

// SetupStaticFiles serves the favicon and the embedded assets.
// Pages reference assets with a ?v= query, bumped on change.
func SetupStaticFiles(s *rweb.Server) error {
	assets, err := loadAssets()
	if err != nil {
		return err
	}

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", func(c rweb.Context) error {
		a, ok := assets[strings.TrimPrefix(c.Request().Path(), "/static/")]
		if !ok {
			c.SetStatus(http.StatusNotFound)
			return nil
		}
		c.Response().SetHeader("Content-Type", a.contentType)
		c.Response().SetHeader("Cache-Control", "public, max-age=3600")
		return c.Bytes(a.body)
	})
	return nil
}
