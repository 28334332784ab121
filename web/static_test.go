package web

import (
	"strings"
	"testing"
)

func TestLoadAssets(t *testing.T) {
	assets, err := loadAssets()
	if err != nil {
		t.Fatalf("loadAssets error: %v", err)
	}

	testCases := []struct {
		path, contentType, contains string
	}{
		{"css/site.css", "text/css; charset=utf-8", ".page-shell"},
		{"js/shell.js", "application/javascript; charset=utf-8", "/ui/events"},
	}
	for _, tc := range testCases {
		a, ok := assets[tc.path]
		if !ok {
			t.Errorf("asset %s not loaded", tc.path)
			continue
		}
		if a.contentType != tc.contentType {
			t.Errorf("%s content type = %q; want %q", tc.path, a.contentType, tc.contentType)
		}
		if !strings.Contains(string(a.body), tc.contains) {
			t.Errorf("%s should contain %q", tc.path, tc.contains)
		}
	}
}

func TestShellScriptSendsCSRFToken(t *testing.T) {
	assets, err := loadAssets()
	if err != nil {
		t.Fatalf("loadAssets error: %v", err)
	}
	if !strings.Contains(string(assets["js/shell.js"].body), csrfHeader) {
		t.Error("page script should send the CSRF header with UI events")
	}
}
