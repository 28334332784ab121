package web

import (
	"context"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"mizan/config"
	"mizan/lang"
	"mizan/ui"
)

// site is what the handlers share.
type site struct {
	cfg    config.Config
	bundle *lang.Bundle
	store  *ui.Store
	now    func() time.Time
}

// NewServer creates and configures the RWeb server.
// Idle UI sessions are swept until ctx is done.
func NewServer(ctx context.Context, cfg config.Config) (*rweb.Server, error) {
	bundle, err := lang.Load()
	if err != nil {
		return nil, serr.Wrap(err, "failed to load translations")
	}
	fallback, ok := lang.Parse(cfg.DefaultLang)
	if !ok {
		fallback = lang.Primary
	}

	st := &site{
		cfg:    cfg,
		bundle: bundle,
		store:  ui.NewStore(cfg.SessionTTL),
		now:    time.Now,
	}
	go st.sweep(ctx)

	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Addr,
		Verbose: cfg.LogLevel == "debug",
	})

	s.Use(rweb.RequestInfo)
	s.Use(SessionMiddleware)
	s.Use(JWTAuthMiddleware)
	s.Use(CSRFMiddleware)
	s.Use(LanguageMiddleware(bundle, fallback))
	s.Use(SecurityHeadersMiddleware)
	s.Use(LoggingMiddleware)

	st.setupRoutes(s)
	if err := SetupStaticFiles(s); err != nil {
		return nil, err
	}

	return s, nil
}

// sweep unmounts idle sessions, releasing their listeners.
func (st *site) sweep(ctx context.Context) {
	interval := st.cfg.SessionTTL / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := st.store.Sweep(); n > 0 {
				logger.Debug("Swept idle UI sessions", "count", n, "remaining", st.store.Len())
			}
		}
	}
}

// Run starts the server
func Run(s *rweb.Server, addr string) error {
	logger.Info("Mizan web server starting", "address", addr)
	return s.Run()
}
