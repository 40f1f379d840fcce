package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/cheesesashimi/stara/pkg/catalog"
	"github.com/cheesesashimi/stara/pkg/contact"
	"github.com/cheesesashimi/stara/pkg/dealer"
	"github.com/cheesesashimi/stara/pkg/html"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Options are the dependencies of the site handler. Dealers and Products are
// read only once handed over.
type Options struct {
	Site           html.Site
	Dealers        dealer.Dealers
	Products       catalog.Products
	Sink           contact.Sink
	Logger         *zap.Logger
	MaxUploadBytes int64
}

type Server struct {
	opts   Options
	cities []string
	router chi.Router
}

func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	if opts.Sink == nil {
		opts.Sink = contact.NewLogSink(opts.Logger)
	}

	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = 10 << 20
	}

	s := &Server{
		opts:   opts,
		cities: dealer.Cities(opts.Dealers),
	}

	s.router = s.routes()

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.opts.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/", s.handleHome)
	r.Get("/about", s.handlePage(html.About))
	r.Get("/faq", s.handlePage(html.FAQ))
	r.Get("/collections", s.handleCollections)
	r.Get("/collections/{slug}", s.handleCollection)
	r.Get("/dealer-locator", s.handleDealerLocator)

	r.Get("/contact", s.handleContactPage)
	r.Post("/contact", s.handleContactForm)
	r.Get("/custom", s.handleCustomPage)
	r.Post("/custom", s.handleContactForm)

	r.Route("/api", func(r chi.Router) {
		r.Get("/dealers", s.handleDealerSearch)
		r.Post("/contact", s.handleContactAPI)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.NotFound(s.handleNotFound)

	return r
}

// ListenAndServe runs until ctx is cancelled, then shuts down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("Listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("Request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)),
				zap.String("requestID", middleware.GetReqID(r.Context())),
			)
		})
	}
}
