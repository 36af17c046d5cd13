// Package api exposes the text encryption service over HTTP.
package api

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	encryptservice "github.com/Minby93/EncryptService"
	"github.com/Minby93/EncryptService/util"
	"github.com/gorilla/mux"
	"github.com/juju/ratelimit"
	"github.com/pires/go-proxyproto"
)

// -----------------------------------------------------------------------------

const (
	defaultMaxBodyBytes = 1 << 20

	readHeaderTimeout = 10 * time.Second
)

// -----------------------------------------------------------------------------

// Server represents the HTTP front of the encryption service
type Server struct {
	svc     *encryptservice.Service
	logger  *slog.Logger
	bucket  *ratelimit.Bucket
	maxBody int64
	router  *mux.Router
}

// Options configure the Server parameters.
type Options struct {
	// Logger receives request logs. If nil, slog.Default() is used.
	Logger *slog.Logger

	// RequestsPerSecond and Burst size the request token bucket. A zero rate disables limiting.
	RequestsPerSecond float64
	Burst             int64

	// MaxBodyBytes caps the size of a request body.
	MaxBodyBytes int64
}

// -----------------------------------------------------------------------------

// New creates a new HTTP server bound to the given service
func New(svc *encryptservice.Service, opts Options) *Server {
	s := &Server{
		svc:     svc,
		logger:  opts.Logger,
		maxBody: opts.MaxBodyBytes,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.maxBody <= 0 {
		s.maxBody = defaultMaxBodyBytes
	}
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		s.bucket = ratelimit.NewBucketWithRate(opts.RequestsPerSecond, burst)
	}

	router := mux.NewRouter()

	// Root endpoint - return OK for health checks
	router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)

	router.HandleFunc("/encrypt", s.handleEncrypt).Methods(http.MethodPost)
	router.HandleFunc("/decode", s.handleDecrypt).Methods(http.MethodPost)

	router.Use(s.logRequests, s.limitRequests)
	s.router = router

	return s
}

// Handler returns the HTTP handler serving all routes
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve accepts connections on the listener until the context is cancelled, then shuts down
// gracefully within the given timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()
	s.logger.Info("server listening", "addr", ln.Addr().String(), "engine", s.svc.Engine())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err

	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return util.NewExtendedError(err, "graceful shutdown failed")
	}
	err = <-errCh
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Listen opens a TCP listener. When proxyProtocol is set, connections are expected to start with a
// PROXY protocol header and report the original client address.
func Listen(addr string, proxyProtocol bool) (net.Listener, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, util.NewExtendedError(err, "unable to listen on "+addr)
	}
	if proxyProtocol {
		ln = &proxyproto.Listener{
			Listener:          ln,
			ReadHeaderTimeout: readHeaderTimeout,
		}
	}
	return ln, nil
}
