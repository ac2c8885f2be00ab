// Package api serves the browser client: the index page and the static
// assets next to it.
package api

import (
	"bytes"
	"context"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/public"
	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const indexFile = "index.html"

var (
	requests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "snake",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Static file requests by status code and method.",
		},
		[]string{"code", "method"},
	)
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "snake",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Static file request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)
)

func init() {
	prometheus.MustRegister(requests, requestDuration)
}

// Server is the http server for the browser client.
type Server struct {
	hs *http.Server
}

// New creates a server listening on addr that serves assets.
func New(addr string, assets fs.FS) *Server {
	return &Server{
		hs: &http.Server{
			Addr:    addr,
			Handler: Handler(assets),
		},
	}
}

// Addr is the address the server listens on.
func (s *Server) Addr() string { return s.hs.Addr }

// WaitForExit serves until the server fails or is shut down. A clean
// shutdown returns nil.
func (s *Server) WaitForExit() error {
	log.WithField("listen", s.hs.Addr).Info("snake listening")
	err := s.hs.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}

// Assets returns the directory dir when it exists, or the copy of the client
// compiled into the binary otherwise.
func Assets(dir string) fs.FS {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			log.WithField("dir", dir).Info("serving assets from disk")
			return os.DirFS(dir)
		}
		log.WithField("dir", dir).Warn("asset directory not found, using embedded assets")
	}
	return public.FS
}

// Handler builds the full middleware chain around the asset router. The
// index page is served for "/", every other path is looked up in assets.
func Handler(assets fs.FS) http.Handler {
	router := httprouter.New()
	index := serveIndex(assets)
	router.GET("/", index)
	router.HEAD("/", index)
	router.NotFound = http.FileServer(http.FS(assets))

	var h http.Handler = router
	h = limit(h, rate.NewLimiter(config.RequestRate, config.RequestBurst))
	h = cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodHead},
	}).Handler(h)
	h = logRequests(h)
	h = promhttp.InstrumentHandlerDuration(requestDuration, h)
	h = promhttp.InstrumentHandlerCounter(requests, h)
	return h
}

func serveIndex(assets fs.FS) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		b, err := fs.ReadFile(assets, indexFile)
		if err != nil {
			log.WithError(err).Error("unable to read index page")
			http.Error(w, "index not found", http.StatusNotFound)
			return
		}
		http.ServeContent(w, r, indexFile, time.Time{}, bytes.NewReader(b))
	}
}

func limit(next http.Handler, limiter *rate.Limiter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   sw.status,
			"duration": time.Since(start),
		}).Debug("request")
	})
}
