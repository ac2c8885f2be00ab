package commands

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/arcade/api"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	port       = settings.Port
	publicDir  = settings.PublicDir
	promEnable = true
	promListen = settings.PrometheusListen
)

func init() {
	serveCmd.Flags().IntVarP(&port, "port", "p", port, "port to serve the game on")
	serveCmd.Flags().StringVar(&publicDir, "public", publicDir, "directory of static files, the embedded client is used when it is missing")
	serveCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	serveCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

var serveCmd = &cobra.Command{
	Use:    "serve",
	Short:  "serves the browser game",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		s := api.New(fmt.Sprintf(":%d", port), api.Assets(publicDir))
		go shutdownOnSignal(s)
		if err := s.WaitForExit(); err != nil {
			log.WithError(err).
				WithField("listen", s.Addr()).
				Fatal("snake server failed")
		}
	},
}

func shutdownOnSignal(s *api.Server) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		log.WithError(err).Warn("unclean shutdown")
	}
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
