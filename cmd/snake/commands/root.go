package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var settings = config.Load()

var (
	logLevel     = "info"
	backend      = settings.Backend
	backendArgs  = settings.BackendArgs
	highScoreKey = settings.HighScoreKey
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake serves the browser game and plays it in the terminal",
	Version: version.Version,
	PersistentPreRun: func(c *cobra.Command, args []string) {
		lvl, err := log.ParseLevel(logLevel)
		if err != nil {
			log.WithError(err).WithField("level", logLevel).Fatal("invalid log level")
		}
		log.SetLevel(lvl)
	},
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		serveCmd.Run(c, args)
	},
}

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level, as one of: [debug, info, warn, error]")
	rootCmd.PersistentFlags().StringVarP(&backend, "backend", "b", backend, "high score backend, as one of: [inmem, file, redis, postgres, sqlite]")
	rootCmd.PersistentFlags().StringVarP(&backendArgs, "backend-args", "a", backendArgs, "options to pass to the backend being used")
	rootCmd.PersistentFlags().StringVar(&highScoreKey, "key", highScoreKey, "name of the high score slot")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(highScoreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
