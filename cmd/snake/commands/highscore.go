package commands

import (
	"context"
	"fmt"

	"github.com/battlesnakeio/arcade/highscore"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var highScoreCmd = &cobra.Command{
	Use:   "highscore",
	Short: "manages the persisted high score",
}

var highScoreShowCmd = &cobra.Command{
	Use:   "show",
	Short: "prints the high score",
	Run: func(*cobra.Command, []string) {
		store, closeStore := mustOpenStore()
		defer closeStore()

		t := highscore.NewTracker(context.Background(), store, highScoreKey)
		fmt.Println(t.HighScore())
	},
}

var highScoreResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "sets the high score back to zero",
	Run: func(*cobra.Command, []string) {
		store, closeStore := mustOpenStore()
		defer closeStore()

		ctx := context.Background()
		t := highscore.NewTracker(ctx, store, highScoreKey)
		if err := t.Reset(ctx); err != nil {
			closeStore()
			log.WithError(err).WithField("key", highScoreKey).Fatal("unable to reset high score")
		}
		log.WithField("key", highScoreKey).Info("high score reset")
	},
}

func init() {
	highScoreCmd.AddCommand(highScoreShowCmd)
	highScoreCmd.AddCommand(highScoreResetCmd)
}
