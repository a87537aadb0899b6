package cmd

import (
	"os"

	"github.com/0d0b3nus/chorale-writer/constants"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "chorale",
	Short: "Harmonic analysis of four-voice chorales",
	Long: `Reads four-voice chorales from standard midi files, slices them into
beats and names the chord heard in each beat against the piece's key.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "trace, debug, info, warn or error (default $LOG_LEVEL or info)")
}

func setupLogging(level string) error {
	if level == "" {
		level = constants.GetLogLevel()
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "--log-level")
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	return nil
}

func Execute() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("could not read .env: %v", err)
	}
	cobra.CheckErr(rootCmd.Execute())
}
