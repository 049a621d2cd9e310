package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"gordle/internal/console"
	"gordle/internal/daily"
	"gordle/internal/game"
	"gordle/internal/words"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "warn")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	root := &cobra.Command{
		Use:           "gordle",
		Short:         "Guess the five-letter word in six tries",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary()
			if err != nil {
				return err
			}
			g, err := game.New(dict)
			if err != nil {
				return err
			}
			return console.NewSession(g).Run()
		},
	}
	root.AddCommand(newDailyCmd())

	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("gordle exited")
	}
}

// newDailyCmd plays the word of the day: a secret derived from the UTC
// date, so every player on the same date gets the same word.
func newDailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Play the word of the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := loadDictionary()
			if err != nil {
				return err
			}
			idx := daily.WordIndex(time.Now(), getEnv("DAILY_SALT", "gordle"), dict.Len())
			log.Debug().Int("index", idx).Str("date", daily.DateKey(time.Now())).Msg("daily word selected")
			g, err := game.NewWithSecret(dict, dict.WordAt(idx))
			if err != nil {
				return err
			}
			return console.NewSession(g).Run()
		},
	}
}

// loadDictionary prefers a WORDS_FILE override and falls back to the
// embedded list.
func loadDictionary() (*words.Dictionary, error) {
	cfg := words.DefaultConfig()
	if path := os.Getenv("WORDS_FILE"); path != "" {
		return words.FromFile(path, cfg)
	}
	dict, err := words.Default(cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("candidates", dict.Len()).Msg("dictionary loaded")
	return dict, nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
