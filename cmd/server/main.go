package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"blackjack-table-server/internal/config"
	"blackjack-table-server/internal/mux"
	"blackjack-table-server/internal/rng"
	"blackjack-table-server/pkg/blackjack"
	"blackjack-table-server/pkg/deck"
	"blackjack-table-server/pkg/directory"
	"blackjack-table-server/pkg/room"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":5000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	supply, err := buildSupply(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("could not build card supply")
	}

	pollInterval := time.Duration(cfg.PollInterval) * time.Second
	cooldown := time.Duration(cfg.CooldownDelay) * time.Second
	dirClient := directory.NewClient(cfg.DirectoryURL, pollInterval)

	round, err := blackjack.NewRound(logrus.StandardLogger(), supply, dirClient, cooldown)
	if err != nil {
		logrus.WithError(err).Fatal("could not start the opening round")
	}

	croupier := room.NewCroupier(logrus.StandardLogger(), round, dirClient, pollInterval, cfg.AutoStart)
	croupier.StartShift()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, croupier))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithFields(logrus.Fields{
		"addr":      srv.Addr,
		"directory": cfg.DirectoryURL,
	}).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func buildSupply(cfg config.Config) (*deck.Supply, error) {
	reference := deck.StandardReference()
	if cfg.CardFile != "" {
		var err error
		if reference, err = deck.ReferenceFromFile(cfg.CardFile); err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"cardFile": cfg.CardFile,
			"cards":    len(reference),
		}).Info("loaded card reference")
	}

	return deck.NewSupply(reference, rng.Crypto{}), nil
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
