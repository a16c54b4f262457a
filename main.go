package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"geek/communication"
	"geek/engine"
	"geek/experiments/metrics"
	"geek/meta"
)

func main() {
	configPath := flag.String("config", "", "optional yaml config file")
	flag.Parse()

	config, err := meta.LoadConfig(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	setupLogging(config)

	seed := config.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(seed))

	comm := communication.NewTextCommunicator(os.Stdin, os.Stdout)
	width, height, err := comm.ReadBoard()
	if err != nil {
		log.Fatal().Err(err).Msg("reading board dimensions")
	}
	log.Info().Int("width", width).Int("height", height).Uint64("seed", seed).
		Msg("game starting")

	options := []engine.Option{}
	var collector metrics.Collector
	if config.MetricsDir != "" {
		collector = metrics.NewCollector()
		options = append(options, engine.WithMetrics(collector))
	}

	e := engine.New(comm, width, height, rng, options...)
	if err := e.Run(); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}

	if collector != nil {
		writeMetrics(config.MetricsDir, collector, e)
	}
}

// setupLogging routes everything to stderr; stdout carries the protocol.
func setupLogging(config meta.Config) {
	var w io.Writer = os.Stderr
	if config.PrettyLogs {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || config.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func writeMetrics(dir string, collector metrics.Collector, e *engine.Engine) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		log.Error().Err(err).Msg("creating metrics writer")
		return
	}
	if err := writer.WriteTurnRecords(collector.TurnRecords()); err != nil {
		log.Error().Err(err).Msg("writing turn records")
	}
	record := collector.Complete(e.State.MyScore, e.State.OpponentScore)
	if err := writer.WriteGameRecord(record); err != nil {
		log.Error().Err(err).Msg("writing game record")
	}
}
