package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	commutedash "github.com/commutedash/commutedash"
	"github.com/commutedash/commutedash/board"
	"github.com/commutedash/commutedash/config"
	"github.com/commutedash/commutedash/internal/logging"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	source := flag.String("source", "all", "oneshot source: trains|tubes|buses|weather|all")
	configPath := flag.String("config", "", "path to config.yml")
	out := flag.String("out", "", "oneshot: write a plain-text departure board to this file (trains only)")
	flag.Parse()

	// .env is optional; explicit environment always wins.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logging.New(logging.Options{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.FilePath,
		Console:  true,
	})

	dash, err := commutedash.NewDashboard(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build dashboard")
	}

	switch *mode {
	case "serve":
		log.Info().
			Str("station", cfg.Rail.StationCode).
			Strs("modes", cfg.TfL.Modes).
			Int("port", cfg.Server.Port).
			Msg("commutedash starting")
		commutedash.StartServer(dash, log)
		commutedash.HandleGracefulShutdown(log)
	case "oneshot":
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		runOneshot(ctx, dash, cfg, *source, *out)
	default:
		log.Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

func runOneshot(ctx context.Context, dash *commutedash.Dashboard, cfg config.AppConfig, source, out string) {
	var result any
	switch source {
	case "trains":
		trains := dash.Trains(ctx)
		if out != "" {
			if err := writeBoardFile(out, cfg.Rail.StationCode, trains); err != nil {
				fmt.Fprintf(os.Stderr, "writing %s: %v\n", out, err)
				os.Exit(1)
			}
			fmt.Printf("departures written to %s\n", out)
			return
		}
		result = trains
	case "tubes":
		result = dash.Tubes(ctx)
	case "buses":
		result = dash.Buses(ctx)
	case "weather":
		result = dash.Weather(ctx)
	case "all":
		result = dash.Refresh(ctx)
	default:
		fmt.Fprintf(os.Stderr, "unknown source %q\n", source)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encoding output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(output))
}

// writeBoardFile renders the grouped departures as a plain-text board.
func writeBoardFile(path, station string, groups []board.PlatformGroup) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(f, "Upcoming departures for %s:\n\n", station)
	for _, g := range groups {
		fmt.Fprintf(f, "Platform %s\n", g.Platform)
		for _, dep := range g.Departures {
			std := dep.Scheduled
			if std == "" {
				std = "-"
			}
			fmt.Fprintf(f, "%-6s  %-25s  Plat %-3s  %-10s  %s (%s)\n",
				std, dep.Destination, dep.Platform, dep.Expected, dep.Operator, dep.OperatorCode)
		}
		fmt.Fprintln(f)
	}
	return f.Close()
}
