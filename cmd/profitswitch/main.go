// profitswitch asks NiceHash which of your algorithms currently pays best.
//
// Usage:
//
//	profitswitch select --algo scrypt:1 --algo x11:12.5
//	profitswitch rank
//	profitswitch watch --interval 60
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli/v2"

	"profitswitch/internal/config"
	"profitswitch/internal/httpx"
	"profitswitch/internal/logx"
	"profitswitch/internal/nicehash"
	"profitswitch/internal/profit"
	"profitswitch/internal/ratelimit"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "profitswitch",
		Usage:     "Pick the most profitable mining algorithm from NiceHash quotes",
		Version:   version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Path to config.json (optional)",
				EnvVars: []string{"CONFIG_FILE"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error); overrides config",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "Log format (text, json); overrides config",
			},
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "NiceHash base URL; overrides config",
			},
			&cli.StringSliceFlag{
				Name:    "algo",
				Aliases: []string{"a"},
				Usage:   "Algorithm as name:factor, repeatable; replaces configured algorithms",
			},
		},
		Commands: []*cli.Command{
			selectCommand(),
			rankCommand(),
			watchCommand(),
		},
	}
}

// env bundles what every command needs.
type env struct {
	cfg      config.Config
	logger   *slog.Logger
	selector *profit.Selector
	algos    []profit.Algorithm
}

func setup(c *cli.Context) (*env, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if v := c.String("log-level"); v != "" {
		cfg.Log.Level = v
	}
	if v := c.String("log-format"); v != "" {
		cfg.Log.Format = v
	}
	if v := c.String("endpoint"); v != "" {
		cfg.NiceHash.Endpoint = v
	}
	if vs := c.StringSlice("algo"); len(vs) > 0 {
		algos, err := config.ParseAlgorithms(strings.Join(vs, ","))
		if err != nil {
			return nil, fmt.Errorf("--algo: %w", err)
		}
		cfg.Algorithms = algos
	}
	if len(cfg.Algorithms) == 0 {
		return nil, errors.New("no algorithms configured; pass --algo name:factor or set ALGORITHMS")
	}

	logger, err := logx.New(cfg.Log.Level, cfg.Log.Format, c.App.ErrWriter)
	if err != nil {
		return nil, err
	}

	httpClient := httpx.New(time.Duration(cfg.NiceHash.RequestTimeoutSec) * time.Second)
	httpClient.UserAgent = cfg.NiceHash.UserAgent

	client := nicehash.NewClient(
		nicehash.WithBaseURL(strings.TrimRight(cfg.NiceHash.Endpoint, "/")),
		nicehash.WithHTTPClient(httpClient),
		nicehash.WithMaxBodyBytes(cfg.NiceHash.MaxBodyBytes),
	)
	fetcher := ratelimit.Wrap(client,
		cfg.NiceHash.MaxRequestsPerMinute,
		cfg.NiceHash.Burst,
		time.Duration(cfg.NiceHash.MinRequestIntervalSec)*time.Second,
	)

	return &env{
		cfg:      cfg,
		logger:   logger,
		selector: profit.NewSelector(fetcher, profit.WithLogger(logger)),
		algos:    cfg.Algorithms,
	}, nil
}

func selectCommand() *cli.Command {
	return &cli.Command{
		Name:  "select",
		Usage: "Print the single most profitable algorithm and its port",
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			res, err := e.selector.Select(c.Context, e.algos)
			if err != nil && !errors.Is(err, profit.ErrNoMatch) {
				return err
			}
			return writeJSON(c.App.Writer, res.Describe(e.algos))
		},
	}
}

func rankCommand() *cli.Command {
	return &cli.Command{
		Name:  "rank",
		Usage: "Print every matched algorithm ordered by score",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Print JSON instead of a table",
			},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			ranked, err := e.selector.Rank(c.Context, e.algos)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, struct {
					Ranked []profit.Match `json:"ranked"`
				}{Ranked: ranked})
			}
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ALGORITHM\tFACTOR\tPAYING\tSCORE\tPORT")
			for _, m := range ranked {
				fmt.Fprintf(tw, "%s\t%g\t%s\t%s\t%d\n", m.Name, e.algos[m.Index].Factor, m.Price, m.Score, m.Port)
			}
			return tw.Flush()
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Re-select periodically and print a line whenever the best algorithm changes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "interval",
				Usage: "Seconds between selections; overrides config",
			},
		},
		Action: func(c *cli.Context) error {
			e, err := setup(c)
			if err != nil {
				return err
			}
			interval := time.Duration(e.cfg.Watch.IntervalSec) * time.Second
			if v := c.Int("interval"); v > 0 {
				interval = time.Duration(v) * time.Second
			}

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			e.logger.Info("watching", "algorithms", len(e.algos), "interval", interval)
			watch(ctx, e.selector, e.algos, interval, e.logger, c.App.Writer)
			return nil
		},
	}
}

// watch runs a selection now and then every interval until ctx is done.
// A line is written to out whenever the selection differs from the last
// one written. Failed selections are logged and do not count as a change.
func watch(ctx context.Context, selector *profit.Selector, algos []profit.Algorithm, interval time.Duration, logger *slog.Logger, out io.Writer) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last *profit.Selection
	for {
		res, err := selector.Select(ctx, algos)
		switch {
		case err == nil, errors.Is(err, profit.ErrNoMatch):
			sel := res.Describe(algos)
			if last == nil || *last != sel {
				if last != nil {
					logger.Info("best algorithm changed", "from", last.Name, "to", sel.Name)
				}
				last = &sel
				if err := writeJSON(out, sel); err != nil {
					logger.Error("write", "err", err)
				}
			}
		case ctx.Err() != nil:
			return
		default:
			logger.Warn("selection failed, keeping previous", "err", err)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
