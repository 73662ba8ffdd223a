package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"time"

	"binance-futures-client/internal/api"
	"binance-futures-client/internal/config"
	"binance-futures-client/internal/logger"
	"binance-futures-client/internal/metrics"
	"binance-futures-client/internal/model"
	"binance-futures-client/internal/repository"
	"binance-futures-client/internal/service"
)

const usage = `usage: binance-futures [-env file] [-timeout d] <command> [args]

commands:
  ping
  time
  exchange-info [-out file] [-in file [-max-age d]]
  symbol <SYMBOL>
  klines <SYMBOL> <interval> [limit]
  book-ticker <SYMBOL>
  balance
  listen-key [-keepalive d]
`

func main() {
	envFile := flag.String("env", ".env", "path of the .env file")
	timeout := flag.Duration("timeout", 15*time.Second, "per-command timeout")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(logger.Options{File: cfg.LogFile, Level: cfg.LogLevel})
	logger.Info("Configuration loaded", "host", cfg.Host, "proxy", cfg.Proxy != "", "recv_window", cfg.RecvWindow)

	tracker := metrics.NewTracker(0)
	client, err := api.NewClient(cfg.BinanceApiKey, cfg.BinanceSecretKey, cfg.Host, cfg.Proxy, api.WithTracker(tracker))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create client: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, client, cfg, *timeout, flag.Args()); err != nil {
		logger.Error("Command failed", "command", flag.Arg(0), "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	s := tracker.Snapshot()
	logger.Info("Done", "requests", s.Count, "errors", s.Errors, "avg_ms", s.Avg.Milliseconds())
}

func run(ctx context.Context, client *api.Client, cfg *config.Config, timeout time.Duration, args []string) error {
	general := &api.FuturesGeneral{Client: client}
	market := &api.FuturesMarket{Client: client}

	// listen-key runs until interrupted, everything else is bounded.
	if args[0] != "listen-key" {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	switch cmd, rest := args[0], args[1:]; cmd {
	case "ping":
		rtt, err := general.Ping(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("pong in %s\n", rtt)
		return nil

	case "time":
		st, err := general.ServerTime(ctx)
		if err != nil {
			return err
		}
		return printJSON(st)

	case "exchange-info":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		out := fs.String("out", "", "write the snapshot to this file instead of stdout")
		in := fs.String("in", "", "print this cached snapshot, refreshing it when missing or stale")
		maxAge := fs.Duration("max-age", 0, "oldest -in snapshot still served (0 serves any age)")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		var info *model.ExchangeInfo
		var err error
		if *in != "" {
			info, err = cachedExchangeInfo(ctx, repository.NewStorage(), general, *in, *maxAge)
		} else {
			info, err = general.ExchangeInfo(ctx)
		}
		if err != nil {
			return err
		}
		if *out != "" {
			if err := repository.NewStorage().Write(*out, info); err != nil {
				return err
			}
			fmt.Printf("%d symbols written to %s\n", len(info.Symbols), *out)
			return nil
		}
		return printJSON(info)

	case "symbol":
		if len(rest) != 1 {
			return fmt.Errorf("symbol: expected exactly one symbol")
		}
		sym, err := general.SymbolInfo(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(sym)

	case "klines":
		if len(rest) < 2 {
			return fmt.Errorf("klines: expected <SYMBOL> <interval> [limit]")
		}
		limit := 0
		if len(rest) > 2 {
			n, err := strconv.Atoi(rest[2])
			if err != nil {
				return fmt.Errorf("klines: invalid limit: %w", err)
			}
			limit = n
		}
		klines, err := market.Klines(ctx, rest[0], rest[1], limit)
		if err != nil {
			return err
		}
		return printJSON(klines)

	case "book-ticker":
		if len(rest) != 1 {
			return fmt.Errorf("book-ticker: expected exactly one symbol")
		}
		ticker, err := market.BookTicker(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(ticker)

	case "balance":
		account := &api.FuturesAccount{Client: client, RecvWindow: cfg.RecvWindow}
		balances, err := account.Balance(ctx)
		if err != nil {
			return err
		}
		return printJSON(balances)

	case "listen-key":
		fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
		keepAlive := fs.Duration("keepalive", service.DefaultKeepAliveInterval, "keep-alive interval")
		if err := fs.Parse(rest); err != nil {
			return err
		}
		return runSession(ctx, &api.FuturesUserStream{Client: client}, *keepAlive, timeout)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runSession(ctx context.Context, stream *api.FuturesUserStream, interval, timeout time.Duration) error {
	session := service.NewSession(stream)
	session.Interval = interval

	startCtx, cancel := context.WithTimeout(ctx, timeout)
	key, err := session.Start(startCtx)
	cancel()
	if err != nil {
		return err
	}
	fmt.Println(key)

	runErr := session.Run(ctx)

	stopCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := session.Stop(stopCtx); err != nil {
		return err
	}
	if errors.Is(runErr, context.Canceled) {
		return nil
	}
	return runErr
}

type exchangeInfoSource interface {
	ExchangeInfo(ctx context.Context) (*model.ExchangeInfo, error)
}

// cachedExchangeInfo serves the snapshot at path while it is fresh. Otherwise
// it fetches from src and rewrites the snapshot.
func cachedExchangeInfo(ctx context.Context, store *repository.Storage, src exchangeInfoSource, path string, maxAge time.Duration) (*model.ExchangeInfo, error) {
	if store.Fresh(path, maxAge) {
		var info model.ExchangeInfo
		err := store.Read(path, &info)
		if err == nil {
			logger.Debug("Serving cached exchange info", "path", path, "symbols", len(info.Symbols))
			return &info, nil
		}
		logger.Warn("Cached exchange info unreadable, refetching", "path", path, "error", err)
	}

	info, err := src.ExchangeInfo(ctx)
	if err != nil {
		return nil, err
	}
	if err := store.Write(path, info); err != nil {
		return nil, err
	}
	logger.Info("Exchange info cached", "path", path, "symbols", len(info.Symbols))
	return info, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
