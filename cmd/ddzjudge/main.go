// Command ddzjudge classifies Dou Dizhu plays and judges whether each
// challenger beats its incumbent. It reads a rounds document and writes one
// JSON verdict per line.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/play/landlord/pkg/compile"
	"github.com/play/landlord/pkg/config"
	"github.com/play/landlord/pkg/doudizhu"
	"github.com/play/landlord/pkg/judge"
	"github.com/play/landlord/pkg/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		log.Error().Err(err).Msg("ddzjudge failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := config.NewFlagSet(compile.Name)
	fs.SetOutput(stderr)
	cfg, err := config.Load(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if cfg.Version {
		_, err = fmt.Fprintln(stdout, string(compile.JSON()))
		return err
	}

	if err := logger.Setup(stderr, cfg.Log.Level, cfg.Log.Pretty); err != nil {
		return err
	}
	compile.Log()

	data, err := readInput(cfg.Input, stdin)
	if err != nil {
		return err
	}
	rounds, err := judge.ParseRounds(data)
	if err != nil {
		return err
	}

	var opts []doudizhu.Option
	if cfg.Extended {
		opts = append(opts, doudizhu.WithExtendedPatterns())
	}
	j := judge.New(judge.WithWorkers(cfg.Workers), judge.WithRules(doudizhu.NewRules(opts...)))

	verdicts, err := j.JudgeAll(log.Logger.WithContext(ctx), rounds)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	for _, v := range verdicts {
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rounds: %w", err)
	}
	return data, nil
}
