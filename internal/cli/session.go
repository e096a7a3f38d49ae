package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/roach88/smartstock/internal/config"
	"github.com/roach88/smartstock/internal/logging"
	"github.com/roach88/smartstock/internal/shop"
	"github.com/roach88/smartstock/internal/store"
)

// errInvalidArgument marks a flag or argument that failed to parse.
var errInvalidArgument = errors.New("invalid argument")

// session is an open shop plus the resources backing it.
type session struct {
	shop      *shop.Shop
	logger    *slog.Logger
	formatter *OutputFormatter
	closers   []func() error
}

// openSession resolves configuration, opens the store and loads the shop.
// On error the failure has already been reported through the formatter.
func openSession(ctx context.Context, opts *RootOptions, cmd *cobra.Command) (*session, error) {
	formatter := newFormatter(opts, cmd)

	cfg, err := config.Load(opts.EnvFile)
	if err == nil {
		if opts.DB != "" {
			cfg.DB = opts.DB
		}
		if opts.Backend != "" {
			cfg.Backend = opts.Backend
		}
		err = cfg.Validate()
	}
	if err != nil {
		return nil, formatter.Fail("configuration", &configError{err})
	}
	loc, _ := cfg.Location()

	logger, closeLog := logging.New(logging.Options{
		File:    cfg.LogFile,
		Format:  cfg.LogFormat,
		Verbose: opts.Verbose,
		Quiet:   cfg.LogFile == "",
		Stderr:  cmd.ErrOrStderr(),
	})
	s := &session{logger: logger, formatter: formatter, closers: []func() error{closeLog}}

	st, err := store.Open(cfg.DB, cfg.Backend, store.WithLogger(logger))
	if err != nil {
		s.close()
		return nil, formatter.Fail("failed to open database", &storageError{err})
	}
	s.closers = append([]func() error{st.Close}, s.closers...)
	formatter.VerboseLog("Using %s database %s (%s)", cfg.Backend, cfg.DB, loc)

	shopOpts := []shop.Option{shop.WithLocation(loc), shop.WithLogger(logger)}
	if opts.clock != nil {
		shopOpts = append(shopOpts, shop.WithClock(opts.clock))
	}
	if opts.ids != nil {
		shopOpts = append(shopOpts, shop.WithIDGenerator(opts.ids))
	}
	s.shop = shop.New(ctx, st, shopOpts...)
	return s, nil
}

// close releases the store, then the log file.
func (s *session) close() {
	for _, c := range s.closers {
		if err := c(); err != nil && s.logger != nil {
			s.logger.Warn("close failed", "error", err)
		}
	}
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// withSession runs fn against an open session and closes it afterwards.
func withSession(opts *RootOptions, cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	s, err := openSession(ctx, opts, cmd)
	if err != nil {
		return err
	}
	defer s.close()
	return fn(ctx, s)
}

// parseMoney parses a positive baht amount such as "40" or "12.50".
func parseMoney(name, value string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: --%s %q is not a number", errInvalidArgument, name, value)
	}
	return d, nil
}
