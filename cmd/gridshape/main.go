package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/gridshape/internal/logger"
	"github.com/ib-77/gridshape/internal/mongodb"
	"github.com/ib-77/gridshape/internal/settings"
	"github.com/ib-77/gridshape/pkg/shape"
	"github.com/ib-77/gridshape/pkg/shape/bucket"
	"github.com/ib-77/gridshape/pkg/shape/hook"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type app struct {
	cfg *settings.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "gridshape",
		Short:         "Inspect GridFS storage settings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := settings.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			log, err := logger.New(&cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.cfg = cfg
			a.log = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.AddCommand(a.urlCmd(), a.filenameCmd(), a.probeCmd())
	return root
}

func (a *app) urlCmd() *cobra.Command {
	var unique bool

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the MongoDB connection URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := a.cfg.Mongo.URL()
			if unique {
				u = a.cfg.Mongo.UniqueURL()
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}

	cmd.Flags().BoolVar(&unique, "unique", false, "use a random database name")
	return cmd
}

func (a *app) filenameCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "filename",
		Short: "Print generated upload filenames",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}

			src := hook.FromHook(hook.GenerateFilename)
			for range count {
				name, err := src.Resolve(cmd.Context(), nil, nil).Unwrap()
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of names")
	return cmd
}

func (a *app) probeCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Connect to MongoDB and open a GridFS bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			client, err := mongodb.Connect(ctx, a.cfg.Mongo, timeout, a.log)
			if err != nil {
				a.log.Error("Probe failed", zap.Error(err))
				return err
			}
			defer func() { _ = client.Disconnect(context.Background()) }()

			// the database is handed over the way callers pass a pending connection
			pending := shape.Resolved(client.Database(a.cfg.Mongo.Database))
			h, err := bucket.Resolve(ctx, pending)
			if err != nil {
				a.log.Error("Failed to resolve bucket", zap.Error(err))
				return err
			}

			files, chunks := bucket.CollectionNames(h)
			a.log.Info("Bucket ready",
				zap.Stringer("kind", shape.Classify(h)),
				zap.String("files", files),
				zap.String("chunks", chunks))

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", shape.Classify(h), files, chunks)
			return err
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", mongodb.DefaultTimeout, "connection timeout")
	return cmd
}
