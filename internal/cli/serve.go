package cli

import (
	"cmp"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/mermaidgen/internal/server"
	"github.com/matzehuels/mermaidgen/pkg/store"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string // listen address, e.g. ":8080"
	mongoURI string // MongoDB connection URI; empty means in-memory store
	noCache  bool   // disable the render cache
}

// newServeCmd creates the serve command for running the HTTP API.
//
// With no MongoDB URI configured, saved diagrams live in memory and are
// lost on restart. Flags override the corresponding config file values.
func newServeCmd() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the diagram rendering API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default :8080)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo-uri", "", "MongoDB URI for diagram storage (default in-memory)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func runServe(cmd *cobra.Command, opts *serveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	addr := cmp.Or(opts.addr, cfg.Server.Addr, ":8080")
	mongoURI := cmp.Or(opts.mongoURI, cfg.Server.Mongo.URI)

	var st store.Store
	if mongoURI != "" {
		mongoStore, err := store.NewMongoStore(ctx, store.MongoOptions{
			URI:      mongoURI,
			Database: cmp.Or(cfg.Server.Mongo.Database, appName),
		})
		if err != nil {
			return fmt.Errorf("connect store: %w", err)
		}
		defer mongoStore.Close(ctx)
		st = mongoStore
		logger.Info("using mongodb store", "database", cmp.Or(cfg.Server.Mongo.Database, appName))
	} else {
		st = store.NewMemoryStore()
		logger.Warn("using in-memory store; saved diagrams are lost on restart")
	}

	runner, err := newRunner(ctx, cfg, opts.noCache)
	if err != nil {
		return fmt.Errorf("create runner: %w", err)
	}

	srv := server.New(runner, st, logger)
	return srv.ListenAndServe(ctx, addr)
}
