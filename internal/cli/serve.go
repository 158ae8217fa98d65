package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/protodiagram/internal/server"
	"github.com/matzehuels/protodiagram/pkg/cache"
	"github.com/matzehuels/protodiagram/pkg/pipeline"
	"github.com/matzehuels/protodiagram/pkg/store"
)

// serveOpts holds the flags of the serve command.
type serveOpts struct {
	addr      string
	redisURL  string // shared render cache; file cache when empty
	cacheDir  string
	noCache   bool
	mongoURI  string // diagram store; storeDir or memory when empty
	mongoDB   string
	storeDir  string
	keyPrefix string
}

func (c *CLI) serveCommand() *cobra.Command {
	opts := serveOpts{addr: ":8080", keyPrefix: appName + ":"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rendering API over HTTP",
		Long: `Serve diagram rendering and storage over HTTP.

Rendered output is cached in Redis (--redis) or on disk. Diagrams saved with
PUT /diagrams/{id} are kept in MongoDB (--mongo), a directory (--store-dir) or
in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.addr, "addr", opts.addr, "listen address")
	flags.StringVar(&opts.redisURL, "redis", "", "redis URL for the render cache, e.g. redis://localhost:6379/0")
	flags.StringVar(&opts.keyPrefix, "key-prefix", opts.keyPrefix, "prefix for cache keys")
	flags.StringVar(&opts.cacheDir, "cache-dir", "", "file cache directory (default XDG cache dir)")
	flags.BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	flags.StringVar(&opts.mongoURI, "mongo", "", "MongoDB URI for saved diagrams")
	flags.StringVar(&opts.mongoDB, "mongo-db", store.DefaultDatabase, "MongoDB database name")
	flags.StringVar(&opts.storeDir, "store-dir", "", "directory for saved diagrams")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, cmd *cobra.Command, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	rc, err := openServeCache(ctx, opts)
	if err != nil {
		return err
	}
	runner := pipeline.NewRunner(rc, cache.NewScopedKeyer(nil, opts.keyPrefix), logger)
	defer runner.Close()

	st, err := openStore(ctx, opts)
	if err != nil {
		return err
	}
	defer st.Close()

	out := cmd.OutOrStdout()
	printInfo(out, "Serving protocol diagrams")
	printKeyValue(out, "address", opts.addr)
	printKeyValue(out, "cache", describeCache(opts))
	printKeyValue(out, "store", describeStore(opts))

	return server.New(runner, st, logger).ListenAndServe(ctx, opts.addr)
}

func openServeCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	switch {
	case opts.noCache:
		return cache.NewNullCache(), nil
	case opts.redisURL != "":
		return cache.NewRedisCache(ctx, opts.redisURL)
	case opts.cacheDir != "":
		return cache.NewFileCache(opts.cacheDir)
	}
	return newCache(false)
}

func openStore(ctx context.Context, opts serveOpts) (store.Store, error) {
	switch {
	case opts.mongoURI != "":
		return store.NewMongoStore(ctx, opts.mongoURI, opts.mongoDB)
	case opts.storeDir != "":
		return store.NewFileStore(opts.storeDir)
	}
	return store.NewMemoryStore(), nil
}

func describeCache(opts serveOpts) string {
	switch {
	case opts.noCache:
		return "disabled"
	case opts.redisURL != "":
		return "redis"
	case opts.cacheDir != "":
		return opts.cacheDir
	}
	if dir, err := cacheDir(); err == nil {
		return dir
	}
	return "disabled"
}

func describeStore(opts serveOpts) string {
	switch {
	case opts.mongoURI != "":
		return "mongodb/" + opts.mongoDB
	case opts.storeDir != "":
		return opts.storeDir
	}
	return "memory"
}
