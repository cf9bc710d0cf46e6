package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/ARQAP/ARQAP-Catalog/src/seed"
	"github.com/ARQAP/ARQAP-Catalog/src/server"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Start the catalog HTTP API.

The database is selected by DATABASE_URL (PostgreSQL) or SQLITE_PATH, migrated
on startup, and seeded with sample artifacts once the listener is up unless
SEED_DISABLE is set.

Artifact mutations are authorized by the bearer token returned from
POST /api/login. Clients that still send the unsigned x-user-role header need
TRUST_ROLE_HEADER=true.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), rootOpts)
		},
	}
}

func runServe(ctx context.Context, opts *RootOptions) error {
	cfg := opts.Config
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := openDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()

	svc, err := server.NewServices(conn, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}
	router := server.NewRouter(svc, server.RouterOptions{
		CORSOrigins:     cfg.CORSOrigins,
		AllowAllOrigins: cfg.AllowAllOrigins(),
		TrustRoleHeader: cfg.TrustRoleHeader,
	})

	srv, err := server.Listen(cfg.Addr(), router)
	if err != nil {
		return err
	}
	log.Info().Str("addr", srv.Addr().String()).Str("database", string(conn.Dialect())).Msg("server listening")
	if cfg.SecretGenerated {
		log.Warn().Msg("JWT_SECRET not set, using a random secret; tokens are invalid after restart and across instances")
	}
	if cfg.TrustRoleHeader {
		log.Warn().Msg("unsigned x-user-role header is trusted for authorization")
	}

	if cfg.SeedDisabled {
		log.Info().Msg("auto-seed disabled")
	} else {
		seed.RunInBackground(ctx, svc.Catalogs, svc.Artifacts, seedOptions(opts))
	}

	return srv.Serve(ctx)
}

func seedOptions(opts *RootOptions) seed.Options {
	var o seed.Options
	if opts.Config.SeedFetchImages {
		o.Fetcher = seed.NewHTTPImageFetcher(opts.Config.SeedImageURL)
	}
	return o
}
