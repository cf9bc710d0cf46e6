package cli

import (
	"fmt"

	"github.com/ARQAP/ARQAP-Catalog/src/seed"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/spf13/cobra"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Fill an empty database with sample artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			conn, err := openDatabase(ctx, rootOpts.Config)
			if err != nil {
				return err
			}
			defer conn.Close()

			res, err := seed.Run(ctx, services.NewCatalogService(conn), services.NewArtifactService(conn), seedOptions(rootOpts))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d artifacts (%d failed)\n", res.Created, res.Failed)
			return nil
		},
	}
}
