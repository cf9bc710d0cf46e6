package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the schema and backfill dimension columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := openDatabase(cmd.Context(), rootOpts.Config)
			if err != nil {
				return err
			}
			defer conn.Close()
			log.Info().Str("database", string(conn.Dialect())).Msg("migration complete")
			return nil
		},
	}
}
