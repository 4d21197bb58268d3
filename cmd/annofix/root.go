package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/annofix/internal/version"
	"github.com/arthur-debert/annofix/pkg/logging"
	"github.com/arthur-debert/annofix/pkg/migrate"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "annofix",
		Short: "Rewrite retired org.apache.http.annotation imports",
		Long: `annofix walks the current directory tree and rewrites Java import
statements for the retired org.apache.http.annotation package into their
net.jcip.annotations equivalents.

Files are replaced atomically, one at a time; files without matching
imports are left byte-identical. Version-control metadata directories and
build output directories are never descended into.`,
		Args: cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cmd")

			// The walk root is fixed to the current working directory.
			result, err := migrate.Run(afero.NewOsFs(), ".")
			if err != nil {
				return err
			}

			logger.Info().
				Int("scanned", result.FilesScanned).
				Int("rewritten", result.FilesRewritten).
				Msg("Migration finished")
			return nil
		},
	}
)

func init() {
	// Verbosity flag for logging
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print version information for annofix`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("annofix version %s\n", version.Version)
		fmt.Printf("  commit: %s\n", version.Commit)
		fmt.Printf("  built:  %s\n", version.Date)
	},
}
