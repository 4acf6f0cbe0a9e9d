package commands

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/dfwhvac/internal/config"
	"github.com/dfwhvac/internal/logger"
)

var (
	envFile string
	cfg     config.AppConfig
	log     logger.Logger
)

// Execute runs the command line. Without a subcommand it serves the site.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the dfwhvac command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dfwhvac",
		Short:        "DFW HVAC website server and maintenance tasks",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(envFile); err != nil {
				return err
			}
			cfg = config.Load()
			gin.SetMode(cfg.GinMode)
			log = logger.NewStructured(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if log != nil {
				_ = log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")

	root.AddCommand(serveCmd(), syncReviewsCmd(), sitemapCmd(), createAdminCmd())
	return root
}
