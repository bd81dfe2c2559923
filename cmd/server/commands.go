package main

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phrazzld/jobsearch-api/internal/config"
	"github.com/phrazzld/jobsearch-api/internal/platform/database"
	"github.com/phrazzld/jobsearch-api/internal/platform/logger"
	"github.com/phrazzld/jobsearch-api/internal/seed"
)

// newRootCmd builds the command tree. The root command serves the API.
func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "server",
		Short:         "Job search API server",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfigAndLogger(cmd, configFile)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			app, err := newApplication(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer app.cleanup()

			return app.serve(ctx)
		},
	}

	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (yaml, toml or json)")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newMigrateCmd(&configFile), newSeedCmd(&configFile))
	return root
}

func newMigrateCmd(configFile *string) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate {up|down|status}",
		Short:     "Apply, roll back or inspect schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{database.CommandUp, database.CommandDown, database.CommandStatus},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfigAndLogger(cmd, *configFile)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			db, err := database.Open(ctx, cfg.Database, log)
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()

			m, err := database.NewMigrator(db, cfg.Database.Driver, log)
			if err != nil {
				return err
			}

			if args[0] == database.CommandStatus {
				states, err := m.Status(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, s := range states {
					state := "pending"
					if s.Applied {
						state = "applied " + s.AppliedAt.Format("2006-01-02 15:04:05")
					}
					_, _ = fmt.Fprintf(out, "%05d  %-40s %s\n", s.Version, s.Path, state)
				}
				return nil
			}
			return m.Run(ctx, args[0])
		},
	}
}

func newSeedCmd(configFile *string) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create companies and job listings from a TOML seed file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := loadConfigAndLogger(cmd, *configFile)
			if err != nil {
				return err
			}

			f, err := seed.LoadFile(file)
			if err != nil {
				return err
			}

			app, err := newApplication(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer app.cleanup()

			seeder, err := seed.NewSeeder(app.companyService, app.jobListingService, log)
			if err != nil {
				return err
			}
			report, err := seeder.Run(cmd.Context(), f)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(),
				"companies: %d created, %d skipped\njob listings: %d created, %d skipped\n",
				report.CompaniesCreated, report.CompaniesSkipped,
				report.ListingsCreated, report.ListingsSkipped)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "seed.toml", "seed file to load")
	return cmd
}

// loadConfigAndLogger loads configuration with the command's flags bound and
// installs the configured logger as the default.
func loadConfigAndLogger(cmd *cobra.Command, configFile string) (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(config.Options{File: configFile, Flags: cmd.Flags()})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("db_driver", cfg.Database.Driver))
	return cfg, log, nil
}
