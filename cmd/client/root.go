package main

import (
	"fmt"

	"github.com/MKhiriev/lumina-sync/internal/client"
	"github.com/MKhiriev/lumina-sync/internal/config"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/spf13/cobra"
)

// cli holds what the root command prepares for its subcommands.
type cli struct {
	flags *config.StructuredConfig
	cfg   *config.ClientConfig
	log   *logger.Logger
	app   *client.App

	withUI bool
}

func newRootCmd() (*cobra.Command, *cli) {
	c := &cli{}

	root := &cobra.Command{
		Use:   "lumina-sync",
		Short: "Lumina Sync - офлайн-синхронизация заметок и постов",
		Long: `Lumina Sync хранит заметки и посты локально и синхронизирует их с сервером.

Изменения, сделанные без сети, попадают в очередь и отправляются,
как только сервер снова доступен.`,
		PersistentPreRunE: c.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	c.flags = config.BindFlags(root.PersistentFlags())

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Запустить фоновую синхронизацию",
		Args:  cobra.NoArgs,
		RunE:  c.run,
	}
	runCmd.Flags().BoolVar(&c.withUI, "ui", false, "Показать панель в терминале")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Показать версию сборки",
		Args:  cobra.NoArgs,
		// the version needs neither config nor storage
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run:               func(*cobra.Command, []string) { printBuildInfo() },
	}

	root.AddCommand(
		runCmd,
		versionCmd,
		c.syncCmd(),
		c.statusCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.notesCmd(),
		c.postsCmd(),
	)
	return root, c
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetClientConfig(c.flags)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	c.cfg = cfg
	c.log = logger.NewClientLogger("lumina-sync", cfg.Log)

	var opts []client.Option
	if c.withUI {
		opts = append(opts, client.WithDashboard())
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	c.app, err = client.NewApp(cmd.Context(), cfg, buildInfo, c.log, opts...)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	c.app.Probe(cmd.Context())
	return nil
}

// close releases the app opened by setup, if any.
func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	return c.app.Close()
}

func (c *cli) run(cmd *cobra.Command, _ []string) error {
	c.log.Info().
		Str("version", buildVersion).
		Bool("ui", c.withUI).
		Msg("starting lumina-sync")
	return c.app.Run(cmd.Context())
}
