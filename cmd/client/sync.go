package main

import (
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/service"
	"github.com/MKhiriev/lumina-sync/internal/tui"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/spf13/cobra"
)

func (c *cli) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Обновить заметки с сервера и отправить очередь изменений",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			report, err := service.Await(ctx, c.app.Services().Coordinator.RefreshAndSync(ctx))
			printReport(cmd.OutOrStdout(), report)
			if err != nil {
				return fmt.Errorf("синхронизация не завершена: %w", err)
			}
			return nil
		},
	}
}

func (c *cli) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Показать состояние сети, сессии и очереди",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), tui.RenderStatus(c.app.Status()))
			return nil
		},
	}
}

func (c *cli) loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <token>",
		Short: "Сохранить токен сессии",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.SignIn(args[0]); err != nil {
				return err
			}
			status := c.app.Status()
			fmt.Fprintf(cmd.OutOrStdout(), "Вход выполнен: %s\n", status.UserID)
			return nil
		},
	}
}

func (c *cli) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Удалить токен сессии",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.SignIn(""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Сессия завершена")
			return nil
		},
	}
}

func printReport(w io.Writer, r models.SyncReport) {
	fmt.Fprintf(w, "Синхронизировано: %d, ошибок: %d, пропущено: %d, удалено: %d (%s)\n",
		r.Synced, r.Failed, r.Skipped, r.Deleted, r.Duration().Round(time.Millisecond))
}
