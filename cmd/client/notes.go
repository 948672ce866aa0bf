package main

import (
	"fmt"
	"io"

	"github.com/MKhiriev/lumina-sync/internal/reconcile"
	"github.com/MKhiriev/lumina-sync/internal/service"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/spf13/cobra"
)

func (c *cli) notesCmd() *cobra.Command {
	notes := &cobra.Command{
		Use:   "notes",
		Short: "Работа с заметками",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Показать локальные заметки",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.app.Services().Notes.List(cmd.Context())
			if err != nil {
				return err
			}
			printNotes(cmd.OutOrStdout(), items)
			return nil
		},
	}

	var (
		key     string
		title   string
		content string
		subject string
		tags    []string
		shared  bool
	)
	save := &cobra.Command{
		Use:   "save",
		Short: "Создать заметку или изменить существующую",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var note models.Note
			if key != "" {
				existing, err := findNote(cmd, c, key)
				if err != nil {
					return err
				}
				note = existing
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				note.Title = title
			}
			if flags.Changed("content") {
				note.Content = content
			}
			if flags.Changed("subject") {
				note.Subject = subject
			}
			if flags.Changed("tag") {
				note.Tags = tags
			}
			if flags.Changed("shared") {
				note.Shared = shared
			}

			saved, err := service.Await(ctx, c.app.Services().Coordinator.SaveNote(ctx, note))
			if err != nil {
				return fmt.Errorf("ошибка сохранения заметки: %w", err)
			}
			if saved.IsCreated() {
				fmt.Fprintf(cmd.OutOrStdout(), "Заметка сохранена: %s (id %s)\n", saved.ClientSideID, saved.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Заметка сохранена локально и ждёт отправки: %s\n", saved.ClientSideID)
			}
			return nil
		},
	}
	save.Flags().StringVarP(&key, "key", "k", "", "Локальный или серверный id редактируемой заметки")
	save.Flags().StringVarP(&title, "title", "t", "", "Заголовок заметки")
	save.Flags().StringVar(&content, "content", "", "Текст заметки")
	save.Flags().StringVar(&subject, "subject", "", "Предмет, например Math или Biology")
	save.Flags().StringSliceVar(&tags, "tag", nil, "Тег, можно указать несколько раз")
	save.Flags().BoolVar(&shared, "shared", false, "Открыть заметку для других")

	rm := &cobra.Command{
		Use:   "rm <key>",
		Short: "Удалить заметку",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := service.Await(ctx, c.app.Services().Coordinator.DeleteNote(ctx, args[0])); err != nil {
				return fmt.Errorf("ошибка удаления заметки: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Заметка удалена")
			return nil
		},
	}

	notes.AddCommand(list, save, rm)
	return notes
}

func findNote(cmd *cobra.Command, c *cli, key string) (models.Note, error) {
	items, err := c.app.Services().Notes.List(cmd.Context())
	if err != nil {
		return models.Note{}, err
	}
	id := reconcile.NormalizeID(key)
	for _, n := range items {
		if n.ClientSideID == key || (id != "" && reconcile.NormalizeID(n.ID) == id) {
			return n, nil
		}
	}
	return models.Note{}, fmt.Errorf("заметка %s не найдена", key)
}

func printNotes(w io.Writer, notes []models.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "Нет заметок")
		return
	}
	for _, n := range notes {
		fmt.Fprintf(w, "%-36s  %-6s  %-12s  %s\n", n.ClientSideID, idOrPending(n.ID), n.Subject, n.Title)
	}
}

// idOrPending marks entities the server has not confirmed yet.
func idOrPending(id string) string {
	if id == "" {
		return "*"
	}
	return id
}
