package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/lumina-sync/internal/service"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/spf13/cobra"
)

func (c *cli) postsCmd() *cobra.Command {
	posts := &cobra.Command{
		Use:   "posts",
		Short: "Работа с постами сообщества",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "Показать локальные посты",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := c.app.Services().Posts.List(cmd.Context())
			if err != nil {
				return err
			}
			printPosts(cmd.OutOrStdout(), items, c.app.Status().UserID)
			return nil
		},
	}

	fetch := &cobra.Command{
		Use:   "fetch",
		Short: "Загрузить посты с сервера",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			report, err := service.Await(ctx, c.app.Services().Coordinator.FetchPosts(ctx))
			if err != nil {
				return fmt.Errorf("ошибка загрузки постов: %w", err)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	var limit int
	hot := &cobra.Command{
		Use:   "hot",
		Short: "Показать популярные посты",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if limit <= 0 {
				limit = c.cfg.Sync.HotPostsLimit
			}
			items, err := service.Await(ctx, c.app.Services().Coordinator.HotPosts(ctx, limit))
			if err != nil {
				return err
			}
			printPosts(cmd.OutOrStdout(), items, c.app.Status().UserID)
			return nil
		},
	}
	hot.Flags().IntVarP(&limit, "limit", "n", 0, "Сколько постов показать")

	favorites := &cobra.Command{
		Use:   "favorites",
		Short: "Показать избранные посты",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			items, err := service.Await(ctx, c.app.Services().Coordinator.MyFavorites(ctx))
			if err != nil {
				return err
			}
			printPosts(cmd.OutOrStdout(), items, c.app.Status().UserID)
			return nil
		},
	}

	var (
		title   string
		content string
		subject string
	)
	save := &cobra.Command{
		Use:   "save",
		Short: "Опубликовать пост",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			post := models.Post{Title: title, Content: content, Subject: subject}
			saved, err := service.Await(ctx, c.app.Services().Coordinator.SavePost(ctx, post))
			if err != nil {
				return fmt.Errorf("ошибка публикации поста: %w", err)
			}
			if saved.IsCreated() {
				fmt.Fprintf(cmd.OutOrStdout(), "Пост опубликован: %s (id %s)\n", saved.ClientSideID, saved.ID)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Пост сохранён локально и ждёт отправки: %s\n", saved.ClientSideID)
			}
			return nil
		},
	}
	save.Flags().StringVarP(&title, "title", "t", "", "Заголовок поста")
	save.Flags().StringVar(&content, "content", "", "Текст поста")
	save.Flags().StringVar(&subject, "subject", "", "Предмет, например Math или Biology")

	rm := &cobra.Command{
		Use:   "rm <key>",
		Short: "Удалить пост",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if _, err := service.Await(ctx, c.app.Services().Coordinator.DeletePost(ctx, args[0])); err != nil {
				return fmt.Errorf("ошибка удаления поста: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Пост удалён")
			return nil
		},
	}

	posts.AddCommand(
		list, fetch, hot, favorites, save, rm,
		c.toggleCmd("like", "Поставить лайк", func(ctx context.Context, key string) <-chan service.Outcome[models.ToggleOutcome] {
			return c.app.Services().Coordinator.SetLiked(ctx, key, true)
		}),
		c.toggleCmd("unlike", "Убрать лайк", func(ctx context.Context, key string) <-chan service.Outcome[models.ToggleOutcome] {
			return c.app.Services().Coordinator.SetLiked(ctx, key, false)
		}),
		c.toggleCmd("favorite", "Добавить в избранное", func(ctx context.Context, key string) <-chan service.Outcome[models.ToggleOutcome] {
			return c.app.Services().Coordinator.SetFavorited(ctx, key, true)
		}),
		c.toggleCmd("unfavorite", "Убрать из избранного", func(ctx context.Context, key string) <-chan service.Outcome[models.ToggleOutcome] {
			return c.app.Services().Coordinator.SetFavorited(ctx, key, false)
		}),
	)
	return posts
}

func (c *cli) toggleCmd(use, short string, toggle func(ctx context.Context, key string) <-chan service.Outcome[models.ToggleOutcome]) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <key>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			outcome, err := service.Await(ctx, toggle(ctx, args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", use, outcome)
			return nil
		},
	}
}

func printPosts(w io.Writer, posts []models.Post, userID string) {
	if len(posts) == 0 {
		fmt.Fprintln(w, "Нет постов")
		return
	}
	for _, p := range posts {
		like, fav := " ", " "
		if p.IsLikedBy(userID) {
			like = "♥"
		}
		if p.IsFavoritedBy(userID) {
			fav = "★"
		}
		fmt.Fprintf(w, "%-36s  %-6s  %s%s %3d  %-12s  %s\n",
			p.ClientSideID, idOrPending(p.ID), like, fav, p.LikeCount(), p.Subject, p.Title)
	}
}
