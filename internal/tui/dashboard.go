package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/service"
	"github.com/MKhiriev/lumina-sync/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	refreshEvery = time.Second
	titleWidth   = 40
)

type tab int

const (
	tabNotes tab = iota
	tabPosts
)

type dashboardModel struct {
	ctx  context.Context
	deps Deps

	tab   tab
	notes []models.Note
	posts []models.Post
	idx   int

	online  bool
	userID  string
	queued  map[models.EntityKind]int
	running int

	loading    bool
	syncing    bool
	spinner    spinner.Model
	lastReport *models.SyncReport
	status     string
	errMsg     string
	showInfo   bool
}

func newDashboardModel(ctx context.Context, deps Deps) dashboardModel {
	m := dashboardModel{
		ctx:     ctx,
		deps:    deps,
		spinner: newSyncSpinner(),
		loading: true,
	}
	return m.refreshState()
}

func (m dashboardModel) Init() tea.Cmd {
	return tea.Batch(m.cmdLoadItems(), cmdTick(), m.cmdWaitSynced())
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m.refreshState(), cmdTick()
	case spinner.TickMsg:
		if !m.syncing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case listLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeSyncError(msg.err)
			return m, nil
		}
		m.notes, m.posts = msg.notes, msg.posts
		m.clampIndex()
		return m, nil
	case syncDoneMsg:
		m.syncing = false
		m.lastReport = &msg.report
		if msg.err != nil {
			m.errMsg = humanizeSyncError(msg.err)
		} else {
			m.status = "Синхронизация завершена"
			m.errMsg = ""
		}
		m.loading = true
		return m.refreshState(), m.cmdLoadItems()
	case syncedMsg:
		m.lastReport = &msg.report
		m.status = "Данные синхронизированы"
		m.loading = true
		return m.refreshState(), tea.Batch(m.cmdLoadItems(), m.cmdWaitSynced())
	case toggleDoneMsg:
		if msg.err != nil {
			m.errMsg = humanizeSyncError(msg.err)
			return m, m.cmdLoadItems()
		}
		m.errMsg = ""
		m.status = fmt.Sprintf("%s: %s", msg.action, msg.outcome)
		return m, m.cmdLoadItems()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m dashboardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showInfo = false
		}
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.showInfo = true
	case key.Matches(msg, keys.tab):
		m.tab = (m.tab + 1) % 2
		m.idx = 0
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < m.itemCount()-1 {
			m.idx++
		}
	case key.Matches(msg, keys.reload):
		m.loading = true
		return m, m.cmdLoadItems()
	case key.Matches(msg, keys.sync):
		if m.syncing {
			return m, nil
		}
		m.syncing = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdSync())
	case key.Matches(msg, keys.like):
		if p, ok := m.currentPost(); ok {
			return m, m.cmdToggle("like", func(ctx context.Context) (models.ToggleOutcome, error) {
				return m.deps.Posts.SetLiked(ctx, p.ClientSideID, !p.IsLikedBy(m.userID))
			})
		}
	case key.Matches(msg, keys.favorite):
		if p, ok := m.currentPost(); ok {
			return m, m.cmdToggle("favorite", func(ctx context.Context) (models.ToggleOutcome, error) {
				return m.deps.Posts.SetFavorited(ctx, p.ClientSideID, !p.IsFavoritedBy(m.userID))
			})
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.showInfo {
		return appStyle.Render(renderBuildInfoWindow(m.deps.BuildInfo))
	}

	var b strings.Builder

	header := "Lumina Sync"
	if m.syncing {
		header += "  " + m.spinner.View() + " Синхронизация..."
	}
	b.WriteString(RenderStatus(m.snapshot()))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderItems())

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Ошибка: "+m.errMsg))
	}

	hotKeys := "tab вкладка  s синхр.  r обновить  i о программе  q выход"
	if m.tab == tabPosts {
		hotKeys = "l лайк  f избранное  " + hotKeys
	}
	return appStyle.Render(renderPage(header, b.String(), hotKeys))
}

func (m dashboardModel) renderTabs() string {
	notes := fmt.Sprintf("Заметки (%d)", len(m.notes))
	posts := fmt.Sprintf("Посты (%d)", len(m.posts))
	if m.tab == tabNotes {
		return activeTab.Render(notes) + tabStyle.Render(posts)
	}
	return tabStyle.Render(notes) + activeTab.Render(posts)
}

func (m dashboardModel) renderItems() string {
	if m.loading && m.itemCount() == 0 {
		return "Загрузка..."
	}
	if m.itemCount() == 0 {
		return "Нет записей"
	}

	var b strings.Builder
	for i := 0; i < m.itemCount(); i++ {
		line := m.itemLine(i)
		if i == m.idx {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m dashboardModel) itemLine(i int) string {
	if m.tab == tabNotes {
		n := m.notes[i]
		return fmt.Sprintf("%s %-12s %s", syncMark(n.ID), fitText(n.Subject, 12), fitText(valueOrDash(n.Title), titleWidth))
	}

	p := m.posts[i]
	like := " "
	if p.IsLikedBy(m.userID) {
		like = "♥"
	}
	fav := " "
	if p.IsFavoritedBy(m.userID) {
		fav = "★"
	}
	return fmt.Sprintf("%s %s%s %3d  %s", syncMark(p.ID), like, fav, p.LikeCount(), fitText(valueOrDash(p.Title), titleWidth))
}

// syncMark flags entities the server has not assigned an id to yet.
func syncMark(id string) string {
	if id == "" {
		return pendingStyle.Render("[*]")
	}
	return "[ ]"
}

func (m dashboardModel) snapshot() StatusSnapshot {
	return StatusSnapshot{
		Online:     m.online,
		UserID:     m.userID,
		Queued:     m.queued,
		Running:    m.running,
		LastReport: m.lastReport,
	}
}

func (m dashboardModel) refreshState() dashboardModel {
	if m.deps.Connectivity != nil {
		m.online = m.deps.Connectivity.Online()
	}
	m.userID = ""
	if m.deps.Sessions != nil {
		if sess, ok := m.deps.Sessions.Session(); ok {
			m.userID = sess.UserID
		}
	}
	if m.deps.Coordinator != nil {
		m.queued = m.deps.Coordinator.QueuedOperations()
		m.running = m.deps.Coordinator.PendingCount()
	}
	return m
}

func (m *dashboardModel) clampIndex() {
	if m.idx >= m.itemCount() {
		m.idx = m.itemCount() - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m dashboardModel) itemCount() int {
	if m.tab == tabNotes {
		return len(m.notes)
	}
	return len(m.posts)
}

func (m dashboardModel) currentPost() (models.Post, bool) {
	if m.tab != tabPosts || m.idx < 0 || m.idx >= len(m.posts) {
		return models.Post{}, false
	}
	return m.posts[m.idx], true
}

func cmdTick() tea.Cmd {
	return tea.Tick(refreshEvery, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m dashboardModel) cmdLoadItems() tea.Cmd {
	ctx, notes, posts := m.ctx, m.deps.Notes, m.deps.Posts
	return func() tea.Msg {
		n, err := notes.List(ctx)
		if err != nil {
			return listLoadedMsg{err: err}
		}
		p, err := posts.List(ctx)
		if err != nil {
			return listLoadedMsg{err: err}
		}
		return listLoadedMsg{notes: n, posts: p}
	}
}

func (m dashboardModel) cmdSync() tea.Cmd {
	ctx, coordinator := m.ctx, m.deps.Coordinator
	return func() tea.Msg {
		report, err := service.Await(ctx, coordinator.RefreshAndSync(ctx))
		return syncDoneMsg{report: report, err: err}
	}
}

func (m dashboardModel) cmdWaitSynced() tea.Cmd {
	if m.deps.Synced == nil {
		return nil
	}
	synced := m.deps.Synced
	return func() tea.Msg {
		report, ok := <-synced
		if !ok {
			return nil
		}
		return syncedMsg{report: report}
	}
}

func (m dashboardModel) cmdToggle(action string, fn func(ctx context.Context) (models.ToggleOutcome, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		outcome, err := fn(ctx)
		return toggleDoneMsg{action: action, outcome: outcome, err: err}
	}
}
