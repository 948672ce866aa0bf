package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/lumina-sync/models"
)

// StatusSnapshot is what the status view shows about the sync state.
type StatusSnapshot struct {
	Online     bool
	UserID     string
	Queued     map[models.EntityKind]int
	Running    int
	LastReport *models.SyncReport
}

// RenderStatus renders s as a bordered block, used by the dashboard and by
// the status command.
func RenderStatus(s StatusSnapshot) string {
	var b strings.Builder

	if s.Online {
		b.WriteString("Сеть:      " + onlineStyle.Render("online"))
	} else {
		b.WriteString("Сеть:      " + offlineStyle.Render("offline"))
	}
	b.WriteString("\n")
	b.WriteString("Сессия:    ")
	if s.UserID == "" {
		b.WriteString(offlineStyle.Render("нет"))
	} else {
		b.WriteString(s.UserID)
	}
	b.WriteString("\n")

	b.WriteString("В очереди: ")
	b.WriteString(renderQueued(s.Queued))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Операций:  %d", s.Running)

	if r := s.LastReport; r != nil {
		b.WriteString("\n")
		b.WriteString(renderReport(*r))
	}

	return statusBox.Render(b.String())
}

func renderQueued(queued map[models.EntityKind]int) string {
	notes, posts := queued[models.KindNote], queued[models.KindPost]
	line := fmt.Sprintf("заметки %d, посты %d", notes, posts)
	if notes+posts > 0 {
		return pendingStyle.Render(line)
	}
	return line
}

func renderReport(r models.SyncReport) string {
	line := fmt.Sprintf("Последняя синхр.: +%d, ошибок %d, пропущено %d, удалено %d",
		r.Synced, r.Failed, r.Skipped, r.Deleted)
	if !r.FinishedAt.IsZero() {
		line += " (" + r.FinishedAt.Local().Format(time.TimeOnly) + ")"
	}
	return line
}
