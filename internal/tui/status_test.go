package tui

import (
	"testing"

	"github.com/MKhiriev/lumina-sync/models"
	"github.com/stretchr/testify/assert"
)

func TestRenderStatus(t *testing.T) {
	out := RenderStatus(StatusSnapshot{
		Online:     false,
		UserID:     "u1",
		Queued:     map[models.EntityKind]int{models.KindNote: 2},
		Running:    1,
		LastReport: &models.SyncReport{Synced: 3, Failed: 1},
	})

	assert.Contains(t, out, "offline")
	assert.Contains(t, out, "u1")
	assert.Contains(t, out, "заметки 2, посты 0")
	assert.Contains(t, out, "Операций:  1")
	assert.Contains(t, out, "+3, ошибок 1")
}

func TestRenderStatus_NoSession(t *testing.T) {
	out := RenderStatus(StatusSnapshot{Online: true})

	assert.Contains(t, out, "online")
	assert.Contains(t, out, "нет")
	assert.NotContains(t, out, "Последняя синхр.")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "Конспе...", fitText("Конспект лекции", 9))
	assert.Equal(t, "ab", fitText("abcdef", 2))
}
