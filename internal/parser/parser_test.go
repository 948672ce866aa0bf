package parser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return body
}

func assertGolden(t *testing.T, name string, v any) {
	t.Helper()
	got, err := json.MarshalIndent(v, "", "  ")
	require.NoError(t, err)

	g := goldie.New(t, goldie.WithFixtureDir("testdata"), goldie.WithNameSuffix(".golden"))
	g.Assert(t, name, got)
}

// ── golden ──────────────────────────────────────────────────────────────────

func TestParseNote_Golden(t *testing.T) {
	n, err := ParseNote(readFixture(t, "note_nested.json"))
	require.NoError(t, err)
	assertGolden(t, "note_nested", n)
}

func TestParsePost_Golden(t *testing.T) {
	p, err := ParsePost(readFixture(t, "post_aliases.json"))
	require.NoError(t, err)
	assertGolden(t, "post_aliases", p)
}

// ── ParseNote ───────────────────────────────────────────────────────────────

func TestParseNote_Shapes(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		want  string
		title string
	}{
		{name: "flat object", body: `{"id":"9","title":"T"}`, want: "9", title: "T"},
		{name: "nested under note", body: `{"note":{"id":"10","title":"N"}}`, want: "10", title: "N"},
		{name: "nested under data", body: `{"success":true,"data":{"id":11,"title":"D"}}`, want: "11", title: "D"},
		{name: "array", body: `[{"id":"12","title":"A"},{"id":"13"}]`, want: "12", title: "A"},
		{name: "data holds array", body: `{"data":[{"id":"14","title":"X"}]}`, want: "14", title: "X"},
		{name: "double encoded", body: `"{\"id\":\"15\",\"title\":\"S\"}"`, want: "15", title: "S"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := ParseNote([]byte(tt.body))
			require.NoError(t, err)
			require.NotNil(t, n.ID)
			assert.Equal(t, tt.want, *n.ID)
			require.NotNil(t, n.Title)
			assert.Equal(t, tt.title, *n.Title)
		})
	}
}

func TestParseNote_Failures(t *testing.T) {
	bodies := map[string]string{
		"empty":           ``,
		"not json":        `<html>502</html>`,
		"plain string":    `"ok"`,
		"unrelated":       `{"status":"ok"}`,
		"empty array":     `[]`,
		"wrapper is null": `{"note":null}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := ParseNote([]byte(body))
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestParseNote_AbsentFieldsStayNil(t *testing.T) {
	n, err := ParseNote([]byte(`{"id":"9","title":"only title"}`))
	require.NoError(t, err)

	assert.Nil(t, n.Content)
	assert.Nil(t, n.Subject)
	assert.Nil(t, n.CategoryID)
	assert.Nil(t, n.CreatedAt)
	assert.Nil(t, n.Tags)
}

func TestParseNote_NullFieldIsAbsent(t *testing.T) {
	n, err := ParseNote([]byte(`{"id":"9","content":null}`))
	require.NoError(t, err)
	assert.Nil(t, n.Content)
}

func TestParseNote_WrongFieldType(t *testing.T) {
	_, err := ParseNote([]byte(`{"id":"9","title":{"text":"x"}}`))
	assert.ErrorIs(t, err, ErrFieldType)
}

// ── lists ───────────────────────────────────────────────────────────────────

func TestParseNoteList_Shapes(t *testing.T) {
	bodies := map[string]string{
		"bare array":    `[{"id":"1"},{"id":"2"}]`,
		"notes wrapper": `{"notes":[{"id":"1"},{"id":"2"}]}`,
		"data wrapper":  `{"data":[{"id":"1"},{"id":"2"}]}`,
		"results":       `{"results":[{"id":"1"},{"id":"2"}]}`,
		"data.notes":    `{"data":{"notes":[{"id":"1"},{"id":"2"}],"total":2}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			list, err := ParseNoteList([]byte(body))
			require.NoError(t, err)
			require.Len(t, list.Items, 2)
			assert.Empty(t, list.Skipped)
			assert.Equal(t, "1", *list.Items[0].ID)
			assert.Equal(t, "2", *list.Items[1].ID)
		})
	}
}

func TestParseNoteList_SkipsBadElements(t *testing.T) {
	body := `{"notes":[{"id":"1","title":"ok"},"garbage",{"id":"3","createdDate":"yesterday"},{"id":"4"}]}`

	list, err := ParseNoteList([]byte(body))
	require.NoError(t, err)

	require.Len(t, list.Items, 2)
	assert.Equal(t, "1", *list.Items[0].ID)
	assert.Equal(t, "4", *list.Items[1].ID)
	assert.Len(t, list.Skipped, 2)
}

func TestParseNoteList_EmptyList(t *testing.T) {
	list, err := ParseNoteList([]byte(`{"notes":[]}`))
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestParseNoteList_NoList(t *testing.T) {
	_, err := ParseNoteList([]byte(`{"message":"unauthorized"}`))
	assert.ErrorIs(t, err, ErrParse)
}

func TestParsePostList_PostsWrapper(t *testing.T) {
	body := `{"posts":[{"id":"1","likes":["a","b"],"likeCount":2},{"postId":2,"favoritesArray":[{"userId":"c"}]}]}`

	list, err := ParsePostList([]byte(body))
	require.NoError(t, err)
	require.Len(t, list.Items, 2)

	assert.Equal(t, []string{"a", "b"}, list.Items[0].Likes)
	require.NotNil(t, list.Items[0].LikeCount)
	assert.Equal(t, 2, *list.Items[0].LikeCount)
	assert.Equal(t, "2", *list.Items[1].ID)
	assert.Equal(t, []string{"c"}, list.Items[1].Favorites)
	assert.Nil(t, list.Items[1].Likes)
}

func TestParsePost_NestedUnderPost(t *testing.T) {
	p, err := ParsePost([]byte(`{"post":{"id":"5","title":"hi","createdAt":"2024-05-02T08:30:00.000+0800"}}`))
	require.NoError(t, err)
	assert.Equal(t, "5", *p.ID)
	require.NotNil(t, p.CreatedAt)
	assert.Equal(t, 0, p.CreatedAt.Hour())
}
