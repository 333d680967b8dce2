package post

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftKeyboard(t *testing.T) {
	assert.Nil(t, DraftKeyboard(nil))

	buttons := []Button{
		{"A", "https://a.example"},
		{"B", "https://b.example"},
		{"C", "https://c.example"},
	}
	keyboard := DraftKeyboard(buttons)
	require.NotNil(t, keyboard)
	require.Len(t, keyboard.InlineKeyboard, 2)
	assert.Len(t, keyboard.InlineKeyboard[0], 2)
	assert.Len(t, keyboard.InlineKeyboard[1], 1)

	last := keyboard.InlineKeyboard[1][0]
	assert.Equal(t, "C", last.Text)
	require.NotNil(t, last.URL)
	assert.Equal(t, "https://c.example", *last.URL)
}

func TestLinkButtons(t *testing.T) {
	links := []string{"https://1", "https://2", "https://3", "https://4", "https://2"}
	buttons := LinkButtons(links)

	labels := make([]string, 0, len(buttons))
	for i, b := range buttons {
		labels = append(labels, b.Label)
		assert.Equal(t, links[i], b.URL)
	}
	assert.Equal(t, []string{"480P", "720P", "1080P", "Link 4", "Link 5"}, labels)
}

func TestChannelURL(t *testing.T) {
	tests := []struct{ in, out string }{
		{"NewChannel", "https://t.me/NewChannel"},
		{"@NewChannel", "https://t.me/NewChannel"},
		{" https://t.me/NewChannel/ ", "https://t.me/NewChannel"},
		{"t.me/NewChannel", "https://t.me/NewChannel"},
	}
	for _, test := range tests {
		assert.Equal(t, test.out, ChannelURL(test.in), test.in)
	}
}

func TestExtractedKeyboard(t *testing.T) {
	assert.Nil(t, ExtractedKeyboard(nil, ""))

	keyboard := ExtractedKeyboard([]string{"https://1", "https://2"}, "@NewChannel")
	require.NotNil(t, keyboard)
	require.Len(t, keyboard.InlineKeyboard, 2)
	assert.Len(t, keyboard.InlineKeyboard[0], 2)

	join := keyboard.InlineKeyboard[1][0]
	assert.Equal(t, "Join Channel", join.Text)
	assert.Equal(t, "https://t.me/NewChannel", *join.URL)

	keyboard = ExtractedKeyboard(nil, "NewChannel")
	require.NotNil(t, keyboard)
	assert.Len(t, keyboard.InlineKeyboard, 1)
}

func TestRenderExtracted(t *testing.T) {
	text := RenderExtracted(Extracted{
		Title:     "Naruto",
		Season:    "1",
		Quality:   "HD",
		Genres:    "Action, Adventure",
		Synopsis:  "A ninja <story>",
		PoweredBy: "AnimeHub",
	})

	assert.Contains(t, text, "<b>Naruto</b>")
	assert.Contains(t, text, "<b>Season:</b> 1")
	assert.Contains(t, text, "<b>Quality:</b> <code>HD</code>")
	assert.Contains(t, text, "<b>Genres:</b> Action, Adventure")
	assert.Contains(t, text, "<blockquote>A ninja &lt;story&gt;</blockquote>")
	assert.Contains(t, text, "@AnimeHub")
	assert.NotContains(t, text, "Episodes")
	assert.NotContains(t, text, "Audio")
}

func TestRenderTitleOnly(t *testing.T) {
	assert.Equal(t, "<b>One Piece</b>", RenderExtracted(Extracted{Title: "One Piece"}))
}
