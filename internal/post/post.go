// Package post отвечает за отрисовку постов: текст в HTML-разметке Telegram и inline-клавиатуру
package post

import (
	"html"
	"strconv"
	"strings"

	"gopkg.in/telegram-bot-api.v4"
)

// Button – кнопка-ссылка под постом
type Button struct {
	Label string
	URL   string
}

// Extracted содержит поля, извлечённые из текста админа. Пустые поля в пост не попадают
type Extracted struct {
	Title     string
	Season    string
	Episodes  string
	Audio     string
	Quality   string
	Genres    string
	Synopsis  string
	PoweredBy string
	Links     []string
}

// Подписи кнопок для первых трёх ссылок
var qualityLabels = []string{"480P", "720P", "1080P"}

const (
	draftRowWidth   = 2
	joinButtonLabel = "Join Channel"
	telegramURL     = "https://t.me/"
)

// DraftKeyboard раскладывает кнопки по две в ряд. Если кнопок нет, возвращается nil
func DraftKeyboard(buttons []Button) *tgbotapi.InlineKeyboardMarkup {
	if len(buttons) == 0 {
		return nil
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(buttons); i += draftRowWidth {
		end := i + draftRowWidth
		if end > len(buttons) {
			end = len(buttons)
		}

		var row []tgbotapi.InlineKeyboardButton
		for _, b := range buttons[i:end] {
			row = append(row, tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.URL))
		}
		rows = append(rows, row)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &keyboard
}

// LinkButtons подписывает ссылки по порядку: 480P, 720P, 1080P, дальше – "Link N"
func LinkButtons(links []string) []Button {
	buttons := make([]Button, 0, len(links))
	for i, link := range links {
		label := "Link " + strconv.Itoa(i+1)
		if i < len(qualityLabels) {
			label = qualityLabels[i]
		}
		buttons = append(buttons, Button{Label: label, URL: link})
	}
	return buttons
}

// NormalizeChannel убирает из имени канала "@", "https://t.me/" и пробелы
func NormalizeChannel(handle string) string {
	handle = strings.TrimSpace(handle)
	handle = strings.TrimPrefix(handle, telegramURL)
	handle = strings.TrimPrefix(handle, "http://t.me/")
	handle = strings.TrimPrefix(handle, "t.me/")
	handle = strings.TrimPrefix(handle, "@")
	return strings.Trim(handle, "/ ")
}

// ChannelURL возвращает ссылку на канал
func ChannelURL(handle string) string {
	return telegramURL + NormalizeChannel(handle)
}

// ExtractedKeyboard – все ссылки в одном ряду, под ними кнопка канала (если канал задан)
func ExtractedKeyboard(links []string, channel string) *tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	if len(links) > 0 {
		var row []tgbotapi.InlineKeyboardButton
		for _, b := range LinkButtons(links) {
			row = append(row, tgbotapi.NewInlineKeyboardButtonURL(b.Label, b.URL))
		}
		rows = append(rows, row)
	}

	if NormalizeChannel(channel) != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(joinButtonLabel, ChannelURL(channel)),
		))
	}

	if len(rows) == 0 {
		return nil
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &keyboard
}

// RenderExtracted собирает текст поста (parse mode – HTML)
func RenderExtracted(e Extracted) string {
	var b strings.Builder

	b.WriteString("<b>" + html.EscapeString(e.Title) + "</b>\n")

	lines := []struct {
		name  string
		value string
		code  bool
	}{
		{"Season", e.Season, false},
		{"Episodes", e.Episodes, false},
		{"Audio", e.Audio, false},
		{"Quality", e.Quality, true},
		{"Genres", e.Genres, false},
	}

	var fields []string
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		value := html.EscapeString(l.value)
		if l.code {
			value = "<code>" + value + "</code>"
		}
		fields = append(fields, "‣ <b>"+l.name+":</b> "+value)
	}
	if len(fields) > 0 {
		b.WriteString("\n" + strings.Join(fields, "\n") + "\n")
	}

	if e.Synopsis != "" {
		b.WriteString("\n<blockquote>" + html.EscapeString(e.Synopsis) + "</blockquote>\n")
	}

	if e.PoweredBy != "" {
		b.WriteString("\n<b>Powered By:</b> @" + html.EscapeString(e.PoweredBy) + "\n")
	}

	return strings.TrimRight(b.String(), "\n")
}
