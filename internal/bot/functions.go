package bot

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/telegram-bot-api.v4"

	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/logging"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/post"
)

// getCurrentTime возвращает текущее время
func getCurrentTime() string {
	return time.Now().Format("02.01.2006 15:04:05")
}

// reply отвечает на сообщение (через очередь отправки)
func (bot *Bot) reply(msg *tgbotapi.Message, text string) {
	message := tgbotapi.NewMessage(msg.Chat.ID, text)
	message.ReplyToMessageID = msg.MessageID
	bot.messages <- message
}

// logErrorAndNotify логгирует ошибку и отправляет пользователю информацию об ошибке
func (bot *Bot) logErrorAndNotify(msg *tgbotapi.Message, data logging.ErrorData) {
	logging.LogError(data)

	// Отправление сообщения об ошибке
	bot.reply(msg, "❌ Something went wrong. Time: "+getCurrentTime())
}

// sendErrorToUser отправляет пользователю текст ошибки (например, ошибку Telegram при отправке поста)
func (bot *Bot) sendErrorToUser(msg *tgbotapi.Message, text string) {
	bot.reply(msg, "❌ Error: "+text)
}

// chatTarget переводит id чата или имя канала в параметры tgbotapi.
// "-100123" -> chatID, "@name", "name", "https://t.me/name" -> "@name"
func chatTarget(target string) (chatID int64, channel string) {
	target = strings.TrimSpace(target)
	if id, err := strconv.ParseInt(target, 10, 64); err == nil {
		return id, ""
	}
	return 0, "@" + post.NormalizeChannel(target)
}

// newPost собирает сообщение с постом. Если есть photoID, текст становится подписью к фото.
// parseMode может быть пустым
func newPost(target, text, photoID string, keyboard *tgbotapi.InlineKeyboardMarkup, parseMode string) tgbotapi.Chattable {
	chatID, channel := chatTarget(target)

	if photoID != "" {
		photo := tgbotapi.NewPhotoShare(chatID, photoID)
		photo.ChannelUsername = channel
		photo.Caption = text
		photo.ParseMode = parseMode
		if keyboard != nil {
			photo.ReplyMarkup = *keyboard
		}
		return photo
	}

	message := tgbotapi.NewMessage(chatID, text)
	message.ChannelUsername = channel
	message.ParseMode = parseMode
	if keyboard != nil {
		message.ReplyMarkup = *keyboard
	}
	return message
}
