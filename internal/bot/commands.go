package bot

import (
	"errors"
	"strconv"

	"gopkg.in/telegram-bot-api.v4" // Telegram api

	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/conversation"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/extract"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/logging" // логгирование
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/metrics"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/post"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/settingsdb"
)

// start отвечает на команду /start
func (bot *Bot) start(msg *tgbotapi.Message) {
	bot.reply(msg, startText)
}

// help отправляет справочную информацию
func (bot *Bot) help(msg *tgbotapi.Message) {
	message := tgbotapi.NewMessage(msg.Chat.ID, helpText)
	message.ParseMode = "HTML"
	bot.messages <- message
}

// startDraft начинает пошаговое создание поста (/post). Старый черновик удаляется
func (bot *Bot) startDraft(msg *tgbotapi.Message) {
	session, effect := conversation.Start(bot.sessions.Now())
	bot.sessions.Put(senderID(msg), session)
	metrics.ActiveDrafts.Set(float64(bot.sessions.Len()))

	bot.reply(msg, effect.Reply)
}

// cancelDraft удаляет незаконченный черновик
func (bot *Bot) cancelDraft(msg *tgbotapi.Message) {
	if !bot.sessions.Delete(senderID(msg)) {
		bot.reply(msg, nothingToCancel)
		return
	}
	metrics.ActiveDrafts.Set(float64(bot.sessions.Len()))
	bot.reply(msg, cancelledText)
}

// continueDraft передаёт сообщение админа в текущий шаг диалога
func (bot *Bot) continueDraft(msg *tgbotapi.Message) {
	userID := senderID(msg)
	session, ok := bot.sessions.Get(userID)
	if !ok {
		bot.reply(msg, noDraftText)
		return
	}

	text := msg.Text
	photoID := largestPhoto(msg)
	if photoID != "" {
		text = msg.Caption
	}

	session, effect := conversation.Transition(session, conversation.Input{Text: text, PhotoID: photoID}, bot.sessions.Now())
	// После последнего шага сессия в состоянии Idle, поэтому черновик удаляется ещё до отправки
	bot.sessions.Put(userID, session)
	metrics.ActiveDrafts.Set(float64(bot.sessions.Len()))

	if effect.Reply != "" {
		bot.reply(msg, effect.Reply)
	}
	if effect.Deliver != nil {
		bot.deliverDraft(msg, *effect.Deliver)
	}
}

// deliverDraft отправляет готовый пост в выбранный чат и сообщает админу результат
func (bot *Bot) deliverDraft(msg *tgbotapi.Message, draft conversation.Draft) {
	message := newPost(draft.Target, draft.Text, draft.PhotoID, post.DraftKeyboard(draft.Buttons), "")

	_, err := bot.sender.Send(message)
	if err != nil {
		metrics.PostFailures.WithLabelValues(metrics.FlowButtons, "delivery").Inc()
		logging.LogMinorError("deliverDraft", "попытка отправить пост в "+draft.Target, err)
		bot.sendErrorToUser(msg, err.Error())
		return
	}

	metrics.PostsSent.WithLabelValues(metrics.FlowButtons).Inc()
	logging.LogEvent("Пост отправлен в " + draft.Target)
	bot.reply(msg, postSentText)
}

// createPost собирает пост из шаблона (/createpost).
// Шаблон берётся из аргументов команды, подписи к фото или сообщения, на которое ответил админ
func (bot *Bot) createPost(msg *tgbotapi.Message) {
	_, text := commandOf(msg)
	photoID := largestPhoto(msg)

	if text == "" && msg.ReplyToMessage != nil {
		source := msg.ReplyToMessage
		text = source.Text
		if id := largestPhoto(source); id != "" {
			text = source.Caption
			photoID = id
		}
	}

	if text == "" {
		metrics.PostFailures.WithLabelValues(metrics.FlowExtract, "empty").Inc()
		bot.reply(msg, noTemplateText)
		return
	}

	extracted := extract.Parse(text)
	if err := extract.Validate(extracted); err != nil {
		metrics.PostFailures.WithLabelValues(metrics.FlowExtract, "no_title").Inc()
		bot.reply(msg, noTitleText)
		return
	}

	channel, err := bot.channels.Channel()
	if err != nil {
		// Без канала пост отправляется без кнопки "Join Channel"
		logging.LogMinorError("createPost", "попытка получить канал", err)
		channel = ""
	}

	message := newPost(strconv.FormatInt(msg.Chat.ID, 10),
		post.RenderExtracted(extracted), photoID,
		post.ExtractedKeyboard(extracted.Links, channel), "HTML")

	if _, err := bot.sender.Send(message); err != nil {
		metrics.PostFailures.WithLabelValues(metrics.FlowExtract, "delivery").Inc()
		logging.LogMinorError("createPost", "попытка отправить пост", err)
		bot.sendErrorToUser(msg, err.Error())
		return
	}

	metrics.PostsSent.WithLabelValues(metrics.FlowExtract).Inc()
	logging.LogEvent("Пост '" + extracted.Title + "' создан")
}

// setChannel меняет канал для кнопки "Join Channel"
func (bot *Bot) setChannel(msg *tgbotapi.Message) {
	_, handle := commandOf(msg)

	err := bot.channels.SetChannel(handle)
	if errors.Is(err, settingsdb.ErrEmptyChannel) {
		bot.reply(msg, setChannelUsage)
		return
	}
	if err != nil {
		bot.logErrorAndNotify(msg, logging.ErrorData{
			Error:    err,
			Username: senderName(msg),
			UserID:   senderID(msg),
			Command:  "/setchannel",
			AddInfo:  "попытка сохранить канал"})
		return
	}

	channel, _ := bot.channels.Channel()
	logging.LogEvent("Новый канал: " + channel)
	bot.reply(msg, "✅ Channel set to "+post.ChannelURL(channel))
}

// showChannel показывает текущий канал
func (bot *Bot) showChannel(msg *tgbotapi.Message) {
	channel, err := bot.channels.Channel()
	if err != nil {
		bot.logErrorAndNotify(msg, logging.ErrorData{
			Error:    err,
			Username: senderName(msg),
			UserID:   senderID(msg),
			Command:  "/channel",
			AddInfo:  "попытка получить канал"})
		return
	}

	if channel == "" {
		bot.reply(msg, noChannelText)
		return
	}
	bot.reply(msg, "📢 Channel: "+post.ChannelURL(channel))
}
