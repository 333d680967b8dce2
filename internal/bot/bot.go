package bot

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/telegram-bot-api.v4" // Telegram api

	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/conversation"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/logging" // логгирование
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/metrics"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/settingsdb"
)

// Sender отправляет сообщения. *tgbotapi.BotAPI удовлетворяет интерфейсу
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Options – зависимости бота
type Options struct {
	Admins   []int64
	Sessions *conversation.Store
	Channels settingsdb.ChannelStore
}

// Bot надстрройка над tgbotapi.BotAPI
type Bot struct {
	botAPI   *tgbotapi.BotAPI
	sender   Sender
	messages chan tgbotapi.Chattable

	admins   map[int64]bool
	sessions *conversation.Store
	channels settingsdb.ChannelStore
}

// NewBot инициализирует бота
func NewBot(token string, opts Options) (*Bot, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	botAPI.Buffer = 100

	bot := New(botAPI, opts)
	bot.botAPI = botAPI
	return bot, nil
}

// New создаёт бота поверх произвольного Sender. StartPooling работает только у бота, созданного через NewBot
func New(sender Sender, opts Options) *Bot {
	bot := &Bot{
		sender:   sender,
		messages: make(chan tgbotapi.Chattable, 300),
		admins:   make(map[int64]bool, len(opts.Admins)),
		sessions: opts.Sessions,
		channels: opts.Channels,
	}
	for _, id := range opts.Admins {
		bot.admins[id] = true
	}
	if bot.sessions == nil {
		bot.sessions = conversation.NewStore(0, nil)
	}
	if bot.channels == nil {
		bot.channels = settingsdb.NewMemory("")
	}
	return bot
}

// StartPooling начинает перехватывать сообщения. Ответы отправляются раз в rate
func (bot *Bot) StartPooling(stopChan chan struct{}, rate time.Duration) {
	// Получение канала обновлений
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updateChannel, err := bot.botAPI.GetUpdatesChan(updateConfig)
	if err != nil {
		logging.LogFatalError("StartPooling", "попытка получить GetUpdatesChan", err)
	}

	go bot.sendWrapper(rate)

	bot.processUpdates(updateChannel, stopChan)
}

// processUpdates обрабатывает обновления по одному, пока не закроется stopChan или канал обновлений.
// Шаги одного черновика никогда не выполняются параллельно
func (bot *Bot) processUpdates(updates <-chan tgbotapi.Update, stopChan <-chan struct{}) {
	for {
		select {
		case <-stopChan:
			logging.LogEvent("Остановка Long Pooling")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			bot.distributeUpdate(update)
		}
	}
}

var knownCommands = map[string]bool{
	"start": true, "help": true, "post": true, "createpost": true,
	"setchannel": true, "channel": true, "cancel": true,
}

// isAdmin проверяет, есть ли пользователь в списке админов
func (bot *Bot) isAdmin(id int64) bool {
	return bot.admins[id]
}

// distributeUpdate обрабатывает новые сообщения
func (bot *Bot) distributeUpdate(update tgbotapi.Update) {
	msg := update.Message
	if msg == nil {
		return
	}

	userID := senderID(msg)
	command, _ := commandOf(msg)

	// Паника при сборке поста не должна останавливать бота
	defer func() {
		if r := recover(); r != nil {
			bot.logErrorAndNotify(msg, logging.ErrorData{
				Error:    fmt.Errorf("panic: %v", r),
				Username: senderName(msg),
				UserID:   userID,
				Command:  "/" + command,
				AddInfo:  "обработка сообщения"})
		}
	}()

	label := "/" + command
	if command == "" {
		label = "text"
	} else if !knownCommands[command] {
		label = "unknown"
	}
	metrics.Requests.WithLabelValues(label).Inc()
	logging.LogRequest(logging.RequestData{Command: label, Username: senderName(msg), ID: userID})

	// /start и /help доступны всем
	switch command {
	case "start":
		bot.start(msg)
		return
	case "help":
		bot.help(msg)
		return
	}

	if !bot.isAdmin(userID) {
		text := fmt.Sprintf("Wrong ID: %d Username: %s Text: %s", userID, senderName(msg), msg.Text)
		logging.LogEvent(text)
		metrics.Unauthorized.Inc()

		bot.reply(msg, notAllowedText)
		return
	}

	if command == "" {
		bot.continueDraft(msg)
		return
	}

	if !bot.distributeCommand(msg, command) {
		bot.reply(msg, wrongCommandText)
	}
}

// distributeCommand вызывает обработчик команды админа.
// Если команда неизвестна, то возвращается false
func (bot *Bot) distributeCommand(msg *tgbotapi.Message, command string) bool {
	switch command {
	case "post":
		bot.startDraft(msg)
	case "createpost":
		bot.createPost(msg)
	case "setchannel":
		bot.setChannel(msg)
	case "channel":
		bot.showChannel(msg)
	case "cancel":
		bot.cancelDraft(msg)
	default:
		return false
	}
	return true
}

// commandOf возвращает команду и её аргументы.
// Команда ищется и в тексте, и в подписи к фото (tgbotapi проверяет только текст)
func commandOf(msg *tgbotapi.Message) (command, args string) {
	if msg.IsCommand() {
		return msg.Command(), strings.TrimSpace(msg.CommandArguments())
	}

	if msg.Photo == nil || !strings.HasPrefix(msg.Caption, "/") {
		return "", ""
	}

	caption := msg.Caption
	end := strings.IndexAny(caption, " \t\n")
	if end == -1 {
		end = len(caption)
	}

	command = strings.TrimPrefix(caption[:end], "/")
	// /createpost@SomeBot
	if i := strings.Index(command, "@"); i != -1 {
		command = command[:i]
	}
	args = strings.TrimSpace(caption[end:])
	return command, args
}

// senderID возвращает id пользователя (для сообщений без From – id чата)
func senderID(msg *tgbotapi.Message) int64 {
	if msg.From != nil {
		return int64(msg.From.ID)
	}
	if msg.Chat != nil {
		return msg.Chat.ID
	}
	return 0
}

func senderName(msg *tgbotapi.Message) string {
	if msg.From != nil {
		return msg.From.UserName
	}
	if msg.Chat != nil {
		return msg.Chat.UserName
	}
	return ""
}

// largestPhoto возвращает file id самого большого размера фото
func largestPhoto(msg *tgbotapi.Message) string {
	if msg == nil || msg.Photo == nil || len(*msg.Photo) == 0 {
		return ""
	}
	photos := *msg.Photo
	return photos[len(photos)-1].FileID
}

// send отправляет сообщение
func (bot *Bot) send(msg tgbotapi.Chattable) {
	_, err := bot.sender.Send(msg)
	if err != nil {
		if err.Error() != "Forbidden: bot was blocked by the user" &&
			err.Error() != "Forbidden: user is deactivated" {
			logging.LogMinorError("send", "попытка отправить ответ", err)
		}
	}
}

// sendWrapper – обёртка над bot.send()
// Отправляет сообщения раз в rate
func (bot *Bot) sendWrapper(rate time.Duration) {
	if rate <= 0 {
		rate = time.Millisecond
	}
	limiter := time.NewTicker(rate)
	defer limiter.Stop()

	for message := range bot.messages {
		<-limiter.C
		bot.send(message)
	}
}
