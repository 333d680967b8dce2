// Package conversation описывает пошаговое создание поста:
// текст -> название кнопки -> ссылка -> "ещё кнопку?" -> чат, в который отправить пост
package conversation

import (
	"strings"
	"time"

	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/post"
)

// State – шаг диалога
type State int

const (
	Idle State = iota
	AwaitingText
	AwaitingButtonName
	AwaitingButtonURL
	AwaitingMoreDecision
	AwaitingTarget
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case AwaitingText:
		return "awaiting_text"
	case AwaitingButtonName:
		return "awaiting_button_name"
	case AwaitingButtonURL:
		return "awaiting_button_url"
	case AwaitingMoreDecision:
		return "awaiting_more_decision"
	case AwaitingTarget:
		return "awaiting_target"
	}
	return "unknown"
}

// MaxButtons – максимальное количество кнопок в одном посте
const MaxButtons = 20

// Тексты, которые бот отправляет админу на каждом шаге
const (
	PromptText       = "📝 Send the message text for the post."
	PromptButtonName = "🔘 Send Button Name"
	PromptNextButton = "🔘 Send next Button Name"
	PromptButtonURL  = "🌐 Send Button URL"
	PromptMore       = "➕ Add another button? (yes/no)"
	PromptTarget     = "📢 Send target chat ID or @channelusername"
	PromptLimit      = "⚠️ Button limit reached."
)

// Draft – незаконченный пост
type Draft struct {
	Text         string
	PhotoID      string // file id картинки, если текст пришёл подписью к фото
	Buttons      []post.Button
	PendingLabel string
	Target       string
}

// Session – состояние диалога с одним админом
type Session struct {
	State     State
	Draft     Draft
	UpdatedAt time.Time
}

// Input – сообщение админа
type Input struct {
	Text    string
	PhotoID string
}

// Effect – что нужно сделать после перехода.
// Deliver != nil только на последнем шаге: черновик нужно отправить в Deliver.Target
type Effect struct {
	Reply   string
	Deliver *Draft
}

// Start начинает новый черновик. Предыдущий черновик пользователя просто перезаписывается
func Start(now time.Time) (Session, Effect) {
	return Session{State: AwaitingText, UpdatedAt: now}, Effect{Reply: PromptText}
}

// Transition – функция перехода (state, input) -> (state, effects).
// Пустое сообщение на шагах, где нужен текст, повторяет вопрос и не меняет состояние
func Transition(s Session, in Input, now time.Time) (Session, Effect) {
	text := strings.TrimSpace(in.Text)
	s.UpdatedAt = now

	switch s.State {
	case AwaitingText:
		if text == "" {
			return s, Effect{Reply: PromptText}
		}
		s.Draft.Text = in.Text
		s.Draft.PhotoID = in.PhotoID
		s.State = AwaitingButtonName
		return s, Effect{Reply: PromptButtonName}

	case AwaitingButtonName:
		if text == "" {
			return s, Effect{Reply: PromptButtonName}
		}
		s.Draft.PendingLabel = text
		s.State = AwaitingButtonURL
		return s, Effect{Reply: PromptButtonURL}

	case AwaitingButtonURL:
		if text == "" {
			return s, Effect{Reply: PromptButtonURL}
		}
		// Копируем slice, чтобы старые копии сессии не видели новых кнопок
		buttons := make([]post.Button, len(s.Draft.Buttons), len(s.Draft.Buttons)+1)
		copy(buttons, s.Draft.Buttons)
		s.Draft.Buttons = append(buttons, post.Button{Label: s.Draft.PendingLabel, URL: text})
		s.Draft.PendingLabel = ""

		if len(s.Draft.Buttons) >= MaxButtons {
			s.State = AwaitingTarget
			return s, Effect{Reply: PromptLimit + "\n" + PromptTarget}
		}
		s.State = AwaitingMoreDecision
		return s, Effect{Reply: PromptMore}

	case AwaitingMoreDecision:
		if strings.ToLower(text) == "yes" {
			s.State = AwaitingButtonName
			return s, Effect{Reply: PromptNextButton}
		}
		s.State = AwaitingTarget
		return s, Effect{Reply: PromptTarget}

	case AwaitingTarget:
		if text == "" {
			return s, Effect{Reply: PromptTarget}
		}
		draft := s.Draft
		draft.Target = text
		return Session{State: Idle, UpdatedAt: now}, Effect{Deliver: &draft}
	}

	return Session{State: Idle, UpdatedAt: now}, Effect{}
}
