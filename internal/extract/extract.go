// Package extract достаёт поля поста из свободного текста с помощью регулярных выражений.
// Каждое поле ищется независимо, отсутствие поля ошибкой не считается (кроме названия, см. Validate)
package extract

import (
	"errors"
	"regexp"
	"strings"

	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/post"
)

// ErrNoTitle возвращается, если в тексте нет "ANIME:"
var ErrNoTitle = errors.New("could not find title")

// Rule – именованное правило извлечения одного поля.
// Результат – первая группа первого совпадения без пробелов по краям
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
}

// Extract применяет правило к тексту
func (r Rule) Extract(text string) string {
	match := r.Pattern.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

var (
	TitleRule    = Rule{"title", regexp.MustCompile(`ANIME:[ \t]*(?:\*\*)?[ \t]*(.*?)[ \t]*(?:\*\*|\n|$)`)}
	SeasonRule   = Rule{"season", regexp.MustCompile(`(?i)season[^\d\n]*(\d+)`)}
	EpisodesRule = Rule{"episodes", regexp.MustCompile(`(?i)episodes?[^\d\n]*(\d+)`)}
	AudioRule    = Rule{"audio", regexp.MustCompile(`(?i)audio[^\[\n]*\[([^\]\n]*)\]`)}
	QualityRule  = Rule{"quality", regexp.MustCompile(`(?i)quality[ \t]*[:\-]?[ \t]*([^\n]*?)[ \t]*(?:genres|\n|$)`)}
	GenresRule   = Rule{"genres", regexp.MustCompile(`(?i)genres[ \t]*[:\-]?[ \t]*([^\n|]*)`)}
	SynopsisRule = Rule{"synopsis", regexp.MustCompile(`(?is)(?:^|\n)[ \t]*>(.*?)POWERED BY`)}
	// "@" перед именем необязателен
	PoweredByRule = Rule{"powered_by", regexp.MustCompile(`(?i)POWERED BY[ \t]*:?[ \t]*@?(\w+)`)}

	// Rules – все правила в порядке извлечения
	Rules = []Rule{TitleRule, SeasonRule, EpisodesRule, AudioRule, QualityRule, GenresRule, SynopsisRule, PoweredByRule}
)

var (
	linkRegex  = regexp.MustCompile(`https?://[^\s<>"'()\[\]]+`)
	quoteRegex = regexp.MustCompile(`(?m)^[ \t]*>[ \t]?`)
	boldRegex  = regexp.MustCompile(`\*\*`)
)

// Links возвращает все ссылки в порядке появления. Повторы не удаляются
func Links(text string) []string {
	return linkRegex.FindAllString(text, -1)
}

// Parse извлекает все поля. Функция чистая: одинаковый текст – одинаковый результат
func Parse(text string) post.Extracted {
	synopsis := SynopsisRule.Extract(text)
	synopsis = quoteRegex.ReplaceAllString(synopsis, "")
	synopsis = strings.TrimSpace(boldRegex.ReplaceAllString(synopsis, ""))

	return post.Extracted{
		Title:     TitleRule.Extract(text),
		Season:    SeasonRule.Extract(text),
		Episodes:  EpisodesRule.Extract(text),
		Audio:     AudioRule.Extract(text),
		Quality:   cleanValue(QualityRule.Extract(text)),
		Genres:    cleanValue(GenresRule.Extract(text)),
		Synopsis:  synopsis,
		PoweredBy: PoweredByRule.Extract(text),
		Links:     Links(text),
	}
}

// Validate проверяет обязательные поля
func Validate(e post.Extracted) error {
	if e.Title == "" {
		return ErrNoTitle
	}
	return nil
}

// cleanValue убирает markdown-звёздочки, оставшиеся вокруг значения
func cleanValue(s string) string {
	return strings.TrimSpace(boldRegex.ReplaceAllString(s, ""))
}
