package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ErrorData содержит информацию об ошибке и о пользователе, вызвавшем ошибку
type ErrorData struct {
	Error    error
	Username string
	UserID   int64
	Command  string
	AddInfo  string // AdditionalInfo
}

// RequestData содержит информацию о запросе
type RequestData struct {
	Username string
	ID       int64
	Command  string
}

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Initialize настраивает логгер. В debug-режиме используется читаемый вывод
func Initialize(debug bool, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// LogInfo логгирует информационное сообщение
func LogInfo(message string) {
	logger.Info().Msg(message)
}

// LogDebug логгирует сообщения, которые нужны только при отладке
func LogDebug(message string) {
	logger.Debug().Msg(message)
}

// LogEvent логгирует события (например, отправку поста)
func LogEvent(event string) {
	logger.Info().Str("type", "event").Msg(event)
}

// LogRequest логгирует запрос от пользователя
func LogRequest(data RequestData) {
	logger.Info().
		Str("type", "request").
		Str("command", data.Command).
		Str("user", data.Username).
		Int64("id", data.ID).
		Msg("request")
}

// LogError логгирует ошибку (программы)
func LogError(data ErrorData) {
	event := logger.Error().
		Str("type", "error").
		Str("command", data.Command).
		Str("user", data.Username).
		Int64("id", data.UserID).
		Err(data.Error)
	if data.AddInfo != "" {
		event = event.Str("info", data.AddInfo)
	}
	event.Msg("error")
}

// LogMinorError логгирует мелкие ошибки, которые произошли во время работы программы
func LogMinorError(funcName, message string, err error) {
	logger.Warn().
		Str("type", "error").
		Str("func", funcName).
		Err(err).
		Msg(message)
}

// LogFatalError логгирует фатальную ошибку, после чего завершает программу с кодом 1
func LogFatalError(funcName, message string, err error) {
	logger.WithLevel(zerolog.FatalLevel).
		Str("func", funcName).
		Err(err).
		Msg(message)
	os.Exit(1)
}
