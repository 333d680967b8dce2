package main

import (
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/bot"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/config"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/conversation"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/logging"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/metrics"
	"github.com/mohit94165/URL-BUTTON-MAKER-BOT-0.1/internal/settingsdb"
)

func main() {
	// Получение конфигурационной информации
	err := config.GetConfigInfo()
	if err != nil {
		log.Fatal(err)
	}

	logging.Initialize(config.Data.Debug, os.Stdout)
	logging.LogInfo("Старт программы")
	logging.LogEvent("Админы: " + strconv.Itoa(len(config.Data.Admins)))

	// Хранилище канала: bolt-база, если указан путь, иначе – память
	var channels settingsdb.ChannelStore
	if config.Data.DBPath != "" {
		db, err := settingsdb.Open(config.Data.DBPath, config.Data.Channel)
		if err != nil {
			logging.LogFatalError("main", "попытка открыть базу данных с настройками", err)
		}
		defer db.Close()
		channels = db
	} else {
		channels = settingsdb.NewMemory(config.Data.Channel)
	}

	// Незаконченные черновики удаляются через SessionTTL
	sessions := conversation.NewStore(config.Data.SessionTTL, nil)
	if config.Data.SessionTTL > 0 {
		sweeper := conversation.StartSweeper(sessions, time.Minute, func(removed int) {
			if removed > 0 {
				logging.LogEvent("Удалено черновиков: " + strconv.Itoa(removed))
			}
			metrics.ActiveDrafts.Set(float64(sessions.Len()))
		})
		defer sweeper.Stop()
	}

	if config.Data.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(config.Data.MetricsAddr); err != nil {
				logging.LogMinorError("main", "попытка запустить /metrics", err)
			}
		}()
	}

	// Инициализация бота
	logging.LogInfo("Инициализация бота")
	urlBot, err := bot.NewBot(config.Data.BotToken, bot.Options{
		Admins:   config.Data.Admins,
		Sessions: sessions,
		Channels: channels,
	})
	if err != nil {
		logging.LogFatalError("main", "попытка залогиниться в бота", err)
	}

	// Запуск бота
	logging.LogInfo("Запуск бота")
	stopChan := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		urlBot.StartPooling(stopChan, config.Data.Rate)
		close(stopped)
	}()

	// Перехватываем сигналы
	sigChan := make(chan os.Signal, 1)
	// SIGTERM для Сервера (htop kill 15), SIGINT для Windows (Ctrl+C)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	// Ждём сигнала
	<-sigChan
	// Останавливаем бота и ждём, пока обработается текущее сообщение
	close(stopChan)
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
	}
	// Даём очереди ответов время отправиться
	time.Sleep(500 * time.Millisecond)
	logging.LogInfo("Остановка работы")
}
