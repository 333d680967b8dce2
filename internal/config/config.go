package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrNoToken  = errors.New("botToken is missed")
	ErrNoAdmins = errors.New("list of admins is empty")
)

// ConfigurationData содержит конфигурационную информацию
type ConfigurationData struct {
	BotToken    string        // token бота
	Admins      []int64       // id пользователей, которым разрешено создавать посты
	AdminsFile  string        // json-файл со списком id
	Channel     string        // канал для кнопки "Join Channel"
	DBPath      string        // путь до bolt-базы с настройками. Пустая строка – настройки в памяти
	Rate        time.Duration // задержка между отправкой ответов
	SessionTTL  time.Duration // время жизни незаконченного черновика
	MetricsAddr string        // адрес для /metrics, пустая строка – выключено
	Debug       bool
}

// Data содержит конфигурационные данные
var Data ConfigurationData

// GetConfigInfo читает .env (если есть), парсит флаги и заполняет Data
func GetConfigInfo() error {
	// .env нужен только при локальном запуске
	_ = godotenv.Load()

	var err error
	Data, err = Parse(os.Args[1:])
	return err
}

// Parse парсит переданные аргументы. Значения по-умолчанию берутся из переменных окружения
func Parse(args []string) (ConfigurationData, error) {
	var (
		data       ConfigurationData
		admins     string
		rate       uint64
		sessionTTL time.Duration
	)

	fs := flag.NewFlagSet("url-button-bot", flag.ContinueOnError)
	fs.StringVar(&data.BotToken, "bToken", os.Getenv("BOT_TOKEN"), "token of a bot")
	fs.StringVar(&admins, "admins", os.Getenv("BOT_ADMINS"), "comma separated list of admin ids")
	fs.StringVar(&data.AdminsFile, "adminsFile", "", "json file with a list of admin ids")
	fs.StringVar(&data.Channel, "channel", os.Getenv("BOT_CHANNEL"), "channel username for the 'Join Channel' button")
	fs.StringVar(&data.DBPath, "db", "", "path to the settings database (empty – keep settings in memory)")
	fs.Uint64Var(&rate, "rate", 50, "delay between sending of messages (milliseconds)")
	fs.DurationVar(&sessionTTL, "sessionTTL", 30*time.Minute, "lifetime of an unfinished draft (0 – forever)")
	fs.StringVar(&data.MetricsAddr, "metricsAddr", "", "address for the /metrics endpoint, e.g. ':9090'")
	fs.BoolVar(&data.Debug, "debug", false, "debug mode (default – false)")

	if err := fs.Parse(args); err != nil {
		return ConfigurationData{}, err
	}

	data.Rate = time.Duration(rate) * time.Millisecond
	data.SessionTTL = sessionTTL

	if data.BotToken == "" {
		return ConfigurationData{}, ErrNoToken
	}

	ids, err := ParseIDs(admins)
	if err != nil {
		return ConfigurationData{}, err
	}
	data.Admins = append(data.Admins, ids...)

	if data.AdminsFile != "" {
		ids, err := ReadIDsFile(data.AdminsFile)
		if err != nil {
			return ConfigurationData{}, err
		}
		data.Admins = append(data.Admins, ids...)
	}

	if len(data.Admins) == 0 {
		return ConfigurationData{}, ErrNoAdmins
	}

	return data, nil
}

// ParseIDs парсит список id, разделённых запятыми. Пустые элементы пропускаются
func ParseIDs(s string) ([]int64, error) {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("wrong admin id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ReadIDsFile читает json-файл, в котором содержится список id (например, [123, 456])
func ReadIDsFile(path string) ([]int64, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("can't parse %s: %w", path, err)
	}
	return ids, nil
}
