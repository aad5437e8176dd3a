/*
   HWREVIEWbot - Homework review status notifier bot
   Copyright (C) 2026  Unbewohnte (Kasyanov Nikolay Alexeevich)

   This program is free software: you can redistribute it and/or modify
   it under the terms of the GNU General Public License as published by
   the Free Software Foundation, either version 3 of the License, or
   (at your option) any later version.

   This program is distributed in the hope that it will be useful,
   but WITHOUT ANY WARRANTY; without even the implied warranty of
   MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
   GNU General Public License for more details.

   You should have received a copy of the GNU General Public License
   along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

package bot

import (
	"errors"
	"os"
	"strconv"
	"time"

	"Unbewohnte/HWREVIEWbot/internal/homework"
)

const (
	defaultPollInterval = 600 * time.Second
	defaultDBFile       = "DB.sqlite3"
)

type Config struct {
	PracticumToken string // Токен API Практикума
	TelegramToken  string // Токен телеграм-бота
	TelegramChatID string // Чат для уведомлений (ID или @username)
	Endpoint       string
	PollInterval   time.Duration
	DBFile         string
	Debug          bool
}

// ConfigFromEnv собирает конфигурацию из переменных окружения
func ConfigFromEnv() *Config {
	conf := &Config{
		PracticumToken: os.Getenv("PRACTICUM_TOKEN"),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
		Endpoint:       homework.DefaultEndpoint,
		PollInterval:   defaultPollInterval,
		DBFile:         defaultDBFile,
	}

	if endpoint := os.Getenv("HW_ENDPOINT"); endpoint != "" {
		conf.Endpoint = endpoint
	}

	if interval := os.Getenv("HW_POLL_INTERVAL_SECONDS"); interval != "" {
		if seconds, err := strconv.Atoi(interval); err == nil && seconds > 0 {
			conf.PollInterval = time.Duration(seconds) * time.Second
		}
	}

	if file := os.Getenv("HW_DB_FILE"); file != "" {
		conf.DBFile = file
	}

	if debug := os.Getenv("HW_DEBUG"); debug != "" {
		conf.Debug, _ = strconv.ParseBool(debug)
	}

	return conf
}

// Validate проверяет наличие обязательных токенов.
// Отсутствие любого из них фатально, без повторных попыток.
func (conf *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"PRACTICUM_TOKEN", conf.PracticumToken},
		{"TELEGRAM_TOKEN", conf.TelegramToken},
		{"TELEGRAM_CHAT_ID", conf.TelegramChatID},
	}

	for _, token := range required {
		if token.value == "" {
			return errors.New("отсутствует обязательная переменная окружения " + token.name)
		}
	}

	return nil
}
