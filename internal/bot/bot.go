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
	"context"
	"fmt"
	"log"
	"strconv"

	"Unbewohnte/HWREVIEWbot/internal/db"
	"Unbewohnte/HWREVIEWbot/internal/homework"

	"github.com/mymmrac/telego"
)

// Источник статусов домашних работ
type statusAPI interface {
	Statuses(ctx context.Context, fromDate int64) (*homework.StatusResponse, error)
}

// Необходимая часть Telegram API
type telegramAPI interface {
	GetMe(ctx context.Context) (*telego.User, error)
	SendMessage(ctx context.Context, params *telego.SendMessageParams) (*telego.Message, error)
}

type Bot struct {
	api      telegramAPI
	conf     *Config
	homework statusAPI
	journal  *db.DB
	chatID   telego.ChatID
	state    pollState
}

func NewBot(conf *Config) (*Bot, error) {
	api, err := telego.NewBot(conf.TelegramToken)
	if err != nil {
		return nil, err
	}

	journal, err := db.NewDB(conf.DBFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open notification journal: %w", err)
	}

	return &Bot{
		api:      api,
		conf:     conf,
		homework: homework.NewClient(conf.PracticumToken, conf.Endpoint),
		journal:  journal,
		chatID:   chatIDFrom(conf.TelegramChatID),
	}, nil
}

// В Telegram чат адресуется либо числовым ID, либо @username
func chatIDFrom(raw string) telego.ChatID {
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return telego.ChatID{ID: id}
	}

	return telego.ChatID{Username: raw}
}

func (bot *Bot) Start(ctx context.Context) error {
	me, err := bot.api.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("failed to authorize bot: %w", err)
	}
	log.Printf("Бот авторизован как %s", me.Username)

	bot.StartPolling(ctx)

	return nil
}
