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
	"errors"
	"log"
	"time"

	"Unbewohnte/HWREVIEWbot/internal/db"
	"Unbewohnte/HWREVIEWbot/internal/homework"

	"github.com/mymmrac/telego"
)

// Состояние цикла опроса. Владеет им только сам цикл,
// живет до завершения процесса.
type pollState struct {
	lastStatus string // Последнее отправленное уведомление о статусе
	lastError  string // Последнее отправленное сообщение о сбое
	timestamp  int64  // Нижняя граница следующего окна запроса
}

// StartPolling крутит цикл опроса до отмены контекста.
// Пауза между циклами выдерживается всегда, даже после сбоя.
func (bot *Bot) StartPolling(ctx context.Context) {
	log.Printf("Запускаем опрос статуса домашней работы с интервалом %v", bot.conf.PollInterval)

	bot.state.timestamp = time.Now().Unix()

	ticker := time.NewTicker(bot.conf.PollInterval)
	defer ticker.Stop()

	for {
		bot.checkOnce(ctx)

		select {
		case <-ctx.Done():
			log.Printf("Опрос остановлен: %v", ctx.Err())
			return
		case <-ticker.C:
		}
	}
}

// checkOnce выполняет один цикл: запрос, проверка, сравнение, оповещение.
// Любой сбой цикла уходит в reportFailure и не останавливает опрос.
func (bot *Bot) checkOnce(ctx context.Context) {
	status, currentDate, err := bot.currentStatus(ctx)
	if err != nil {
		bot.reportFailure(ctx, err)
		return
	}

	if status == bot.state.lastStatus {
		if bot.conf.Debug {
			log.Printf("Обновлений по статусу домашней работы нет")
		}
		return
	}

	if err := bot.sendMessage(ctx, status); err != nil {
		// Состояние не трогаем: следующий цикл отправит то же уведомление заново
		log.Printf("Ошибка отправки сообщения в Telegram: %v", err)
		return
	}

	bot.state.lastStatus = status
	bot.state.timestamp = currentDate
	bot.record(db.KindStatus, status)
}

// currentStatus получает свежий ответ API и выводит из него текст уведомления.
// Пустой список работ — не ошибка: изменений нет, статус остается прежним.
func (bot *Bot) currentStatus(ctx context.Context) (string, int64, error) {
	response, err := bot.homework.Statuses(ctx, bot.state.timestamp)
	if err != nil {
		return "", 0, err
	}

	if len(response.Homeworks) == 0 {
		return bot.state.lastStatus, response.CurrentDate, nil
	}

	status, err := homework.ParseStatus(response.Homeworks[0])
	if err != nil {
		return "", 0, err
	}

	return status, response.CurrentDate, nil
}

// reportFailure оповещает чат о сбое, подавляя повтор одинаковых сообщений.
// Неудачная отправка самого оповещения только логируется.
func (bot *Bot) reportFailure(ctx context.Context, failure error) {
	message := "Program failure: " + failure.Error()
	log.Printf("Сбой цикла (%s): %v", failureKind(failure), failure)

	if message == bot.state.lastError {
		return
	}

	if err := bot.sendMessage(ctx, message); err != nil {
		log.Printf("Ошибка отправки сообщения в Telegram: %v", err)
		return
	}

	bot.state.lastError = message
	bot.record(db.KindFailure, message)
}

// failureKind раскладывает сбой по закрытой таксономии ошибок
func failureKind(failure error) string {
	var apiErr *homework.APIError
	var shapeErr *homework.ShapeError
	var missingErr *homework.MissingFieldError

	switch {
	case errors.As(failure, &apiErr):
		return "api"
	case errors.As(failure, &shapeErr):
		return "shape"
	case errors.As(failure, &missingErr):
		return "field"
	default:
		return "transport"
	}
}

func (bot *Bot) sendMessage(ctx context.Context, text string) error {
	_, err := bot.api.SendMessage(ctx, &telego.SendMessageParams{
		ChatID: bot.chatID,
		Text:   text,
	})
	if err == nil && bot.conf.Debug {
		log.Printf("Сообщение отправлено в Telegram")
	}

	return err
}

// record пишет отправленное уведомление в журнал.
// Журнал только дополняется и никогда не влияет на сам цикл.
func (bot *Bot) record(kind string, text string) {
	if bot.journal == nil {
		return
	}

	_, err := bot.journal.AddNotification(&db.Notification{
		Kind:   kind,
		ChatID: bot.conf.TelegramChatID,
		Text:   text,
		SentAt: time.Now().Unix(),
	})
	if err != nil {
		log.Printf("Ошибка записи уведомления в журнал: %v", err)
	}
}
