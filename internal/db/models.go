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

package db

import "time"

// Виды уведомлений в журнале
const (
	KindStatus  = "status"  // Изменение статуса проверки
	KindFailure = "failure" // Сбой в работе программы
)

// Модель отправленного уведомления
type Notification struct {
	ID        int64     `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	Kind      string    `db:"kind"`    // "status" или "failure"
	ChatID    string    `db:"chat_id"` // Чат-получатель
	Text      string    `db:"text"`
	SentAt    int64     `db:"sent_at"` // Время отправки (unix timestamp)
}
