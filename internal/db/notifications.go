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

import (
	"database/sql"
	"time"
)

func (db *DB) AddNotification(notification *Notification) (int64, error) {
	result, err := db.Exec(`
		INSERT INTO notifications (kind, chat_id, text, sent_at)
		VALUES (?, ?, ?, ?)
	`, notification.Kind, notification.ChatID, notification.Text, notification.SentAt)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

func (db *DB) GetNotifications() ([]Notification, error) {
	rows, err := db.Query(`
		SELECT id, created_at, kind, chat_id, text, sent_at
		FROM notifications
		ORDER BY sent_at, id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []Notification
	for rows.Next() {
		var notification Notification
		var createdAt string
		err := rows.Scan(
			&notification.ID,
			&createdAt,
			&notification.Kind,
			&notification.ChatID,
			&notification.Text,
			&notification.SentAt,
		)
		if err != nil {
			return nil, err
		}

		notification.CreatedAt, err = time.Parse(time.DateTime, createdAt)
		if err != nil {
			return nil, err
		}

		notifications = append(notifications, notification)
	}

	return notifications, nil
}

func (db *DB) LastNotification(kind string) (*Notification, error) {
	var notification Notification
	var createdAt string

	err := db.QueryRow(`
		SELECT id, created_at, kind, chat_id, text, sent_at
		FROM notifications
		WHERE kind = ?
		ORDER BY sent_at DESC, id DESC
		LIMIT 1
	`, kind).Scan(
		&notification.ID,
		&createdAt,
		&notification.Kind,
		&notification.ChatID,
		&notification.Text,
		&notification.SentAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	notification.CreatedAt, err = time.Parse(time.DateTime, createdAt)
	if err != nil {
		return nil, err
	}

	return &notification, nil
}
