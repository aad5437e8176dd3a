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

package homework

import (
	"encoding/json"
	"fmt"
)

// Вердикты ревью и их описания для уведомлений
var verdicts = map[string]string{
	"approved":  "Review complete: the reviewer liked everything. Hooray!",
	"reviewing": "The work was taken up for review.",
	"rejected":  "Review complete: the reviewer has remarks.",
}

// Verdict возвращает текст для известного кода вердикта
func Verdict(code string) (string, error) {
	text, ok := verdicts[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVerdict, code)
	}

	return text, nil
}

// Запись об одной домашней работе из ответа API
type Homework struct {
	ID              int64  `json:"id"`
	HomeworkName    string `json:"homework_name"`
	LessonName      string `json:"lesson_name"`
	Status          string `json:"status"`
	ReviewerComment string `json:"reviewer_comment"`
	DateUpdated     string `json:"date_updated"`
}

type StatusResponse struct {
	Homeworks   []Homework `json:"homeworks"`
	CurrentDate int64      `json:"current_date"`
}

// CheckResponse проверяет структуру сырого ответа API.
// Проверки идут по порядку, первая неудачная побеждает.
// Пустой список homeworks — валидный ответ ("изменений нет").
func CheckResponse(payload []byte) (*StatusResponse, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil || raw == nil {
		return nil, &ShapeError{Reason: "response is not a mapping"}
	}

	rawHomeworks, ok := raw["homeworks"]
	if !ok {
		return nil, &ShapeError{Reason: "no homeworks key in response"}
	}

	var response StatusResponse
	if err := json.Unmarshal(rawHomeworks, &response.Homeworks); err != nil {
		return nil, &ShapeError{Reason: "homeworks is not a list"}
	}

	if rawDate, ok := raw["current_date"]; ok {
		if err := json.Unmarshal(rawDate, &response.CurrentDate); err != nil {
			return nil, &ShapeError{Reason: "current_date is not a unix timestamp"}
		}
	}

	return &response, nil
}

// ParseStatus собирает текст уведомления по одной записи о домашней работе.
// Неизвестный статус считается отсутствующим.
func ParseStatus(hw Homework) (string, error) {
	if hw.HomeworkName == "" {
		return "", &MissingFieldError{Field: "homework_name"}
	}

	verdict, err := Verdict(hw.Status)
	if err != nil {
		return "", &MissingFieldError{Field: "status"}
	}

	return fmt.Sprintf("Changed review status of %q. %s", hw.HomeworkName, verdict), nil
}
