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
	"errors"
	"fmt"
)

// Неизвестный вердикт ревью
var ErrUnknownVerdict = errors.New("unknown homework verdict")

// Ответ API с кодом, отличным от 200
type APIError struct {
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("homework API returned status %d", e.StatusCode)
}

// Ответ API не соответствует ожидаемой структуре
type ShapeError struct {
	Reason string
}

func (e *ShapeError) Error() string {
	return "malformed API response: " + e.Reason
}

// В записи о домашней работе нет обязательного поля
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("homework record has no valid %q field", e.Field)
}
