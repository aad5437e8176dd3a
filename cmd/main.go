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

package main

import (
	"Unbewohnte/HWREVIEWbot/internal/bot"
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func init() {
	logfile, err := os.Create("logs.txt")
	if err != nil {
		log.Fatal("Failed to create logs file: " + err.Error())
	}
	log.SetOutput(io.MultiWriter(logfile, os.Stdout))

	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используем переменные окружения")
	}
}

func main() {
	conf := bot.ConfigFromEnv()
	if err := conf.Validate(); err != nil {
		log.Fatalf("%s. Программа принудительно остановлена.", err)
	}
	log.Println("Проверка токенов пройдена")

	b, err := bot.NewBot(conf)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := b.Start(ctx); err != nil {
		log.Fatal(err)
	}
}
