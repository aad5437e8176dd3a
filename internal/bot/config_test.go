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
	"testing"
	"time"

	"Unbewohnte/HWREVIEWbot/internal/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		PracticumToken: "practicum",
		TelegramToken:  "telegram",
		TelegramChatID: "12345",
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "all tokens present",
			modify: func(c *Config) {},
		},
		{
			name:    "missing practicum token",
			modify:  func(c *Config) { c.PracticumToken = "" },
			wantErr: "PRACTICUM_TOKEN",
		},
		{
			name:    "missing telegram token",
			modify:  func(c *Config) { c.TelegramToken = "" },
			wantErr: "TELEGRAM_TOKEN",
		},
		{
			name:    "missing chat id",
			modify:  func(c *Config) { c.TelegramChatID = "" },
			wantErr: "TELEGRAM_CHAT_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conf := validConfig()
			tt.modify(conf)

			err := conf.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfigFromEnvDefaults(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "practicum")
	t.Setenv("TELEGRAM_TOKEN", "telegram")
	t.Setenv("TELEGRAM_CHAT_ID", "12345")
	t.Setenv("HW_ENDPOINT", "")
	t.Setenv("HW_POLL_INTERVAL_SECONDS", "")
	t.Setenv("HW_DB_FILE", "")
	t.Setenv("HW_DEBUG", "")

	conf := ConfigFromEnv()
	require.NoError(t, conf.Validate())

	assert.Equal(t, homework.DefaultEndpoint, conf.Endpoint)
	assert.Equal(t, 600*time.Second, conf.PollInterval)
	assert.Equal(t, "DB.sqlite3", conf.DBFile)
	assert.False(t, conf.Debug)
}

func TestConfigFromEnvOverrides(t *testing.T) {
	t.Setenv("PRACTICUM_TOKEN", "practicum")
	t.Setenv("TELEGRAM_TOKEN", "telegram")
	t.Setenv("TELEGRAM_CHAT_ID", "@hwreviews")
	t.Setenv("HW_ENDPOINT", "http://localhost:8080/statuses/")
	t.Setenv("HW_POLL_INTERVAL_SECONDS", "60")
	t.Setenv("HW_DB_FILE", "journal.sqlite3")
	t.Setenv("HW_DEBUG", "true")

	conf := ConfigFromEnv()

	assert.Equal(t, "http://localhost:8080/statuses/", conf.Endpoint)
	assert.Equal(t, time.Minute, conf.PollInterval)
	assert.Equal(t, "journal.sqlite3", conf.DBFile)
	assert.True(t, conf.Debug)
}

func TestConfigFromEnvBadInterval(t *testing.T) {
	t.Setenv("HW_POLL_INTERVAL_SECONDS", "not-a-number")

	conf := ConfigFromEnv()
	assert.Equal(t, 600*time.Second, conf.PollInterval)

	t.Setenv("HW_POLL_INTERVAL_SECONDS", "-5")

	conf = ConfigFromEnv()
	assert.Equal(t, 600*time.Second, conf.PollInterval)
}
