package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/xo/dburl"
)

type Config struct {
	Env             string
	DiscordToken    string
	DatabaseURL     string
	StartingCredits int64
	BotBankroll     int64
}

// Load reads the environment and applies defaults. Call after godotenv has
// populated the environment.
func Load() Config {
	return Config{
		Env:             getEnv("ENV", "local"),
		DiscordToken:    getEnv("DISCORD_BOT_TOKEN", ""),
		DatabaseURL:     getEnv("MYSQL_URL", ""),
		StartingCredits: getEnvInt64("STARTING_CREDITS", 1000),
		BotBankroll:     getEnvInt64("BOT_BANKROLL", 1000000),
	}
}

// MySQLDSN accepts either a mysql:// URL or a raw driver DSN and returns a
// DSN the mysql driver accepts, with the connection params gorm needs.
func MySQLDSN(raw string) string {
	dsn := raw
	if u, err := dburl.Parse(raw); err == nil {
		dsn = u.DSN
	}
	if !strings.Contains(dsn, "parseTime") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "charset=utf8mb4&parseTime=True&loc=Local"
	}
	return dsn
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func getEnvInt64(key string, def int64) int64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return def
	}
	return n
}
