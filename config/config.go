package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of the server and the storage backends.
var (
	MaxOpenConns = getEnvInt("MAX_OPEN_CONNS", 20)
	MaxIdleConns = getEnvInt("MAX_IDLE_CONNS", 20)
	RequestRate  = rate.Limit(getEnvInt("REQUEST_RPS", 100))
	RequestBurst = getEnvInt("REQUEST_BURST", 50)
)

// Settings are the user facing defaults, cobra flags start from these.
type Settings struct {
	Port             int
	PublicDir        string
	Backend          string
	BackendArgs      string
	HighScoreKey     string
	PrometheusListen string
}

// Load reads an optional .env file from the working directory and returns the
// settings taken from the environment. Variables already set win over the
// file.
func Load() Settings {
	_ = godotenv.Load()

	RequestRate = rate.Limit(getEnvInt("REQUEST_RPS", int(RequestRate)))
	RequestBurst = getEnvInt("REQUEST_BURST", RequestBurst)
	MaxOpenConns = getEnvInt("MAX_OPEN_CONNS", MaxOpenConns)
	MaxIdleConns = getEnvInt("MAX_IDLE_CONNS", MaxIdleConns)

	return Settings{
		Port:             getEnvInt("PORT", 3456),
		PublicDir:        getEnv("PUBLIC_DIR", "public"),
		Backend:          getEnv("HIGHSCORE_BACKEND", "file"),
		BackendArgs:      getEnv("HIGHSCORE_BACKEND_ARGS", ""),
		HighScoreKey:     getEnv("HIGHSCORE_KEY", "snakeHighScore"),
		PrometheusListen: getEnv("PROMETHEUS_LISTEN", ":9000"),
	}
}

func getEnv(varName string, defaults string) string {
	if val := os.Getenv(varName); val != "" {
		return val
	}
	return defaults
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}
