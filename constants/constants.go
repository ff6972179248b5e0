package constants

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(key + " environment variable is not a number: " + v)
	}
	return n
}

func GetAddr() string {
	return getEnv("PCSET_ADDR", ":8080")
}

func GetLogLevel() string {
	return getEnv("PCSET_LOG_LEVEL", "info")
}

func GetMidiPort() int {
	return getEnvInt("PCSET_MIDI_PORT", 0)
}

func GetDebounce() time.Duration {
	return time.Duration(getEnvInt("PCSET_DEBOUNCE_MS", 100)) * time.Millisecond
}

func GetCorsOrigins() []string {
	var res []string
	for _, o := range strings.Split(getEnv("PCSET_CORS_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			res = append(res, o)
		}
	}
	return res
}

// snapshots with a key count outside these bounds are not chords
const MinChordSize = 1
const MaxChordSize = 16
