package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// Expansion horizons (weeks). GenerateWeeksDefault is applied when the
	// explicit generate-sessions endpoint gets no "weeks" value;
	// ScheduleCreateWeeks is the horizon used right after a weekly schedule
	// is created. Observed production values: 4 and 12.
	GenerateWeeksDefault int
	ScheduleCreateWeeks  int

	// Session status transition policy: "allow-all" (default) or "terminal".
	SessionStatusPolicy string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using system ENV")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	if JWTSecret == "" {
		log.Println("WARN: JWT_SECRET is not set")
	}

	GenerateWeeksDefault = GetEnvInt("GENERATE_WEEKS_DEFAULT", 4)
	ScheduleCreateWeeks = GetEnvInt("SCHEDULE_CREATE_WEEKS", 12)
	SessionStatusPolicy = GetEnv("SESSION_STATUS_POLICY", "allow-all")
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return defaultValue
	}
	return v
}
