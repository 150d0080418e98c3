package config // package config loads application configuration from environment variables

import (
	"log"     // log is used to report configuration errors and halt execution
	"os"      // os provides access to environment variables
	"strconv" // strconv converts strings to other types
	"time"    // time parses the session TTL

	"github.com/joho/godotenv" // godotenv loads a local .env file when present
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The service talks to two stores: the networked
// MySQL web-metadata database and the embedded SQLite gameplay database, so
// both carry their own connection settings here.
type Config struct {
	Env        string        // application environment (e.g. "dev", "prod")
	Port       string        // HTTP port to listen on
	MetaUser   string        // metadata database username
	MetaPass   string        // metadata database password (optional)
	MetaHost   string        // metadata database host address
	MetaPort   string        // metadata database port number
	MetaName   string        // metadata database name
	GameDBPath string        // path to the gameplay SQLite file
	SessionTTL time.Duration // lifetime of a login session
	BcryptCost int           // bcrypt cost for password hashing
	GitRepo    string        // "owner/repo" target for the issue-tracker proxy (optional)
	GitToken   string        // token for the issue-tracker proxy (optional)
}

// Load reads configuration values from environment variables and returns a
// Config.  A .env file in the working directory is merged in first so that
// local development does not need exported variables.  Required variables
// are enforced by must() and missing values cause the program to exit with
// a fatal log message.
func Load() Config {
	_ = godotenv.Load() // absence of .env is fine; real env always wins

	return Config{
		Env:        must("APP_ENV"),
		Port:       must("APP_PORT"),
		MetaUser:   must("META_DB_USER"),
		MetaPass:   os.Getenv("META_DB_PASS"), // empty password allowed
		MetaHost:   must("META_DB_HOST"),
		MetaPort:   must("META_DB_PORT"),
		MetaName:   must("META_DB_NAME"),
		GameDBPath: must("GAME_DB_PATH"),
		SessionTTL: mustDur("SESSION_TTL"),
		BcryptCost: mustInt("BCRYPT_COST"),
		GitRepo:    os.Getenv("GIT_REPO"),
		GitToken:   os.Getenv("GIT_TOKEN"),
	}
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

// mustDur is like must() but parses the value as a time.Duration ("24h").
func mustDur(key string) time.Duration {
	s := must(key)
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("invalid duration for %s: %q", key, s)
	}
	return d
}
