package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"
)

const (
	DefaultStratzAPIURL = "https://api.stratz.com/graphql"
	DefaultScanPeriod   = 30 * time.Minute
	DefaultScanTake     = 10
	DefaultMinPlayers   = 1
	DefaultResendFrom   = "onboarding@resend.dev"
)

// Config holds everything the announcer needs at startup.
type Config struct {
	GuildID           int64
	StratzJWT         string
	DiscordWebhookURL string

	StratzAPIURL string
	ScanPeriod   time.Duration
	ScanTake     int
	MinPlayers   int
	LogLevel     string

	ResendKey  string
	ResendFrom string
	ResendTo   []string

	FirebaseProjectID       string
	FirebaseCredentialsJSON string
}

// MirrorEmail reports whether announcements should also go out by e-mail.
func (c Config) MirrorEmail() bool {
	return c.ResendKey != "" && len(c.ResendTo) > 0
}

// Archive reports whether announcements should be archived in Firestore.
func (c Config) Archive() bool {
	return c.FirebaseProjectID != ""
}

// Load reads the configuration from the environment. Any missing required
// variable or malformed value is an error naming the variable.
func Load() (Config, error) {
	guildID, err := requiredInt64("FOLLOWED_GUILD_ID")
	if err != nil {
		return Config{}, err
	}
	jwt, err := required("STRATZ_JWT")
	if err != nil {
		return Config{}, err
	}
	webhook, err := required("DISCORD_WEBHOOK_URL")
	if err != nil {
		return Config{}, err
	}
	if err := checkURL("DISCORD_WEBHOOK_URL", webhook); err != nil {
		return Config{}, err
	}

	apiURL := envOrDefault("STRATZ_API_URL", DefaultStratzAPIURL)
	if err := checkURL("STRATZ_API_URL", apiURL); err != nil {
		return Config{}, err
	}

	period, err := envDurationOrDefault("SCAN_PERIOD", DefaultScanPeriod)
	if err != nil {
		return Config{}, err
	}
	if period <= 0 {
		return Config{}, xerrors.Errorf("invalid SCAN_PERIOD %s: must be positive", period)
	}

	take, err := envIntOrDefault("SCAN_TAKE", DefaultScanTake)
	if err != nil {
		return Config{}, err
	}
	if take <= 0 {
		return Config{}, xerrors.Errorf("invalid SCAN_TAKE %d: must be positive", take)
	}

	minPlayers, err := envIntOrDefault("MIN_PLAYERS", DefaultMinPlayers)
	if err != nil {
		return Config{}, err
	}
	if minPlayers < 0 {
		return Config{}, xerrors.Errorf("invalid MIN_PLAYERS %d: must not be negative", minPlayers)
	}

	return Config{
		GuildID:           guildID,
		StratzJWT:         jwt,
		DiscordWebhookURL: webhook,

		StratzAPIURL: apiURL,
		ScanPeriod:   period,
		ScanTake:     take,
		MinPlayers:   minPlayers,
		LogLevel:     envOrDefault("LOG_LEVEL", "info"),

		ResendKey:  os.Getenv("RESEND_KEY"),
		ResendFrom: envOrDefault("RESEND_FROM", DefaultResendFrom),
		ResendTo:   envCSV("RESEND_TO"),

		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),
		FirebaseCredentialsJSON: os.Getenv("FIREBASE_CREDENTIALS_JSON"),
	}, nil
}

func required(key string) (string, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return "", xerrors.Errorf("missing %s environment variable", key)
	}
	return v, nil
}

func requiredInt64(key string) (int64, error) {
	raw, err := required(key)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, xerrors.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, xerrors.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envDurationOrDefault(key string, def time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, xerrors.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func envCSV(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func checkURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return xerrors.Errorf("invalid %s: %w", key, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return xerrors.Errorf("invalid %s %q: expected an absolute http(s) URL", key, raw)
	}
	return nil
}
