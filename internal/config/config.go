package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/focusring/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// KeyFile is the on-disk shape of the --keys file.
//
//	next = ["tab", "ctrl+n"]
//	prev = ["shift+tab", "ctrl+p"]
type KeyFile struct {
	Next []string `toml:"next"`
	Prev []string `toml:"prev"`
}

const (
	envWidth   = "FOCUSRING_WIDTH"
	envHeight  = "FOCUSRING_HEIGHT"
	envTrace   = "FOCUSRING_TRACE"
	envLogFile = "FOCUSRING_LOG_FILE"
	envKeys    = "FOCUSRING_KEYS"
	envNoMouse = "FOCUSRING_NO_MOUSE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("focusring", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	keys := fs.String("keys", envOrDefault(env, envKeys, ""), "path to a TOML file with next/prev focus key lists")
	noMouse := fs.Bool("no-mouse", envOrBool(env, envNoMouse, false), "disable mouse focus")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	var keyFile KeyFile
	if path := strings.TrimSpace(*keys); path != "" {
		loaded, err := LoadKeyFile(path)
		if err != nil {
			return Config{}, err
		}
		keyFile = loaded
	}

	cfg := Config{
		App: app.Config{
			Width:    *width,
			Height:   *height,
			Mouse:    !*noMouse,
			NextKeys: keyFile.Next,
			PrevKeys: keyFile.Prev,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
			"keys":    *keys,
			"noMouse": strconv.FormatBool(*noMouse),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// LoadKeyFile decodes a key binding file.
func LoadKeyFile(path string) (KeyFile, error) {
	var kf KeyFile
	if _, err := toml.DecodeFile(path, &kf); err != nil {
		return KeyFile{}, fmt.Errorf("load key file %s: %w", path, err)
	}
	kf.Next = cleanKeys(kf.Next)
	kf.Prev = cleanKeys(kf.Prev)
	return kf, nil
}

func cleanKeys(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects key files that bind the same key in both directions,
// counting the default binding of a direction the file leaves empty.
func Validate(cfg Config) error {
	keys := cfg.App.Options().Keys
	for _, next := range keys.Next.Keys() {
		for _, prev := range keys.Prev.Keys() {
			if next == prev {
				return fmt.Errorf("key %q is bound to both next and prev", next)
			}
		}
	}
	return nil
}
