package config

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/go-homedir"
)

// Environment variables read by ApplyEnv and PathFromEnv.
const (
	EnvConfigPath = "SHOWCASE_CONFIG"
	EnvFullscreen = "SHOWCASE_FULLSCREEN"
	EnvPreset     = "SHOWCASE_PRESET"
)

// LoadDotEnv reads the given file (e.g. ".env") and sets environment variables for each
// line of the form KEY=VALUE. Variables already set in the process win over the file.
// Empty lines and lines starting with # are skipped. A missing file is not an error.
func LoadDotEnv(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		key, value, ok := parseEnvLine(scanner.Text())
		if !ok {
			continue
		}
		if _, set := os.LookupEnv(key); set {
			continue
		}
		_ = os.Setenv(key, value)
	}
	return scanner.Err()
}

func parseEnvLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	line = strings.TrimPrefix(line, "export ")
	key, value, found := strings.Cut(line, "=")
	key = strings.TrimSpace(key)
	if !found || key == "" {
		return "", "", false
	}
	value = strings.TrimSpace(value)
	if len(value) >= 2 && (value[0] == '"' && value[len(value)-1] == '"' || value[0] == '\'' && value[len(value)-1] == '\'') {
		value = value[1 : len(value)-1]
	}
	return key, value, true
}

// PathFromEnv returns SHOWCASE_CONFIG (with ~ expanded) when set, otherwise DefaultPath.
func PathFromEnv() string {
	if p := strings.TrimSpace(os.Getenv(EnvConfigPath)); p != "" {
		return expandHome(p)
	}
	return DefaultPath
}

// expandHome expands a leading ~ to the user's home directory. Paths it cannot expand
// are returned unchanged.
func expandHome(p string) string {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return p
	}
	return expanded
}

// ApplyEnv overrides file settings with SHOWCASE_FULLSCREEN and SHOWCASE_PRESET.
// Unparsable booleans are ignored.
func (c *Config) ApplyEnv() {
	if v, ok := os.LookupEnv(EnvFullscreen); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.Window.Fullscreen = b
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvPreset)); v != "" {
		c.Environment.Preset = v
	}
}
