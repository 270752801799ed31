package envutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/zoomtube-backend/internal/platform/logger"
)

// Source resolves settings from the process environment, falling back to
// values loaded from an optional YAML file, then to the caller's default.
type Source struct {
	file map[string]string
	log  *logger.Logger
}

func NewSource(log *logger.Logger) *Source {
	return &Source{file: map[string]string{}, log: log}
}

// LoadFile reads a flat YAML mapping of ENV_NAME: value pairs. An empty
// path is a no-op.
func (s *Source) LoadFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	return s.LoadYAML(raw)
}

func (s *Source) LoadYAML(raw []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	for k, v := range doc {
		if v == nil {
			continue
		}
		s.file[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(fmt.Sprint(v))
	}
	return nil
}

func (s *Source) lookup(key string) (string, string, bool) {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v), "environment", true
	}
	if s != nil {
		if v, ok := s.file[key]; ok {
			return v, "config_file", true
		}
	}
	return "", "", false
}

func (s *Source) logger(key string) *logger.Logger {
	if s == nil || s.log == nil {
		return nil
	}
	return s.log.With("env_var", key)
}

func (s *Source) String(key, def string) string {
	log := s.logger(key)
	val, from, ok := s.lookup(key)
	if !ok {
		if log != nil {
			log.Debug("Setting not found, using default", "default", def)
		}
		return def
	}
	if log != nil {
		log.Debug("Setting found", "source", from)
	}
	return val
}

func (s *Source) Int(key string, def int) int {
	log := s.logger(key)
	val, _, ok := s.lookup(key)
	if !ok || val == "" {
		return def
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		if log != nil {
			log.Debug("Setting could not be parsed as int, using default", "providedVal", val, "defaultVal", def, "error", err)
		}
		return def
	}
	return i
}

func (s *Source) Float(key string, def float64) float64 {
	val, _, ok := s.lookup(key)
	if !ok || val == "" {
		return def
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return def
	}
	return f
}

func (s *Source) Bool(key string, def bool) bool {
	val, _, ok := s.lookup(key)
	if !ok || val == "" {
		return def
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}

// Duration accepts Go duration strings ("15s") or a bare integer of seconds.
func (s *Source) Duration(key string, def time.Duration) time.Duration {
	log := s.logger(key)
	val, _, ok := s.lookup(key)
	if !ok || val == "" {
		return def
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		if log != nil {
			log.Debug("Setting could not be parsed as duration, using default", "providedVal", val, "defaultVal", def, "error", err)
		}
		return def
	}
	return d
}

// List splits a comma separated value, dropping empty entries.
func (s *Source) List(key string, def []string) []string {
	val, _, ok := s.lookup(key)
	if !ok || val == "" {
		return def
	}
	out := make([]string, 0, 4)
	for _, part := range strings.Split(val, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
