// ABOUTME: Environment handling for settings: SEGSWITCH_* overrides and ${VAR} expansion
// ABOUTME: Overrides beat both config files; unset vars in ${VAR} patterns become empty

package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/mauromedda/segswitch-go/internal/log"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SEGSWITCH_"

var envVarPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// ApplyEnv overrides s from SEGSWITCH_* variables read through getenv.
// SEGSWITCH_VALUES is a comma-separated list.
func ApplyEnv(s *Settings, getenv func(string) string) {
	get := func(name string) string { return strings.TrimSpace(getenv(EnvPrefix + name)) }

	if v := get("VALUES"); v != "" {
		s.Values = splitList(v)
	}
	overrideString(&s.Current, get("CURRENT"))
	overrideString(&s.Style, get("STYLE"))
	overrideString(&s.Curve, get("CURVE"))
	overrideString(&s.Duration, get("DURATION"))
	overrideString(&s.Direction, get("DIRECTION"))
	overrideString(&s.Theme, get("THEME"))
	overrideString(&s.Engine, get("ENGINE"))
	overrideString(&s.LogLevel, get("LOG_LEVEL"))
	overrideString(&s.LogFile, get("LOG_FILE"))
	if v := get("FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil {
			log.Warn("config: ignoring %sFPS=%q: %v", EnvPrefix, v, err)
		} else {
			s.FPS = fps
		}
	}
	if v := get("MOUSE"); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			log.Warn("config: ignoring %sMOUSE=%q: %v", EnvPrefix, v, err)
		} else {
			s.Mouse = &on
		}
	}
}

// ResolveEnvVars expands ${VAR} patterns in the string fields of s.
func ResolveEnvVars(s *Settings) {
	for i, v := range s.Values {
		s.Values[i] = expandEnv(v)
	}
	s.Current = expandEnv(s.Current)
	s.Theme = expandEnv(s.Theme)
	s.LogFile = expandEnv(s.LogFile)
}

// splitList splits a comma-separated list, dropping empty entries.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// expandEnv replaces ${VAR} with os.Getenv(VAR). Unset vars become "".
func expandEnv(s string) string {
	if s == "" {
		return s
	}
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}
