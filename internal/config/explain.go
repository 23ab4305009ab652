// ABOUTME: Markdown rendering of effective configuration
// ABOUTME: Used by the --explain-config flag to show merged settings and where they were read from

package config

import (
	"fmt"
	"os"
	"strings"
)

// Explain renders a markdown summary of the effective settings. Only non-zero
// values are listed.
func Explain(s *Settings, files []string) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("## Files\n\n")
	for _, f := range files {
		state := "missing"
		if _, err := os.Stat(f); err == nil {
			state = "loaded"
		}
		fmt.Fprintf(&b, "- `%s` (%s)\n", f, state)
	}
	b.WriteString("\n")

	b.WriteString("## Switch\n\n")
	if len(s.Values) > 0 {
		fmt.Fprintf(&b, "- **Values:** %s\n", strings.Join(s.Values, ", "))
	}
	line(&b, "Current", s.Current)
	line(&b, "Style", s.Style)
	line(&b, "Direction", s.Direction)
	line(&b, "Fitting", s.Fitting)
	number(&b, "FitWidth", s.FitWidth)
	number(&b, "FitHeight", s.FitHeight)
	b.WriteString("\n")

	b.WriteString("## Animation\n\n")
	line(&b, "Curve", s.Curve)
	line(&b, "Duration", s.Duration)
	line(&b, "IconCurve", s.IconCurve)
	line(&b, "IconDuration", s.IconDuration)
	line(&b, "Icons", s.IconAnimation)
	line(&b, "Indicator", s.IndicatorAnimation)
	b.WriteString("\n")

	b.WriteString("## Geometry\n\n")
	if g := s.Geometry; g != nil {
		setNumber(&b, "SlotWidth", g.SlotWidth)
		setNumber(&b, "Spacing", g.Spacing)
		setNumber(&b, "Border", g.BorderWidth)
		setNumber(&b, "Indicator", g.IndicatorWidth)
		setNumber(&b, "Height", g.Height)
	}
	b.WriteString("\n")

	b.WriteString("## Terminal\n\n")
	line(&b, "Theme", s.Theme)
	line(&b, "Engine", s.Engine)
	if s.FPS != 0 {
		fmt.Fprintf(&b, "- **FPS:** %d\n", s.FPS)
	}
	if s.Compact {
		b.WriteString("- **Compact:** true\n")
	}
	fmt.Fprintf(&b, "- **Mouse:** %v\n", s.MouseEnabled())
	line(&b, "LogLevel", s.LogLevel)
	line(&b, "LogFile", s.LogFile)

	return b.String()
}

func line(b *strings.Builder, name, v string) {
	if v != "" {
		fmt.Fprintf(b, "- **%s:** %s\n", name, v)
	}
}

func number(b *strings.Builder, name string, v float64) {
	if v != 0 {
		fmt.Fprintf(b, "- **%s:** %g\n", name, v)
	}
}

func setNumber(b *strings.Builder, name string, v *float64) {
	if v != nil {
		fmt.Fprintf(b, "- **%s:** %g\n", name, *v)
	}
}
