// ABOUTME: Headless print mode: replays one selection change and emits evenly spaced frames
// ABOUTME: Text, JSON and stream-JSON formatters; frames come from the same segment renderer

package print

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/mauromedda/segswitch-go/pkg/toggle"
	"github.com/mauromedda/segswitch-go/pkg/tui/segment"
)

// DefaultFrames is the sample count used when Config.Frames is not positive.
const DefaultFrames = 5

// ErrUnknownFormat is returned for an OutputFormat other than text, json or stream-json.
var ErrUnknownFormat = errors.New("unknown output format")

// Config configures headless execution.
type Config struct {
	OutputFormat string // "text" (default), "json", "stream-json"
	To           string // target value; empty selects the next value, wrapping
	Frames       int    // samples from the start to the end of the transition
	Width        int    // text render width; 0 uses the switch's own width
}

// Run selects cfg.To on seg, starting from its current value, and writes
// cfg.Frames frames spread evenly over the transition to w. Frame 0 is the
// start and the last frame the settled state.
func Run(ctx context.Context, cfg Config, seg *segment.Segment[string], w io.Writer) error {
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "text"
	}
	if cfg.Frames <= 0 {
		cfg.Frames = DefaultFrames
	}
	f, err := newFormatter(cfg.OutputFormat, w)
	if err != nil {
		return err
	}

	sw := seg.Switch()
	from := sw.Current()
	to := cfg.To
	if to == "" {
		to = nextValue(sw.Values(), sw.CurrentIndex())
	}
	if err := seg.SetCurrent(to); err != nil {
		return fmt.Errorf("selecting %q: %w", to, err)
	}

	span := transitionSpan(sw.Config())
	width := cfg.Width
	if width <= 0 {
		width = seg.Width()
	}

	if err := f.start(from, to, cfg.Frames); err != nil {
		return err
	}
	var elapsed time.Duration
	for i := range cfg.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		at := sampleTime(span, i, cfg.Frames)
		if dt := at - elapsed; dt > 0 {
			seg.Tick(dt)
			elapsed = at
		}
		s := sample{
			index: i,
			at:    at,
			frame: sw.Frame(),
			lines: seg.Lines(width),
		}
		if err := f.frame(s); err != nil {
			return err
		}
	}
	return f.end()
}

// transitionSpan is the time until every timeline of cfg has finished.
func transitionSpan(cfg toggle.Config[string]) time.Duration {
	return max(cfg.Duration, cfg.IconDuration)
}

// sampleTime places frame i of n evenly over span. A single frame shows
// the settled state.
func sampleTime(span time.Duration, i, n int) time.Duration {
	if n <= 1 {
		return span
	}
	return span * time.Duration(i) / time.Duration(n-1)
}

func nextValue(values []string, i int) string {
	if len(values) == 0 {
		return ""
	}
	return values[(i+1)%len(values)]
}

// sample is one rendered instant of the transition.
type sample struct {
	index int
	at    time.Duration
	frame toggle.Frame[string]
	lines []string
}

// formatter abstracts output formatting.
type formatter interface {
	start(from, to string, frames int) error
	frame(s sample) error
	end() error
}

func newFormatter(format string, w io.Writer) (formatter, error) {
	switch format {
	case "text":
		return &textFormatter{w: w}, nil
	case "json":
		return &jsonFormatter{w: w}, nil
	case "stream-json":
		return &streamJSONFormatter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// textFormatter writes a header line and the rendered rows for each frame.
type textFormatter struct {
	w      io.Writer
	frames int
}

func (f *textFormatter) start(_, _ string, frames int) error {
	f.frames = frames
	return nil
}

func (f *textFormatter) frame(s sample) error {
	if s.index > 0 {
		if _, err := fmt.Fprintln(f.w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(f.w, "frame %d/%d t=%dms pos=%.2f\n",
		s.index+1, f.frames, s.at.Milliseconds(), s.frame.Position.Value())
	if err != nil {
		return err
	}
	for _, l := range s.lines {
		if _, err := fmt.Fprintln(f.w, l); err != nil {
			return err
		}
	}
	return nil
}

func (f *textFormatter) end() error { return nil }

type jsonIcon struct {
	Value          string  `json:"value"`
	AnimationValue float64 `json:"animation_value"`
	Size           float64 `json:"size"`
	Opacity        float64 `json:"opacity"`
	Foreground     bool    `json:"foreground,omitempty"`
	Selected       bool    `json:"selected,omitempty"`
}

type jsonRolling struct {
	Value   string  `json:"value"`
	Opacity float64 `json:"opacity"`
	Angle   float64 `json:"angle"`
	Upper   bool    `json:"upper,omitempty"`
}

type jsonIndicator struct {
	Left    float64       `json:"left"`
	Width   float64       `json:"width"`
	Color   string        `json:"color"`
	Rolling []jsonRolling `json:"rolling,omitempty"`
	Loading bool          `json:"loading,omitempty"`
}

type jsonFrame struct {
	Index     int           `json:"index"`
	TimeMS    int64         `json:"t_ms"`
	Position  float64       `json:"position"`
	Current   string        `json:"current"`
	Indicator jsonIndicator `json:"indicator"`
	Icons     []jsonIcon    `json:"icons"`
	Lines     []string      `json:"lines"`
}

func toJSONFrame(s sample) jsonFrame {
	f := s.frame
	out := jsonFrame{
		Index:    s.index,
		TimeMS:   s.at.Milliseconds(),
		Position: f.Position.Value(),
		Current:  f.Current,
		Indicator: jsonIndicator{
			Left:    f.Indicator.Geometry.Left,
			Width:   f.Indicator.Geometry.Width,
			Color:   f.Indicator.Color.Hex(),
			Loading: f.Indicator.Loading,
		},
		Icons: make([]jsonIcon, 0, len(f.Icons)),
		Lines: s.lines,
	}
	for _, ic := range f.Icons {
		out.Icons = append(out.Icons, jsonIcon{
			Value:          ic.Value,
			AnimationValue: ic.AnimationValue,
			Size:           ic.Size,
			Opacity:        ic.Opacity,
			Foreground:     ic.Foreground,
			Selected:       ic.Selected,
		})
	}
	for _, r := range f.Indicator.Rolling {
		out.Indicator.Rolling = append(out.Indicator.Rolling, jsonRolling{
			Value:   r.Value,
			Opacity: r.Opacity,
			Angle:   r.Angle,
			Upper:   r.Upper,
		})
	}
	return out
}

// jsonFormatter collects all frames and writes a single JSON object at the end.
type jsonFormatter struct {
	w   io.Writer
	out jsonOutput
}

type jsonOutput struct {
	From   string      `json:"from"`
	To     string      `json:"to"`
	Frames []jsonFrame `json:"frames"`
}

func (f *jsonFormatter) start(from, to string, frames int) error {
	f.out = jsonOutput{From: from, To: to, Frames: make([]jsonFrame, 0, frames)}
	return nil
}

func (f *jsonFormatter) frame(s sample) error {
	f.out.Frames = append(f.out.Frames, toJSONFrame(s))
	return nil
}

func (f *jsonFormatter) end() error {
	data, err := json.Marshal(f.out)
	if err != nil {
		return fmt.Errorf("encoding frames: %w", err)
	}
	_, err = fmt.Fprintln(f.w, string(data))
	return err
}

// streamJSONFormatter outputs one JSON line per event.
type streamJSONFormatter struct {
	enc *json.Encoder
}

type streamEvent struct {
	Type   string     `json:"type"`
	From   string     `json:"from,omitempty"`
	To     string     `json:"to,omitempty"`
	Frames int        `json:"frames,omitempty"`
	Frame  *jsonFrame `json:"frame,omitempty"`
}

func (f *streamJSONFormatter) start(from, to string, frames int) error {
	return f.enc.Encode(streamEvent{Type: "start", From: from, To: to, Frames: frames})
}

func (f *streamJSONFormatter) frame(s sample) error {
	jf := toJSONFrame(s)
	return f.enc.Encode(streamEvent{Type: "frame", Frame: &jf})
}

func (f *streamJSONFormatter) end() error {
	return f.enc.Encode(streamEvent{Type: "end"})
}
