// ABOUTME: Keyboard and mouse handling for Segment: arrows, cycling, jump-to-value and drag
// ABOUTME: Raw input is split into events and parsed with the key package before dispatch

package segment

import (
	"unicode/utf8"

	"github.com/mauromedda/segswitch-go/internal/log"
	"github.com/mauromedda/segswitch-go/pkg/tui/fuzzy"
	"github.com/mauromedda/segswitch-go/pkg/tui/key"
)

// SetOrigin sets the screen cell of the track's top-left corner, used to
// translate raw mouse coordinates.
func (s *Segment[T]) SetOrigin(x, y int) {
	s.originX, s.originY = x, y
}

// HandleInput implements tui.InputHandler. It reports whether any event in
// data was consumed.
func (s *Segment[T]) HandleInput(data string) bool {
	handled := false
	for _, ev := range key.Split(data) {
		if m, ok := key.ParseMouse(ev); ok {
			m.X -= s.originX
			m.Y -= s.originY
			handled = s.HandleMouse(m) || handled
			continue
		}
		if key.IsMouse(ev) {
			continue
		}
		handled = s.HandleKey(key.ParseKey(ev)) || handled
	}
	return handled
}

// HandleKey applies one key press. Arrows follow the visual direction of the
// track, so Right moves toward lower indices when the track runs right to left.
func (s *Segment[T]) HandleKey(k key.Key) bool {
	n := len(s.sw.Values())
	if n == 0 {
		return false
	}
	dir := int(s.sw.Config().Direction.Sign())

	switch k.Type {
	case key.KeyRight:
		s.step(dir)
	case key.KeyLeft:
		s.step(-dir)
	case key.KeyHome:
		s.selectIndex(0)
	case key.KeyEnd:
		s.selectIndex(n - 1)
	case key.KeyTab:
		s.selectIndex((s.sw.CurrentIndex() + 1) % n)
	case key.KeyBackTab:
		s.selectIndex((s.sw.CurrentIndex() + n - 1) % n)
	case key.KeyBackspace:
		if s.query == "" {
			return false
		}
		_, size := utf8.DecodeLastRuneInString(s.query)
		s.query = s.query[:len(s.query)-size]
		s.sinceKey = 0
		s.jump()
	case key.KeyEscape:
		if s.query == "" {
			return false
		}
		s.query = ""
	case key.KeyRune:
		if k.Ctrl || k.Alt {
			return false
		}
		if k.Rune == ' ' && s.query == "" {
			s.selectIndex((s.sw.CurrentIndex() + 1) % n)
			return true
		}
		s.query += string(k.Rune)
		s.sinceKey = 0
		s.jump()
	default:
		return false
	}
	s.Invalidate()
	return true
}

// HandleMouse applies one pointer event with coordinates relative to the
// track origin. A press and release without motion selects the slot under the
// pointer; motion while pressed drags the indicator.
func (s *Segment[T]) HandleMouse(m key.Mouse) bool {
	inside := m.X >= 0 && m.X < s.Width() && m.Y >= 0 && m.Y < s.Height()

	switch m.Action {
	case key.MousePress:
		if !inside {
			return false
		}
		s.pressed, s.pressX, s.lastX = true, m.X, m.X
		return true
	case key.MouseMotion:
		if !s.pressed {
			return false
		}
		if !s.sw.Dragging() {
			if m.X == s.pressX {
				return true
			}
			s.sw.DragStart()
			log.Debug("segment: drag start at x=%d", s.pressX)
		}
		s.sw.DragBy(float64(m.X - s.lastX))
		s.lastX = m.X
		s.Invalidate()
		return true
	case key.MouseRelease:
		if !s.pressed {
			return false
		}
		s.pressed = false
		if s.sw.Dragging() {
			v, changed := s.sw.DragEnd()
			s.Invalidate()
			if changed {
				s.changed(v)
			}
			return true
		}
		if i, ok := s.sw.Layout().SlotAt(float64(m.X) + 0.5); ok && inside {
			s.selectIndex(i)
		}
		return true
	case key.MouseWheelUp:
		if !inside {
			return false
		}
		s.step(-1)
		return true
	case key.MouseWheelDown:
		if !inside {
			return false
		}
		s.step(1)
		return true
	}
	return false
}

func (s *Segment[T]) step(delta int) {
	if v, changed := s.sw.Step(delta); changed {
		s.changed(v)
	}
}

func (s *Segment[T]) selectIndex(i int) {
	if i == s.sw.CurrentIndex() {
		return
	}
	if err := s.sw.SelectIndex(i); err != nil {
		log.Warn("segment: %v", err)
		return
	}
	s.changed(s.sw.Current())
}

// jump selects the value whose label best matches the pending query.
func (s *Segment[T]) jump() {
	i, ok := fuzzy.Best(s.query, fuzzy.Labels[T]{Values: s.sw.Values(), Label: s.content.label})
	if !ok {
		s.lastMatch = -1
		return
	}
	s.lastMatch = i
	s.selectIndex(i)
}

// LastMatch returns the index selected by the most recent query, or -1.
func (s *Segment[T]) LastMatch() int { return s.lastMatch }
