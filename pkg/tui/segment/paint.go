// ABOUTME: Paints a toggle.Frame into a grid of terminal cells and encodes it with lipgloss
// ABOUTME: Indicator edges are anti-aliased by cell coverage; icon colors fade toward the cell background

package segment

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mauromedda/segswitch-go/pkg/toggle"
	"github.com/mauromedda/segswitch-go/pkg/tui/internal/pool"
	"github.com/mauromedda/segswitch-go/pkg/tui/theme"
	"github.com/mauromedda/segswitch-go/pkg/tui/width"
)

type rowKind int

const (
	rowTop rowKind = iota
	rowBody
	rowLabel
	rowBottom
)

// cell is one terminal column. An empty text marks the right half of a
// wide grapheme that starts in the previous cell.
type cell struct {
	text    string
	fg, bg  colorful.Color
	bold    bool
	opacity float64 // of the content drawn here; lets brighter rolling content win
}

func (c cell) blank() bool { return c.text == " " }

type grid struct {
	rows  [][]cell
	label int // index of the row carrying icons
}

func rowKinds(g toggle.Geometry, compact bool) []rowKind {
	h := max(int(math.Round(g.Height)), 1)
	if compact {
		h = 1
	}
	bordered := !compact && g.BorderWidth >= 1 && h >= 3
	body := h
	if bordered {
		body = h - 2
	}
	rows := make([]rowKind, 0, h)
	if bordered {
		rows = append(rows, rowTop)
	}
	for i := range body {
		if i == body/2 {
			rows = append(rows, rowLabel)
		} else {
			rows = append(rows, rowBody)
		}
	}
	if bordered {
		rows = append(rows, rowBottom)
	}
	return rows
}

func trackCells(l toggle.Layout) int {
	return max(int(math.Ceil(l.Track.Width-1e-9)), 0)
}

// coverage returns how much of column x the span r covers, in [0,1].
func coverage(r toggle.Rect, x int) float64 {
	if r.Width <= 0 {
		return 0
	}
	lo := math.Max(float64(x), r.Left)
	hi := math.Min(float64(x+1), r.Right())
	return math.Max(0, math.Min(1, hi-lo))
}

func (s *Segment[T]) paint() grid {
	f := s.sw.Frame()
	cfg := s.sw.Config()
	p := s.palette()
	kinds := rowKinds(cfg.Geometry, s.opts.Compact)
	w := trackCells(f.Layout)
	b := int(math.Round(f.Layout.Border))
	ind := f.Indicator.Geometry

	indColor := theme.Color{Color: f.Indicator.Color}
	if f.Inactive {
		indColor = p.Track.Blend(indColor, cfg.InactiveOpacity)
	}
	border := p.Border
	if s.focused {
		border = p.BorderFocused
	}

	g := grid{rows: make([][]cell, len(kinds))}
	for r, k := range kinds {
		row := make([]cell, w)
		for x := range w {
			cov := coverage(ind, x)
			edge := x < b || x >= w-b
			c := cell{text: " ", bg: p.Track.Blend(indColor, cov).Color}
			switch {
			case k == rowTop || k == rowBottom:
				c = borderCell(k, x, w, border, p.Background)
				if f.Style == toggle.StyleDual && !edge && cov >= 0.5 {
					c.text, c.fg = "▄", indColor.Color
					if k == rowBottom {
						c.text = "▀"
					}
				}
			case edge:
				c = cell{text: " ", bg: p.Track.Color}
				if x == 0 || x == w-1 {
					c = cell{text: "│", fg: border.Color, bg: p.Background.Color}
				}
			}
			row[x] = c
		}
		g.rows[r] = row
		if k == rowLabel {
			g.label = r
		}
	}
	if w == 0 || len(f.Icons) == 0 {
		return g
	}

	label := g.rows[g.label]
	s.paintIcons(label, f, cfg, p, ind)
	switch {
	case f.Indicator.Loading:
		clearUnder(label, ind)
		c := int(math.Floor(ind.Center()))
		if c >= 0 && c < w {
			label[c].text = spinnerFrames[s.spinner]
			label[c].fg = p.IconSelected.Color
		}
	case f.Style == toggle.StyleRolling:
		s.paintRolling(label, f, p, ind)
	}
	return g
}

func borderCell(k rowKind, x, w int, border, bg theme.Color) cell {
	left, mid, right := "╭", "─", "╮"
	if k == rowBottom {
		left, right = "╰", "╯"
	}
	t := mid
	switch x {
	case 0:
		t = left
	case w - 1:
		t = right
	}
	return cell{text: t, fg: border.Color, bg: bg.Color}
}

func (s *Segment[T]) paintIcons(row []cell, f toggle.Frame[T], cfg toggle.Config[T], p theme.Palette, ind toggle.Rect) {
	boldAt := (cfg.IconScale + cfg.SelectedIconScale) / 2
	for _, ip := range f.Icons {
		slot := f.Layout.Slots[ip.Index]
		sw := int(math.Floor(slot.Width))
		if sw <= 0 {
			continue
		}
		text := width.Truncate(s.content.text(ip, sw), sw, "…")
		left := int(math.Round(slot.Left)) + (sw-width.VisibleWidth(text))/2
		bold := cfg.SelectedIconScale > cfg.IconScale && ip.Size >= boldAt
		place(row, left, text, func(x int) (colorful.Color, bool) {
			cov := coverage(ind, x)
			base := p.Icon.Blend(p.IconSelected, math.Max(ip.AnimationValue, cov))
			return theme.Color{Color: row[x].bg}.Blend(base, ip.Opacity).Color, true
		}, bold, ip.Opacity)
	}
}

func (s *Segment[T]) paintRolling(row []cell, f toggle.Frame[T], p theme.Palette, ind toggle.Rect) {
	clearUnder(row, ind)
	for _, rc := range f.Indicator.Rolling {
		ip := f.Icons[rc.Index]
		iw := int(math.Floor(ind.Width))
		text := width.Truncate(s.content.text(ip, iw), iw, "")
		centre := ind.Center() + rc.Angle*ind.Width/2
		left := int(math.Round(centre - float64(width.VisibleWidth(text))/2))
		place(row, left, text, func(x int) (colorful.Color, bool) {
			if coverage(ind, x) < 0.5 || (!row[x].blank() && row[x].opacity > rc.Opacity) {
				return colorful.Color{}, false
			}
			return theme.Color{Color: row[x].bg}.Blend(p.IconSelected, rc.Opacity).Color, true
		}, false, rc.Opacity)
	}
}

// clearUnder blanks the cells the indicator mostly covers.
func clearUnder(row []cell, ind toggle.Rect) {
	for x := range row {
		if coverage(ind, x) >= 0.5 {
			blankAt(row, x)
		}
	}
}

// blankAt clears column x along with every other column of the wide
// grapheme it belongs to, so a row never keeps half a grapheme.
func blankAt(row []cell, x int) {
	start := x
	for start > 0 && row[start].text == "" {
		start--
	}
	for k := start; k < len(row) && (k == start || row[k].text == ""); k++ {
		row[k].text = " "
		row[k].opacity = 0
	}
}

// place writes text into row from column left. color decides, per column,
// the foreground and whether the grapheme may be drawn there at all.
func place(row []cell, left int, text string, color func(x int) (colorful.Color, bool), bold bool, opacity float64) {
	x := left
	for _, g := range width.Graphemes(text) {
		if x < 0 || x+g.Width > len(row) {
			x += g.Width
			continue
		}
		fg, ok := color(x)
		if !ok {
			x += g.Width
			continue
		}
		for k := range g.Width {
			blankAt(row, x+k)
		}
		row[x] = cell{text: g.Text, fg: fg, bg: row[x].bg, bold: bold, opacity: opacity}
		for k := 1; k < g.Width; k++ {
			row[x+k].text = ""
		}
		x += g.Width
	}
}

// encode turns the grid into styled lines no wider than maxWidth columns.
func (g grid) encode(r *lipgloss.Renderer, maxWidth int) []string {
	lines := make([]string, len(g.rows))
	for i, row := range g.rows {
		lines[i] = encodeRow(r, row, maxWidth)
	}
	return lines
}

type run struct {
	text   strings.Builder
	fg, bg colorful.Color
	bold   bool
	hasFg  bool
}

func (rn *run) accepts(c cell) bool {
	if c.bg != rn.bg {
		return false
	}
	return c.blank() || !rn.hasFg || (c.fg == rn.fg && c.bold == rn.bold)
}

func (rn *run) render(r *lipgloss.Renderer) string {
	st := r.NewStyle().Background(lipgloss.Color(rn.bg.Hex()))
	if rn.hasFg {
		st = st.Foreground(lipgloss.Color(rn.fg.Hex())).Bold(rn.bold)
	}
	return st.Render(rn.text.String())
}

func encodeRow(r *lipgloss.Renderer, row []cell, maxWidth int) string {
	limit := min(len(row), maxWidth)
	out := pool.GetStringBuilder()
	defer pool.PutStringBuilder(out)
	var cur *run
	for x := 0; x < limit; x++ {
		c := row[x]
		if c.text == "" {
			continue
		}
		// A wide grapheme cut by the limit becomes a space.
		if x+1 == limit && x+1 < len(row) && row[x+1].text == "" {
			c.text = " "
		}
		if cur == nil || !cur.accepts(c) {
			if cur != nil {
				out.WriteString(cur.render(r))
			}
			cur = &run{bg: c.bg}
		}
		if !c.blank() && !cur.hasFg {
			cur.fg, cur.bold, cur.hasFg = c.fg, c.bold, true
		}
		cur.text.WriteString(c.text)
	}
	if cur != nil {
		out.WriteString(cur.render(r))
	}
	return out.String()
}
