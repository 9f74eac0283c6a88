package tui

import (
	"strconv"
	"strings"

	"homeprice/internal/anim"
	"homeprice/internal/form"
)

const (
	confettiRows = 6
	// pixelsPerColumn converts particle drift to terminal columns.
	pixelsPerColumn = 8.0
	rangeBarWidth   = 24
)

var confettiGlyphs = []rune{'▪', '◆', '●', '▲'}

func itoa(n int) string { return strconv.Itoa(n) }

func rangeHint(f form.Field) string {
	return strconv.FormatFloat(f.Min, 'f', -1, 64) + "–" + strconv.FormatFloat(f.Max, 'f', -1, 64)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("House price estimate"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	if m.toast != nil {
		b.WriteString(m.renderToast())
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(helpLine()))
	return b.String()
}

// body is the scrollable content: the form, the submit control, and the
// result view once a prediction has succeeded.
func (m Model) body() string {
	var b strings.Builder
	for i, f := range form.Fields {
		b.WriteString(m.renderField(i, f))
		b.WriteString("\n")
	}
	b.WriteString(m.renderButton())
	if m.result != nil {
		b.WriteString("\n")
		if c := m.renderConfetti(); c != "" {
			b.WriteString(c)
			b.WriteString("\n")
		}
		b.WriteString(m.renderResult())
	}
	return b.String()
}

func (m Model) renderField(i int, f form.Field) string {
	focused := i == m.focus
	label := labelStyle.Render(f.Label)
	if focused {
		label = focusedLabelStyle.Render(f.Label)
	}
	if f.Widget == form.WidgetSelect {
		text, _ := f.OptionLabel(m.form.Value(f.Key))
		if focused {
			return label + focusedSelectStyle.Render("‹ "+text+" ›")
		}
		return label + selectStyle.Render("  "+text)
	}
	line := label + m.inputs[i].View()
	switch m.form.Feedback(f.Key) {
	case form.FeedbackInRange:
		line += " " + inRangeStyle.Render("✓")
	case form.FeedbackOutOfRange:
		line += " " + outOfRangeStyle.Render("! "+rangeHint(f))
	}
	return line
}

func (m Model) renderButton() string {
	if m.submitting {
		return disabledButtonStyle.Render(m.spinner.View() + " Predicting…")
	}
	if m.focus == len(form.Fields) {
		return focusedButtonStyle.Render("Predict price")
	}
	return buttonStyle.Render("Predict price")
}

func (m Model) renderResult() string {
	r := m.result
	el := m.now.Sub(r.start)
	lines := []string{
		mutedStyle.Render("Estimated price"),
		priceStyle.Render(r.lakhs.Text(el)),
		subPriceStyle.Render(r.crores.Text(el)),
		"",
		mutedStyle.Render("Confidence range"),
		"₹ " + anim.Fixed2(r.resp.ConfidenceLower) + " L " +
			rangeFillStyle.Render(strings.Repeat("█", rangeBarWidth)) +
			" ₹ " + anim.Fixed2(r.resp.ConfidenceUpper) + " L",
		"",
		mutedStyle.Render("Features used ") + itoa(r.resp.FeaturesUsed),
	}
	if r.resp.ModelAccuracy != "" {
		lines = append(lines, mutedStyle.Render("Model accuracy ")+r.resp.ModelAccuracy)
	}
	return resultBoxStyle.Render(strings.Join(lines, "\n"))
}

type confettiCell struct {
	glyph rune
	color string
}

// renderConfetti draws the live particles on a small canvas above the
// result. It is empty once every particle has finished.
func (m Model) renderConfetti() string {
	frames := m.result.burst.Frames(m.now.Sub(m.result.start))
	if len(frames) == 0 {
		return ""
	}
	width := max(m.viewport.Width, 10)
	grid := make([][]confettiCell, confettiRows)
	for i := range grid {
		grid[i] = make([]confettiCell, width)
	}
	for _, f := range frames {
		col := int(f.Left*float64(width-1) + f.OffsetX/pixelsPerColumn)
		row := int(f.Fall * float64(confettiRows-1))
		if col < 0 || col >= width || row < 0 || row >= confettiRows {
			continue
		}
		g := confettiGlyphs[int(f.Rotation/90)%len(confettiGlyphs)]
		if f.Opacity < 0.3 {
			g = '·'
		}
		grid[row][col] = confettiCell{glyph: g, color: f.Color}
	}
	rows := make([]string, confettiRows)
	for i, line := range grid {
		var b strings.Builder
		for _, c := range line {
			if c.glyph == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(confettiStyles[c.color].Render(string(c.glyph)))
		}
		rows[i] = strings.TrimRight(b.String(), " ")
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderToast() string {
	t := m.toast
	content := toastTitleStyle.Render(t.Title) + "\n" + t.Message
	if t.Phase(m.now) == anim.ToastLeaving {
		return toastLeavingStyle.Render(content)
	}
	return toastStyle.Render(content)
}
