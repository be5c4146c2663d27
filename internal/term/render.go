package term

import (
	"fmt"
	"strings"

	"github.com/duskmire/server/internal/msg"
)

// Renderer turns messages into ANSI-styled terminal lines with a tick gutter.
type Renderer struct {
	Min     msg.Importance // messages below this are skipped
	NoColor bool           // strip all styling (plain text for pipes)
}

// NewRenderer returns a renderer printing messages at or above min.
func NewRenderer(min msg.Importance) *Renderer {
	return &Renderer{Min: min}
}

// Line formats one message. ok is false when the message is hidden or below
// the importance threshold and should not be printed.
func (r *Renderer) Line(tick uint64, m msg.Message) (line string, ok bool) {
	if m.Hidden || m.Importance < r.Min {
		return "", false
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%8d  ", tick)
	for i, t := range m.Contents {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r.NoColor {
			b.WriteString(t.Body)
			continue
		}
		b.WriteString(styled(t))
	}
	return b.String(), true
}

// styled wraps a segment's body in its SGR sequence, if it has any styling.
func styled(t msg.Text) string {
	var params []string
	if t.Bold {
		params = append(params, "1")
	}
	if t.Italic {
		params = append(params, "3")
	}
	if !t.Color.IsDefault() {
		params = append(params, colorSGR(t.Color, false))
	}
	if !t.Background.IsDefault() {
		params = append(params, colorSGR(t.Background, true))
	}
	if len(params) == 0 {
		return t.Body
	}
	return "\x1b[" + strings.Join(params, ";") + "m" + t.Body + "\x1b[0m"
}

// colorSGR maps a color to its SGR parameter string. background selects the
// 48;... form instead of 38;...
func colorSGR(c msg.Color, background bool) string {
	base := "38"
	if background {
		base = "48"
	}
	if c.Name == msg.ColorRGB {
		return fmt.Sprintf("%s;2;%d;%d;%d", base, c.R, c.G, c.B)
	}
	code, ok := palette[c.Name]
	if !ok {
		if background {
			return "49"
		}
		return "39"
	}
	return fmt.Sprintf("%s;5;%d", base, code)
}

// palette maps named colors onto the xterm 256-color cube.
var palette = map[msg.ColorName]int{
	msg.ColorWhite:  15,
	msg.ColorGray:   245,
	msg.ColorBlack:  0,
	msg.ColorRed:    196,
	msg.ColorOrange: 208,
	msg.ColorYellow: 226,
	msg.ColorGreen:  40,
	msg.ColorPink:   213,
	msg.ColorBlue:   33,
}
