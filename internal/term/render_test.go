package term

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duskmire/server/internal/msg"
)

func TestRendererFiltersByImportance(t *testing.T) {
	r := NewRenderer(msg.ImportanceNormal)

	_, ok := r.Line(1, msg.Debug(msg.Plain("noise")))
	assert.False(t, ok, "verbose message below normal threshold")

	_, ok = r.Line(1, msg.Normal(msg.Plain("signal")))
	assert.True(t, ok)
}

func TestRendererSkipsHidden(t *testing.T) {
	r := NewRenderer(msg.ImportanceHidden)
	m := msg.Normal(msg.Plain("secret"))
	m.Hidden = true
	_, ok := r.Line(1, m)
	assert.False(t, ok)
}

func TestRendererPlainSegments(t *testing.T) {
	r := NewRenderer(msg.ImportanceHidden)
	line, ok := r.Line(42, msg.Normal(msg.Plain("the rat"), msg.Plain("squeaks")))
	require.True(t, ok)
	assert.Equal(t, "      42  the rat squeaks", line)
}

func TestRendererStyling(t *testing.T) {
	r := NewRenderer(msg.ImportanceHidden)

	line, ok := r.Line(0, msg.Normal(msg.Bold("Orc")))
	require.True(t, ok)
	assert.Contains(t, line, "\x1b[1mOrc\x1b[0m")

	line, _ = r.Line(0, msg.Normal(msg.Italic("whisper")))
	assert.Contains(t, line, "\x1b[3mwhisper\x1b[0m")

	line, _ = r.Line(0, msg.Normal(msg.Colored(msg.Named(msg.ColorRed), "7")))
	assert.Contains(t, line, "\x1b[38;5;196m7\x1b[0m")

	line, _ = r.Line(0, msg.Normal(msg.Colored(msg.Rgb(1, 2, 3), "x")))
	assert.Contains(t, line, "\x1b[38;2;1;2;3mx\x1b[0m")
}

func TestRendererBackgroundColor(t *testing.T) {
	r := NewRenderer(msg.ImportanceHidden)
	m := msg.Normal(msg.Text{Body: "warn", Background: msg.Named(msg.ColorYellow)})
	line, ok := r.Line(0, m)
	require.True(t, ok)
	assert.Contains(t, line, "\x1b[48;5;226mwarn\x1b[0m")
}

func TestRendererNoColor(t *testing.T) {
	r := NewRenderer(msg.ImportanceHidden)
	r.NoColor = true
	line, ok := r.Line(3, msg.Normal(msg.Bold("Orc"), msg.Colored(msg.Named(msg.ColorRed), "dies.")))
	require.True(t, ok)
	assert.Equal(t, "       3  Orc dies.", line)
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 0, DisplayWidth(""))
	assert.Equal(t, 5, DisplayWidth("hello"))
	assert.Equal(t, 4, DisplayWidth("天堂"), "CJK runes occupy two columns")
	assert.Equal(t, 7, DisplayWidth("a天堂bc"))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "天堂 ", Pad("天堂", 5))
	assert.Equal(t, "toolong", Pad("toolong", 3))
}
