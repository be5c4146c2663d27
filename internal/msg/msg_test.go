package msg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormal(t *testing.T) {
	m := Normal(Plain("the rat"), Bold("squeaks"))

	assert.Equal(t, KindDisplay, m.Kind)
	assert.Equal(t, ImportanceNormal, m.Importance)
	assert.False(t, m.Hidden)
	assert.Equal(t, "the rat squeaks", m.String())
}

func TestTextHelpers(t *testing.T) {
	assert.True(t, Bold("x").Bold)
	assert.False(t, Bold("x").Italic)
	assert.True(t, Italic("x").Italic)
	assert.Equal(t, Text{Body: "x"}, Plain("x"))

	c := Colored(Named(ColorGreen), "moss")
	assert.Equal(t, ColorGreen, c.Color.Name)
	assert.Equal(t, "moss", c.Body)
}

func TestColor(t *testing.T) {
	assert.True(t, Color{}.IsDefault(), "zero value is the terminal default")
	assert.False(t, Named(ColorBlue).IsDefault())

	c := Rgb(12, 200, 7)
	assert.Equal(t, ColorRGB, c.Name)
	assert.Equal(t, uint8(200), c.G)
}

func TestParseImportance(t *testing.T) {
	cases := map[string]Importance{
		"hidden":    ImportanceHidden,
		"verbose":   ImportanceVerbose,
		"low":       ImportanceLow,
		"normal":    ImportanceNormal,
		"high":      ImportanceHigh,
		"veryhigh":  ImportanceVeryHigh,
		"very_high": ImportanceVeryHigh,
		"nonsense":  ImportanceNormal,
		"":          ImportanceNormal,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseImportance(in), "input %q", in)
	}
}

func TestMessageStringEmpty(t *testing.T) {
	assert.Equal(t, "", Message{}.String())
}
