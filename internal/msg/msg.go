package msg

import "strings"

// Kind classifies what a message is for.
type Kind int

const (
	KindDisplay Kind = iota // shown to the player
	KindDebug
	KindWarning
	KindError
)

// Importance ranks how prominently a message should be surfaced.
// Renderers may drop anything below their configured threshold.
type Importance int

const (
	ImportanceHidden Importance = iota
	ImportanceVerbose
	ImportanceLow
	ImportanceNormal
	ImportanceHigh
	ImportanceVeryHigh
)

// ParseImportance maps a config string onto an Importance level.
// Unknown values fall back to ImportanceNormal.
func ParseImportance(s string) Importance {
	switch s {
	case "hidden":
		return ImportanceHidden
	case "verbose":
		return ImportanceVerbose
	case "low":
		return ImportanceLow
	case "normal":
		return ImportanceNormal
	case "high":
		return ImportanceHigh
	case "veryhigh", "very_high":
		return ImportanceVeryHigh
	}
	return ImportanceNormal
}

// Message is one log line emitted by the simulation: a kind, an importance,
// and an ordered run of styled text segments. Messages are plain values with
// no behavior beyond formatting; routing them is the caller's job.
type Message struct {
	Kind       Kind
	Importance Importance
	Hidden     bool
	Contents   []Text
}

// Text is a single styled segment within a message.
type Text struct {
	Bold       bool
	Italic     bool
	Color      Color
	Background Color
	Body       string
}

// Normal builds a display message of normal importance.
func Normal(contents ...Text) Message {
	return Message{
		Kind:       KindDisplay,
		Importance: ImportanceNormal,
		Contents:   contents,
	}
}

// Debug builds a debug message of verbose importance.
func Debug(contents ...Text) Message {
	return Message{
		Kind:       KindDebug,
		Importance: ImportanceVerbose,
		Contents:   contents,
	}
}

// Warning builds a warning message of high importance.
func Warning(contents ...Text) Message {
	return Message{
		Kind:       KindWarning,
		Importance: ImportanceHigh,
		Contents:   contents,
	}
}

// Plain returns an unstyled text segment.
func Plain(body string) Text {
	return Text{Body: body}
}

// Bold returns a bold text segment.
func Bold(body string) Text {
	return Text{Bold: true, Body: body}
}

// Italic returns an italic text segment.
func Italic(body string) Text {
	return Text{Italic: true, Body: body}
}

// Colored returns a text segment with a foreground color.
func Colored(c Color, body string) Text {
	return Text{Color: c, Body: body}
}

// String joins the segment bodies with single spaces, dropping styling.
// Used for debug output, plaintext sinks, and tests.
func (m Message) String() string {
	parts := make([]string, len(m.Contents))
	for i, t := range m.Contents {
		parts[i] = t.Body
	}
	return strings.Join(parts, " ")
}

func (t Text) String() string { return t.Body }
