package measurement

import (
	"fmt"
	"strings"

	"github.com/philipparndt/biondi/pkg/geometry"
)

// Tool identifies the instrument that receives pointer events
type Tool int

const (
	ToolDistance Tool = iota // Ringer: two-point distance probe
	ToolLength               // Ringer: polyline length
	ToolAngle                // Angler: angle tracker
	ToolProng1               // Angler: first prong polyline
	ToolProng2               // Angler: second prong polyline
)

var toolNames = map[Tool]string{
	ToolDistance: "distance",
	ToolLength:   "length",
	ToolAngle:    "angle",
	ToolProng1:   "prong1",
	ToolProng2:   "prong2",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tool(%d)", int(t))
}

// ParseTool returns the tool with the given name
func ParseTool(name string) (Tool, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for tool, n := range toolNames {
		if n == name {
			return tool, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownTool)
}

// Kind identifies the instrument a session is built around
type Kind int

const (
	KindRinger Kind = iota
	KindAngler
)

func (k Kind) String() string {
	switch k {
	case KindRinger:
		return "ringer"
	case KindAngler:
		return "angler"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind returns the session kind with the given name
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "ringer":
		return KindRinger, nil
	case "angler":
		return KindAngler, nil
	}
	return 0, fmt.Errorf("unknown instrument %q", name)
}

// Tools lists the instruments of a session kind, default tool first
func Tools(kind Kind) []Tool {
	switch kind {
	case KindRinger:
		return []Tool{ToolDistance, ToolLength}
	case KindAngler:
		return []Tool{ToolAngle, ToolProng1, ToolProng2}
	}
	return nil
}

// Reading is the live value of the active instrument after a pointer move.
// Valid is false when the instrument has nothing to show yet.
type Reading struct {
	Tool  Tool
	Value float64
	Valid bool
}

// Result is the output of a successfully finalized session
type Result interface {
	Kind() Kind
}

// RingerResult holds the derived values of a Ringer session
type RingerResult struct {
	Distance float64 // two-point distance
	Length   float64 // polyline length
	LogRatio float64 // log10(Length / Distance)
}

// Kind implements Result
func (RingerResult) Kind() Kind { return KindRinger }

// AnglerResult holds the derived values of an Angler session
type AnglerResult struct {
	Angle        float64 // unwrapped angle in degrees, 4 decimals
	Prong1Length float64
	Prong2Length float64
}

// Kind implements Result
func (AnglerResult) Kind() Kind { return KindAngler }

// Session is a measurement tool window's state machine.
// A session is owned by a single event stream and is not safe for concurrent use.
type Session interface {
	Kind() Kind
	Tool() Tool
	SetTool(tool Tool) error
	Click(p geometry.Point) error
	Move(p geometry.Point) (Reading, error)
	Reset(tool Tool) error
	ClearAll()
	Finalize() (Result, error)
}

// NewSession creates an empty session of the given kind
func NewSession(kind Kind) (Session, error) {
	switch kind {
	case KindRinger:
		return NewRingerSession(), nil
	case KindAngler:
		return NewAnglerSession(), nil
	}
	return nil, fmt.Errorf("unknown instrument %v", kind)
}
