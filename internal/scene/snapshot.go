package scene

import "fmt"

// Kind is the category a parameter belongs to. Ordering is the send order:
// channels first, then buses, then the main stereo bus.
type Kind uint8

const (
	KindChannel Kind = iota
	KindBus
	KindMain
)

func (k Kind) String() string {
	switch k {
	case KindChannel:
		return "ch"
	case KindBus:
		return "bus"
	case KindMain:
		return "main"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Param identifies one controllable parameter of an entity. Ordering is the
// per-entity send order: mute state goes out before level changes so a
// muted channel never pops audibly at its new level.
type Param uint8

const (
	ParamOn Param = iota
	ParamFader
	ParamPan
	ParamName
)

func (p Param) String() string {
	switch p {
	case ParamOn:
		return "on"
	case ParamFader:
		return "fader"
	case ParamPan:
		return "pan"
	case ParamName:
		return "name"
	default:
		return fmt.Sprintf("param(%d)", uint8(p))
	}
}

// Key addresses one parameter of one entity. Number is zero for the main
// stereo bus, which is unnumbered.
type Key struct {
	Kind   Kind
	Number int
	Param  Param
}

func (k Key) String() string {
	if k.Kind == KindMain {
		return fmt.Sprintf("/main/st %s", k.Param)
	}
	return fmt.Sprintf("/%s/%02d %s", k.Kind, k.Number, k.Param)
}

// Value is one typed parameter value. The set of implementations is closed:
// On, FaderDB, Pan and Name. All are comparable, so snapshot values compare
// with ==.
type Value interface{ isValue() }

type (
	// On is the channel/bus/main "on" switch; false means muted.
	On bool
	// FaderDB is a fader level in scene-file decibels, not yet mapped to
	// the console's normalized range.
	FaderDB float64
	// Pan is a stereo pan position as written in the scene file.
	Pan float64
	// Name is an entity's display name.
	Name string
)

func (On) isValue()      {}
func (FaderDB) isValue() {}
func (Pan) isValue()     {}
func (Name) isValue()    {}

// Snapshot maps parameter keys to values. An absent key means the scene
// file said nothing about that parameter, not that it is zero. Snapshots
// are rebuilt wholesale on every parse and never mutated in place.
type Snapshot map[Key]Value
