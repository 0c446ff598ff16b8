package duck

import (
	"sort"
	"strings"

	"simuduck/internal/behavior"
	sderr "simuduck/internal/errors"
)

// Registry keys for the concrete ducks.
const (
	KindMallard = "mallard"
	KindModel   = "model"
	KindRubber  = "rubber"
	KindDecoy   = "decoy"
)

// Mallard is a real duck: it flies with wings and quacks.
type Mallard struct{ *Base }

// NewMallard returns a Mallard bound to FlyWithWings and Quack.
func NewMallard(opts ...Option) *Mallard {
	return &Mallard{Base: mustBase(KindMallard, behavior.FlyWithWings{}, behavior.Quack{}, opts)}
}

func (*Mallard) Display() string { return "I'm a real Mallard duck" }

// Model is a display model that cannot fly until given a rocket.
type Model struct{ *Base }

// NewModel returns a Model bound to FlyNoWay and Quack.
func NewModel(opts ...Option) *Model {
	return &Model{Base: mustBase(KindModel, behavior.FlyNoWay{}, behavior.Quack{}, opts)}
}

func (*Model) Display() string { return "I'm a model duck" }

// Rubber is a bath toy.
type Rubber struct{ *Base }

// NewRubber returns a Rubber bound to FlyNoWay and Squeak.
func NewRubber(opts ...Option) *Rubber {
	return &Rubber{Base: mustBase(KindRubber, behavior.FlyNoWay{}, behavior.Squeak{}, opts)}
}

func (*Rubber) Display() string { return "I'm a rubber duckie" }

// Decoy is a wooden hunting decoy.
type Decoy struct{ *Base }

// NewDecoy returns a Decoy bound to FlyNoWay and MuteQuack.
func NewDecoy(opts ...Option) *Decoy {
	return &Decoy{Base: mustBase(KindDecoy, behavior.FlyNoWay{}, behavior.MuteQuack{}, opts)}
}

func (*Decoy) Display() string { return "I'm a duck decoy" }

var (
	_ Duck = (*Mallard)(nil)
	_ Duck = (*Model)(nil)
	_ Duck = (*Rubber)(nil)
	_ Duck = (*Decoy)(nil)
)

var constructors = map[string]func(...Option) Duck{
	KindMallard: func(o ...Option) Duck { return NewMallard(o...) },
	KindModel:   func(o ...Option) Duck { return NewModel(o...) },
	KindRubber:  func(o ...Option) Duck { return NewRubber(o...) },
	KindDecoy:   func(o ...Option) Duck { return NewDecoy(o...) },
}

// Kinds returns the registered duck kinds, sorted.
func Kinds() []string {
	out := make([]string, 0, len(constructors))
	for k := range constructors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// New builds the duck registered under kind (case-insensitive).
func New(kind string, opts ...Option) (Duck, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(kind))]
	if !ok {
		return nil, sderr.UnknownDuck(kind, Kinds())
	}
	return ctor(opts...), nil
}
