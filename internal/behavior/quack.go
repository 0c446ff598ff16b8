package behavior

// Quack is a real duck's quack.
type Quack struct{}

func (Quack) Name() string  { return "Quack" }
func (Quack) Quack() string { return "Quack" }

// MuteQuack makes no sound.
type MuteQuack struct{}

func (MuteQuack) Name() string  { return "MuteQuack" }
func (MuteQuack) Quack() string { return "<< Silence >>" }

// Squeak is the rubber-duck squeak.
type Squeak struct{}

func (Squeak) Name() string  { return "Squeak" }
func (Squeak) Quack() string { return "Squeak" }

var (
	_ QuackBehavior = Quack{}
	_ QuackBehavior = MuteQuack{}
	_ QuackBehavior = Squeak{}
)
