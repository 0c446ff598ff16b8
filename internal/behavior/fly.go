package behavior

// FlyWithWings is the ordinary winged flight of a live duck.
type FlyWithWings struct{}

func (FlyWithWings) Name() string { return "FlyWithWings" }
func (FlyWithWings) Fly() string  { return "I'm flying!" }

// FlyNoWay is for ducks that cannot fly at all.
type FlyNoWay struct{}

func (FlyNoWay) Name() string { return "FlyNoWay" }
func (FlyNoWay) Fly() string  { return "I can't fly" }

// FlyRocketPowered straps a rocket to the duck.
type FlyRocketPowered struct{}

func (FlyRocketPowered) Name() string { return "FlyRocketPowered" }
func (FlyRocketPowered) Fly() string  { return "I'm flying with a rocket!" }

var (
	_ FlyBehavior = FlyWithWings{}
	_ FlyBehavior = FlyNoWay{}
	_ FlyBehavior = FlyRocketPowered{}
)
