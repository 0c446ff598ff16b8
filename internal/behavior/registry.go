package behavior

import (
	"strings"

	sderr "simuduck/internal/errors"
)

// Keys are the short names accepted on the command line.  Lookups are
// case-insensitive and also accept a variant's Name().
var (
	flyKeys   = []string{"wings", "noway", "rocket"}
	quackKeys = []string{"quack", "mute", "squeak"}

	flyByKey = map[string]FlyBehavior{
		"wings":  FlyWithWings{},
		"noway":  FlyNoWay{},
		"rocket": FlyRocketPowered{},
	}
	quackByKey = map[string]QuackBehavior{
		"quack":  Quack{},
		"mute":   MuteQuack{},
		"squeak": Squeak{},
	}
)

// FlyKeys returns the registered fly keys in display order.
func FlyKeys() []string { return append([]string(nil), flyKeys...) }

// QuackKeys returns the registered quack keys in display order.
func QuackKeys() []string { return append([]string(nil), quackKeys...) }

// LookupFly resolves a fly key or variant name.
func LookupFly(key string) (FlyBehavior, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if b, ok := flyByKey[k]; ok {
		return b, nil
	}
	for _, b := range flyByKey {
		if strings.EqualFold(b.Name(), k) {
			return b, nil
		}
	}
	return nil, sderr.UnknownBehavior("fly", key, FlyKeys())
}

// LookupQuack resolves a quack key or variant name.
func LookupQuack(key string) (QuackBehavior, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	if b, ok := quackByKey[k]; ok {
		return b, nil
	}
	for _, b := range quackByKey {
		if strings.EqualFold(b.Name(), k) {
			return b, nil
		}
	}
	return nil, sderr.UnknownBehavior("quack", key, QuackKeys())
}
