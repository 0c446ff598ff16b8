package behavior

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sderr "simuduck/internal/errors"
)

func TestFlyVariants(t *testing.T) {
	tests := []struct {
		b        FlyBehavior
		wantName string
		want     string
	}{
		{FlyWithWings{}, "FlyWithWings", "I'm flying!"},
		{FlyNoWay{}, "FlyNoWay", "I can't fly"},
		{FlyRocketPowered{}, "FlyRocketPowered", "I'm flying with a rocket!"},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.b.Name())
			assert.Equal(t, tt.want, tt.b.Fly())
			// Stateless: a second call yields the same effect.
			assert.Equal(t, tt.want, tt.b.Fly())
		})
	}
}

func TestQuackVariants(t *testing.T) {
	tests := []struct {
		b        QuackBehavior
		wantName string
		want     string
	}{
		{Quack{}, "Quack", "Quack"},
		{MuteQuack{}, "MuteQuack", "<< Silence >>"},
		{Squeak{}, "Squeak", "Squeak"},
	}
	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.b.Name())
			assert.Equal(t, tt.want, tt.b.Quack())
			assert.Equal(t, tt.want, tt.b.Quack())
		})
	}
}

func TestLookupFly(t *testing.T) {
	tests := []struct {
		key  string
		want FlyBehavior
	}{
		{"wings", FlyWithWings{}},
		{"NoWay", FlyNoWay{}},
		{" rocket ", FlyRocketPowered{}},
		{"FlyRocketPowered", FlyRocketPowered{}},
		{"flywithwings", FlyWithWings{}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := LookupFly(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupQuack(t *testing.T) {
	tests := []struct {
		key  string
		want QuackBehavior
	}{
		{"quack", Quack{}},
		{"MUTE", MuteQuack{}},
		{"squeak", Squeak{}},
		{"MuteQuack", MuteQuack{}},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := LookupQuack(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := LookupFly("jetpack")
	require.Error(t, err)
	assert.ErrorIs(t, err, sderr.ErrUnknownBehavior)
	assert.Contains(t, err.Error(), "wings, noway, rocket")

	_, err = LookupQuack("honk")
	require.Error(t, err)
	assert.ErrorIs(t, err, sderr.ErrUnknownBehavior)

	var be *sderr.BehaviorError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "quack", be.Kind)
	assert.Equal(t, "honk", be.Key)
}

func TestKeys_ReturnCopies(t *testing.T) {
	keys := FlyKeys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"wings", "noway", "rocket"}, FlyKeys())
	assert.Equal(t, []string{"quack", "mute", "squeak"}, QuackKeys())
}
