package riot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/retrosilicon/vcs2600/hardware/riot"
)

func TestPortsPowerOnState(t *testing.T) {
	p := riot.NewPorts()
	assert.Equal(t, uint8(0xff), p.SWCHA)
	assert.Equal(t, riot.TVTypeColor, p.GetTVType())
	assert.Equal(t, riot.DifficultyAmateur, p.GetDifficulty(riot.Player0))
	assert.Equal(t, riot.DifficultyAmateur, p.GetDifficulty(riot.Player1))
}

func TestPortsResetIsActiveLow(t *testing.T) {
	p := riot.NewPorts()
	assert.NotZero(t, p.SWCHB&riot.SWCHBReset, "idle: reset bit set")

	p.SetResetPressed(true)
	assert.Zero(t, p.SWCHB&riot.SWCHBReset, "pressed: reset bit clear")

	p.SetResetPressed(false)
	assert.NotZero(t, p.SWCHB&riot.SWCHBReset)
}

func TestPortsDifficultySwitchesAreIndependent(t *testing.T) {
	p := riot.NewPorts()
	p.SetDifficulty(riot.Player0, riot.DifficultyPro)
	assert.Equal(t, riot.DifficultyPro, p.GetDifficulty(riot.Player0))
	assert.Equal(t, riot.DifficultyAmateur, p.GetDifficulty(riot.Player1))

	p.SetDifficulty(riot.Player1, riot.DifficultyPro)
	assert.Equal(t, riot.DifficultyPro, p.GetDifficulty(riot.Player0))
	assert.Equal(t, riot.DifficultyPro, p.GetDifficulty(riot.Player1))
}

func TestPortsTVTypeRoundTrip(t *testing.T) {
	p := riot.NewPorts()
	p.SetTVType(riot.TVTypeMono)
	assert.Equal(t, riot.TVTypeMono, p.GetTVType())
	p.SetTVType(riot.TVTypeColor)
	assert.Equal(t, riot.TVTypeColor, p.GetTVType())
}
