package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func poll(s Source, ticks int) (fire, reload []bool) {
	for i := 0; i < ticks; i++ {
		fire = append(fire, s.FireHeld())
		reload = append(reload, s.ReloadPressed())
	}
	return fire, reload
}

func TestBurstPattern(t *testing.T) {
	b := &Burst{On: 2, Off: 1, ReloadOnRelease: true}

	fire, reload := poll(b, 6)

	assert.Equal(t, []bool{true, true, false, true, true, false}, fire)
	assert.Equal(t, []bool{false, false, true, false, false, true}, reload)
	assert.False(t, b.ToggleGimbalPressed())
}

func TestBurstWithoutRelease(t *testing.T) {
	b := &Burst{On: 3, ReloadOnRelease: true}

	fire, reload := poll(b, 4)

	assert.Equal(t, []bool{true, true, true, true}, fire)
	assert.Equal(t, []bool{false, false, false, false}, reload)
}

func TestBurstEmpty(t *testing.T) {
	fire, _ := poll(&Burst{}, 2)
	assert.Equal(t, []bool{false, false}, fire)
}

func TestDefaultSource(t *testing.T) {
	defer SetDefault(nil)

	assert.Equal(t, None{}, Default())

	b := &Burst{On: 1}
	SetDefault(b)
	assert.Same(t, b, Default())

	SetDefault(nil)
	assert.False(t, Default().FireHeld())
}
