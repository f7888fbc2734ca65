package control

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReward(t *testing.T) {
	cases := []struct {
		amount, want int
	}{
		{15000, 1500},
		{999, 99},
		{5000, 500},
		{9, 0},
		{10, 1},
		{0, 0},
		{-100, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Reward(c.amount), "Reward(%d)", c.amount)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 0, Percent(0, 0))
	assert.Equal(t, 76, Percent(1600, 2100))
	assert.Equal(t, 67, Percent(10000, 15000))
	assert.Equal(t, 100, Percent(15000, 15000))
	assert.Equal(t, 50, Percent(1, 2))
}
