package activation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReLU(t *testing.T) {
	assert.Equal(t, 5, ReLU(5))
	assert.Equal(t, 0, ReLU(0))
	assert.Equal(t, 0, ReLU(-3))
	assert.Equal(t, float32(2.5), ReLU(float32(2.5)))
	assert.Equal(t, float32(0), ReLU(float32(-0.5)))
}

func TestRPReLU(t *testing.T) {
	tests := []struct {
		name                 string
		x, beta, gamma, zeta int
		want                 int
	}{
		{name: "BelowThresholdUnitBeta", x: 0, beta: 1, gamma: 2, zeta: 3, want: 1},
		{name: "BelowThresholdZeroBeta", x: 0, beta: 0, gamma: 2, zeta: 3, want: 3},
		{name: "BelowThresholdSteepBeta", x: -1, beta: 2, gamma: 2, zeta: 3, want: -3},
		{name: "AboveThreshold", x: 3, beta: 3, gamma: 2, zeta: 3, want: 4},
		{name: "AtThresholdUsesBeta", x: 2, beta: 5, gamma: 2, zeta: 3, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RPReLU(tt.x, tt.beta, tt.gamma, tt.zeta))
		})
	}
}

func TestRPReLUDerived(t *testing.T) {
	// Unit slope above gamma, beta at or below it.
	assert.Equal(t, 1, RPReLUDerived(3, 7, 2))
	assert.Equal(t, 7, RPReLUDerived(2, 7, 2))
	assert.Equal(t, 7, RPReLUDerived(-10, 7, 2))
	assert.Equal(t, float32(0.25), RPReLUDerived(float32(-1), float32(0.25), float32(0)))
}

func TestParams(t *testing.T) {
	p := Params[int32]{Beta: 1, Gamma: 2, Zeta: 3}

	assert.Equal(t, int32(1), p.Apply(0))
	assert.Equal(t, int32(1), p.Derive(5))
	assert.Equal(t, int32(1), p.Derive(1))

	p.Step(1, -2, 0)
	assert.Equal(t, Params[int32]{Beta: 2, Gamma: 0, Zeta: 3}, p)
	assert.Equal(t, int32(3), p.Apply(0))
}
