package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"zero stays zero", Vec2{}, Vec2{}},
		{"axis", Vec2{0, -5}, Vec2{0, -1}},
		{"diagonal", Vec2{3, 4}, Vec2{0.6, 0.8}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Normalize()
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestVec2_Rotate(t *testing.T) {
	got := Vec2{1, 0}.Rotate(math.Pi / 2)
	assert.InDelta(t, 0.0, got.X, 1e-9)
	assert.InDelta(t, 1.0, got.Y, 1e-9)
}

func TestVec2_ClampLen(t *testing.T) {
	assert.Equal(t, Vec2{1, 1}, Vec2{1, 1}.ClampLen(5))

	got := Vec2{30, 40}.ClampLen(5)
	assert.InDelta(t, 5.0, got.Len(), 1e-9)
	assert.InDelta(t, 3.0, got.X, 1e-9)
	assert.InDelta(t, 4.0, got.Y, 1e-9)
}

func TestVec2_Direction(t *testing.T) {
	d := Vec2{10, 10}.Direction(Vec2{10, 20})
	assert.Equal(t, Vec2{0, 1}, d)
	assert.Equal(t, Vec2{}, Vec2{2, 2}.Direction(Vec2{2, 2}))
}
