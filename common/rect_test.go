package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{name: "overlap", o: NewRect(5, 5, 10, 10), want: true},
		{name: "contained", o: NewRect(2, 2, 2, 2), want: true},
		{name: "touching right edge", o: NewRect(10, 0, 5, 5), want: false},
		{name: "touching bottom edge", o: NewRect(0, 10, 5, 5), want: false},
		{name: "disjoint", o: NewRect(20, 20, 1, 1), want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Intersects(tc.o))
			assert.Equal(t, tc.want, tc.o.Intersects(base))
		})
	}
}

func TestRectInflateAndBottom(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	in := r.Inflate(0, 2)
	assert.Equal(t, NewRect(10, 18, 30, 44), in)

	r.SetBottom(100)
	assert.Equal(t, 100.0, r.Bottom())
	assert.Equal(t, 60.0, r.Top())
}

func TestClampAndDifficulty(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-5, 0, 10))
	assert.Equal(t, 10.0, Clamp(50, 0, 10))
	assert.Equal(t, 0.0, Clamp(3, 0, -1))

	for level, want := range map[int]int{1: 1, 3: 1, 4: 2, 7: 3, 40: 3} {
		assert.Equal(t, want, Difficulty(level), "level %d", level)
	}
}
