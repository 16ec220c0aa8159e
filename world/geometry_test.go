package world

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	var r1, r2 Rectangle
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(10, 20, 30, 50)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(15, 25, 35, 55)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(15, 10, 25, 60)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	// One pixel of overlap is enough.
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(29, 49, 40, 60)
	assert.True(t, r1.Intersects(r2))
	assert.True(t, r2.Intersects(r1))

	// Touching edges don't overlap.
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(30, 20, 60, 50)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(10, 50, 30, 60)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))

	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(100, 200, 300, 500)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))

	// Empty rectangles don't overlap anything.
	r1 = NewRectangle(10, 20, 30, 50)
	r2 = NewRectangle(15, 25, 15, 25)
	assert.False(t, r1.Intersects(r2))
	assert.False(t, r2.Intersects(r1))
}

func TestRectContainsRect(t *testing.T) {
	r := NewRectangle(0, 40, 780, 580)
	assert.True(t, r.ContainsRect(r))
	assert.True(t, r.ContainsRect(NewRectangle(60, 100, 120, 160)))
	assert.False(t, r.ContainsRect(NewRectangle(-2, 100, 58, 160)))
	assert.False(t, r.ContainsRect(NewRectangle(730, 100, 790, 160)))
	assert.False(t, r.ContainsRect(NewRectangle(60, 38, 120, 98)))
}

func TestRectCorners(t *testing.T) {
	r := RectAt(Pt{60, 100}, Pt{55, 55})
	assert.Equal(t, [4]Pt{{60, 100}, {114, 100}, {60, 154}, {114, 154}},
		r.Corners())
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, int64(2), FloorDiv(120, 60))
	assert.Equal(t, int64(1), FloorDiv(119, 60))
	assert.Equal(t, int64(0), FloorDiv(0, 60))
	assert.Equal(t, int64(-1), FloorDiv(-1, 60))
	assert.Equal(t, int64(-1), FloorDiv(-60, 60))
	assert.Equal(t, int64(-2), FloorDiv(-61, 60))
}

func TestRectIntersectsRects(t *testing.T) {
	r := NewRectangle(0, 0, 10, 10)
	assert.False(t, RectIntersectsRects(r, nil))
	assert.False(t, RectIntersectsRects(r, []Rectangle{
		NewRectangle(10, 0, 20, 10),
		NewRectangle(0, 10, 10, 20),
	}))
	assert.True(t, RectIntersectsRects(r, []Rectangle{
		NewRectangle(10, 0, 20, 10),
		NewRectangle(5, 5, 6, 6),
	}))
}
