package memolist

import "testing"

func TestCursorMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{
			name:       "move down within bounds no scroll",
			margin:     2,
			delta:      1,
			len:        10,
			height:     5,
			wantPos:    1,
			wantOffset: 0,
		},
		{
			name:       "move down triggers scroll with margin",
			margin:     2,
			delta:      3,
			len:        10,
			height:     5,
			wantPos:    3,
			wantOffset: 1,
		},
		{
			name:       "move up clamps to 0",
			margin:     2,
			initial:    2,
			delta:      -5,
			len:        10,
			height:     5,
			wantPos:    0,
			wantOffset: 0,
		},
		{
			name:       "move down clamps to len-1",
			margin:     2,
			delta:      20,
			len:        10,
			height:     5,
			wantPos:    9,
			wantOffset: 5,
		},
		{
			name:    "empty list is a no-op",
			margin:  2,
			delta:   1,
			len:     0,
			height:  5,
			wantPos: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := cursor{pos: tt.initial, margin: tt.margin}
			c.move(tt.delta, tt.len, tt.height)
			if c.pos != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.pos, tt.wantPos)
			}
			if c.offset != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.offset, tt.wantOffset)
			}
		})
	}
}

func TestCursorJump(t *testing.T) {
	c := cursor{margin: 1}

	c.jump(7, 10, 4)
	if c.pos != 7 || c.offset != 5 {
		t.Errorf("jump(7) pos=%d offset=%d, want 7/5", c.pos, c.offset)
	}

	c.jump(0, 10, 4)
	if c.pos != 0 || c.offset != 0 {
		t.Errorf("jump(0) pos=%d offset=%d, want 0/0", c.pos, c.offset)
	}
}

func TestCursorClampToBounds(t *testing.T) {
	c := cursor{pos: 4, offset: 2}

	c.clampToBounds(3, 5)
	if c.pos != 2 || c.offset != 0 {
		t.Errorf("pos=%d offset=%d, want 2/0", c.pos, c.offset)
	}

	c.clampToBounds(0, 5)
	if c.pos != 0 || c.offset != 0 {
		t.Errorf("empty: pos=%d offset=%d, want 0/0", c.pos, c.offset)
	}
}

func TestCursorVisibleRange(t *testing.T) {
	c := cursor{offset: 3}

	start, end := c.visibleRange(5, 10)
	if start != 3 || end != 5 {
		t.Errorf("visibleRange = [%d,%d), want [3,5)", start, end)
	}

	start, end = c.visibleRange(0, 10)
	if start != 0 || end != 0 {
		t.Errorf("empty visibleRange = [%d,%d), want [0,0)", start, end)
	}
}
