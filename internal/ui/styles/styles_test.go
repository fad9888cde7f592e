package styles

import "testing"

func TestHeatStyle_Clamps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level int
		want  int
	}{
		{-3, 0},
		{0, 0},
		{2, 2},
		{len(Heat) - 1, len(Heat) - 1},
		{99, len(Heat) - 1},
	}

	for _, tt := range tests {
		got := HeatStyle(tt.level).GetForeground()
		if got != Heat[tt.want] {
			t.Errorf("HeatStyle(%d) foreground = %v, want Heat[%d]", tt.level, got, tt.want)
		}
	}
}
