package logic

import "testing"

func TestKDARatio(t *testing.T) {
	tests := []struct {
		name                    string
		kills, assists, deaths  int64
		want                    float64
	}{
		{"typical line", 5, 7, 3, 4.0},
		{"deathless uses floor of one", 10, 5, 0, 15.0},
		{"zero everything", 0, 0, 0, 0.0},
		{"deaths only", 0, 0, 8, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := kdaRatio(tt.kills, tt.assists, tt.deaths); got != tt.want {
				t.Errorf("kdaRatio(%d, %d, %d) = %v, want %v", tt.kills, tt.assists, tt.deaths, got, tt.want)
			}
		})
	}
}

func TestWinRatePercent(t *testing.T) {
	tests := []struct {
		name          string
		wins, matches int64
		want          float64
	}{
		{"seven of ten", 7, 10, 70.0},
		{"all wins", 5, 5, 100.0},
		{"no matches", 0, 0, 0.0},
		{"no wins", 0, 4, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := winRatePercent(tt.wins, tt.matches); got != tt.want {
				t.Errorf("winRatePercent(%d, %d) = %v, want %v", tt.wins, tt.matches, got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{70.0, 70.0},
		{3.14159, 3.14},
		{2.0 / 3.0, 0.67},
		{-0.125, -0.13},
	}
	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
