package engine

import (
	"testing"

	"github.com/dukerupert/tally/internal/model"
)

func TestLevelZeroXP(t *testing.T) {
	p := Level(0, model.RankTrackPlayful)
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.CurrentXP != 0 {
		t.Errorf("current xp = %d, want 0", p.CurrentXP)
	}
	if p.XPToNextLevel != 50 {
		t.Errorf("xp to next = %d, want 50", p.XPToNextLevel)
	}
	if p.ProgressPercent != 0 {
		t.Errorf("progress = %d, want 0", p.ProgressPercent)
	}
	if p.RankName != "Sprout" {
		t.Errorf("rank = %q, want Sprout", p.RankName)
	}
}

func TestLevelExactBoundary(t *testing.T) {
	// XP equal to the cumulative requirement through level k lands at the
	// start of level k+1 with zero progress.
	cumulative := 0
	for k := 1; k <= 6; k++ {
		cumulative += XPForLevel(k)
		p := Level(cumulative, model.RankTrackPlayful)
		if p.Level != k+1 {
			t.Errorf("level at cumulative %d = %d, want %d", cumulative, p.Level, k+1)
		}
		if p.CurrentXP != 0 {
			t.Errorf("current xp at level %d boundary = %d, want 0", k+1, p.CurrentXP)
		}
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 20000; xp += 7 {
		level := LevelForXP(xp)
		if level < prev {
			t.Fatalf("level decreased: xp=%d level=%d prev=%d", xp, level, prev)
		}
		prev = level
	}
}

func TestLevelCurveValues(t *testing.T) {
	// floor(50 * 1.5^(n-1))
	cases := []struct{ level, want int }{
		{1, 50},
		{2, 75},
		{3, 112},
		{4, 168},
		{5, 253},
	}
	for _, tc := range cases {
		if got := XPForLevel(tc.level); got != tc.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tc.level, got, tc.want)
		}
	}
}

func TestLevelPartialProgress(t *testing.T) {
	// 25 of the 50 needed for level 1.
	p := Level(25, model.RankTrackPlayful)
	if p.Level != 1 {
		t.Errorf("level = %d, want 1", p.Level)
	}
	if p.CurrentXP != 25 {
		t.Errorf("current xp = %d, want 25", p.CurrentXP)
	}
	if p.ProgressPercent != 50 {
		t.Errorf("progress = %d, want 50", p.ProgressPercent)
	}
}

func TestLevelMaxCap(t *testing.T) {
	p := Level(1<<40, model.RankTrackPlayful)
	if p.Level != MaxLevel {
		t.Errorf("level = %d, want %d", p.Level, MaxLevel)
	}
	if p.ProgressPercent != 100 {
		t.Errorf("progress at max level = %d, want 100", p.ProgressPercent)
	}
	if p.XPToNextLevel != 0 {
		t.Errorf("xp to next at max level = %d, want 0", p.XPToNextLevel)
	}
	if p.RankName != "Immortal" {
		t.Errorf("rank = %q, want Immortal", p.RankName)
	}
}

func TestRankThresholds(t *testing.T) {
	cases := []struct {
		level int
		want  string
	}{
		{1, "Sprout"},
		{4, "Sprout"},
		{5, "Explorer"},
		{9, "Explorer"},
		{10, "Adventurer"},
		{15, "Hero"},
		{19, "Hero"},
		{25, "Champion"},
		{35, "Legend"},
		{45, "Mythic"},
		{50, "Immortal"},
	}
	for _, tc := range cases {
		if got := RankFor(tc.level, model.RankTrackPlayful); got.Name != tc.want {
			t.Errorf("rank for level %d = %q, want %q", tc.level, got.Name, tc.want)
		}
	}
}

func TestRankTracksShareThresholds(t *testing.T) {
	playful := Ranks(model.RankTrackPlayful)
	mature := Ranks(model.RankTrackMature)
	if len(playful) != 8 || len(mature) != 8 {
		t.Fatalf("table sizes = %d, %d, want 8, 8", len(playful), len(mature))
	}
	for i := range playful {
		if playful[i].Level != mature[i].Level {
			t.Errorf("threshold %d differs: playful %d, mature %d", i, playful[i].Level, mature[i].Level)
		}
	}
	if got := RankFor(20, model.RankTrackMature); got.Name != "Veteran" {
		t.Errorf("mature rank at 20 = %q, want Veteran", got.Name)
	}
}
