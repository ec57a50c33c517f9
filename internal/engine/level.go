package engine

import (
	"math"

	"github.com/dukerupert/tally/internal/model"
)

// Leveling curve: completing level n costs floor(baseXP * multiplier^(n-1)).
const (
	baseXP       = 50
	xpMultiplier = 1.5

	// MaxLevel caps progression. At the cap no further requirement is
	// computed and progress reads 100%.
	MaxLevel = 50
)

// Both rank tables share the same numeric thresholds; which one applies is
// a property of the member (rank track), not of the progression math.
var playfulRanks = []model.Rank{
	{Level: 1, Name: "Sprout", Color: "#9CA3AF", Icon: "🌱"},
	{Level: 5, Name: "Explorer", Color: "#22C55E", Icon: "🧭"},
	{Level: 10, Name: "Adventurer", Color: "#3B82F6", Icon: "🗺️"},
	{Level: 15, Name: "Hero", Color: "#6366F1", Icon: "🦸"},
	{Level: 20, Name: "Champion", Color: "#F59E0B", Icon: "🏅"},
	{Level: 30, Name: "Legend", Color: "#F97316", Icon: "🐉"},
	{Level: 40, Name: "Mythic", Color: "#A855F7", Icon: "🦄"},
	{Level: 50, Name: "Immortal", Color: "#EAB308", Icon: "👑"},
}

var matureRanks = []model.Rank{
	{Level: 1, Name: "Novice", Color: "#9CA3AF", Icon: "●"},
	{Level: 5, Name: "Apprentice", Color: "#22C55E", Icon: "◆"},
	{Level: 10, Name: "Journeyman", Color: "#3B82F6", Icon: "▲"},
	{Level: 15, Name: "Adept", Color: "#6366F1", Icon: "⬟"},
	{Level: 20, Name: "Veteran", Color: "#F59E0B", Icon: "★"},
	{Level: 30, Name: "Elite", Color: "#F97316", Icon: "✦"},
	{Level: 40, Name: "Master", Color: "#A855F7", Icon: "❖"},
	{Level: 50, Name: "Grandmaster", Color: "#EAB308", Icon: "♛"},
}

// XPForLevel returns the XP required to complete level n.
func XPForLevel(n int) int {
	if n < 1 {
		return 0
	}
	return int(math.Floor(baseXP * math.Pow(xpMultiplier, float64(n-1))))
}

// LevelForXP returns the level number alone for a lifetime XP total.
func LevelForXP(totalXP int) int {
	level, _ := consume(totalXP)
	return level
}

// consume walks the curve: returns the current level and the XP earned
// within that (incomplete) level.
func consume(totalXP int) (level, currentXP int) {
	if totalXP < 0 {
		totalXP = 0
	}
	level = 1
	remaining := totalXP
	for level < MaxLevel {
		required := XPForLevel(level)
		if remaining < required {
			break
		}
		remaining -= required
		level++
	}
	return level, remaining
}

// Level derives the full progression state for a lifetime XP total, using
// the rank table for the given track.
func Level(totalXP int, track model.RankTrack) model.Progression {
	level, currentXP := consume(totalXP)

	rank := RankFor(level, track)
	p := model.Progression{
		Level:     level,
		RankName:  rank.Name,
		RankColor: rank.Color,
		RankIcon:  rank.Icon,
		CurrentXP: currentXP,
	}

	if level >= MaxLevel {
		p.ProgressPercent = 100
		return p
	}

	p.XPToNextLevel = XPForLevel(level)
	pct := int(math.Round(float64(currentXP) / float64(p.XPToNextLevel) * 100))
	if pct > 100 {
		pct = 100
	}
	p.ProgressPercent = pct
	return p
}

// RankFor returns the highest rank threshold at or below level.
func RankFor(level int, track model.RankTrack) model.Rank {
	table := Ranks(track)
	rank := table[0]
	for _, r := range table {
		if r.Level > level {
			break
		}
		rank = r
	}
	return rank
}

// Ranks returns the threshold table for a track. Unknown tracks get the
// playful table.
func Ranks(track model.RankTrack) []model.Rank {
	if track == model.RankTrackMature {
		return matureRanks
	}
	return playfulRanks
}
