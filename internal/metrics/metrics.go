// Package metrics exposes Prometheus counters for the gamification engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CompletionsTotal counts activity completions by catalog category.
var CompletionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tally",
	Name:      "completions_total",
	Help:      "Total activity completions recorded.",
}, []string{"category"})

// CompletionsRefused counts completions refused by the per-day cap.
var CompletionsRefused = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tally",
	Name:      "completions_refused_total",
	Help:      "Completions refused because the daily cap was reached.",
})

// PointsEarned counts points credited, streak bonuses included.
var PointsEarned = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tally",
	Name:      "points_earned_total",
	Help:      "Total points credited across all members.",
})

// PointsSpent counts points debited by redemptions.
var PointsSpent = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tally",
	Name:      "points_spent_total",
	Help:      "Total points spent on rewards across all members.",
})

// LevelUps counts level-up transitions.
var LevelUps = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tally",
	Name:      "level_ups_total",
	Help:      "Total level-up transitions.",
})

// DailyGoalsHit counts first crossings of the daily goal.
var DailyGoalsHit = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "tally",
	Name:      "daily_goals_hit_total",
	Help:      "Daily goal achievements (counted once per crossing).",
})
