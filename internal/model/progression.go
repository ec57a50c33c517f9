package model

// Rank is a named tier unlocked at a level threshold.
type Rank struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Progression is the derived leveling state for a lifetime XP total.
// Recomputing from the same XP is deterministic.
type Progression struct {
	Level           int    `json:"level"`
	RankName        string `json:"rank_name"`
	RankColor       string `json:"rank_color"`
	RankIcon        string `json:"rank_icon"`
	CurrentXP       int    `json:"current_xp"`
	XPToNextLevel   int    `json:"xp_to_next_level"`
	ProgressPercent int    `json:"progress_percent"`
}

// GoalProgress is the derived daily-goal state for a single calendar day.
type GoalProgress struct {
	TodayPoints int  `json:"today_points"`
	GoalPercent int  `json:"goal_percent"`
	Achieved    bool `json:"achieved"`
}

// CompletionResult reports what a completion attempt did. CapReached means
// the attempt was refused as a no-op and the ledger is unchanged.
type CompletionResult struct {
	Awarded          int  `json:"awarded"`
	BasePoints       int  `json:"base_points"`
	Bonus            int  `json:"bonus"`
	Streak           int  `json:"streak"`
	CapReached       bool `json:"cap_reached"`
	GoalJustAchieved bool `json:"goal_just_achieved"`
	Level            int  `json:"level"`
	LeveledUp        bool `json:"leveled_up"`
}
