package model

// PointsSettings is the household-wide points configuration. DailyGoal and
// DailyGoalEnabled seed new ledgers; kid/teen task points are the default
// values for ad-hoc tasks created outside the activity catalog.
type PointsSettings struct {
	DailyGoal        int  `json:"daily_goal"`
	DailyGoalEnabled bool `json:"daily_goal_enabled"`
	KidTaskPoints    int  `json:"kid_task_points"`
	TeenTaskPoints   int  `json:"teen_task_points"`
}
