package model

import "time"

// RankTrack selects which rank-name table a member's progression uses.
type RankTrack string

const (
	RankTrackPlayful RankTrack = "playful"
	RankTrackMature  RankTrack = "mature"
)

// Valid reports whether the track is one of the known tables.
func (t RankTrack) Valid() bool {
	return t == RankTrackPlayful || t == RankTrackMature
}

type FamilyMember struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Color       string    `json:"color"`
	AvatarEmoji string    `json:"avatar_emoji"`
	RankTrack   RankTrack `json:"rank_track"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
