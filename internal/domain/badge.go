package domain

// Badge is a decoration awarded when its subject is mastered. Each badge
// maps to exactly one subject; subjects without a badge award nothing
// beyond the mastery itself.
type Badge struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Icon    string  `json:"icon"`
	Color   string  `json:"color"`
	Subject Subject `json:"subject"`
}

// LeaderboardEntry is one row of the external ranking snapshot. It is
// read-only reference data, never derived from local user state.
type LeaderboardEntry struct {
	UserID   string `json:"user_id"`
	Name     string `json:"name"`
	PhotoURL string `json:"photo_url"`
	XP       int    `json:"xp"`
	Level    int    `json:"level"`
	Rank     int    `json:"rank"`
}
