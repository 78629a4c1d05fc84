package models

import "time"

// Team is a competing organization. Rosters are implied by stat lines.
type Team struct {
	ID         string  `json:"id"`
	ExternalID *string `json:"external_id,omitempty"`
	TeamName   string  `json:"team_name"`
}

// Player is a professional player. Position is one of Top, Jungle, Mid, Bot, Support.
type Player struct {
	ID         string  `json:"id"`
	ExternalID *string `json:"external_id,omitempty"`
	PlayerName string  `json:"player_name"`
	Position   *string `json:"position"`
}

// Tournament is a league split, e.g. LCK 2024 Spring.
type Tournament struct {
	ID       string  `json:"id"`
	League   string  `json:"league"`
	Year     int     `json:"year"`
	Split    *string `json:"split"`
	Playoffs bool    `json:"playoffs"`
}

// Match is a single game inside a tournament. GameLength is in seconds.
type Match struct {
	ID               string     `json:"id"`
	ExternalID       *string    `json:"external_id,omitempty"`
	TournamentID     string     `json:"tournament_id"`
	GameNumber       *int       `json:"game_number"`
	GameLength       *int       `json:"game_length"`
	Patch            *string    `json:"patch"`
	MatchDate        *time.Time `json:"match_date"`
	DataCompleteness *string    `json:"data_completeness,omitempty"`
	URL              *string    `json:"url,omitempty"`
}

// StatLine is one player's recorded performance in one match.
// It is the fact table of the dataset: exactly one row per (match, player),
// with the win flag stored at player granularity (five rows per team per match).
type StatLine struct {
	MatchID  string  `json:"match_id"`
	PlayerID string  `json:"player_id"`
	TeamID   string  `json:"team_id"`
	Side     *string `json:"side"`
	Champion *string `json:"champion"`
	Result   *bool   `json:"result"`

	// Core stats
	Kills      int `json:"kills"`
	Deaths     int `json:"deaths"`
	Assists    int `json:"assists"`
	DoubleKill int `json:"doublekills"`
	TripleKill int `json:"triplekills"`
	QuadraKill int `json:"quadrakills"`
	PentaKill  int `json:"pentakills"`

	// First blood
	FirstBlood       bool `json:"firstblood"`
	FirstBloodKill   bool `json:"firstbloodkill"`
	FirstBloodAssist bool `json:"firstbloodassist"`

	// Gold
	TotalGold  int     `json:"totalgold"`
	EarnedGold int     `json:"earnedgold"`
	EarnedGPM  float64 `json:"earned_gpm"`
	GoldSpent  int     `json:"goldspent"`

	// Damage
	DamageToChampions int     `json:"damagetochampions"`
	DPM               float64 `json:"dpm"`
	DamageShare       float64 `json:"damageshare"`

	// Vision
	WardsPlaced        int `json:"wardsplaced"`
	WardsKilled        int `json:"wardskilled"`
	ControlWardsBought int `json:"controlwardsbought"`
	VisionScore        int `json:"visionscore"`

	// CS
	TotalCS      int     `json:"total_cs"`
	MinionKills  int     `json:"minionkills"`
	MonsterKills int     `json:"monsterkills"`
	CSPM         float64 `json:"cspm"`
}
