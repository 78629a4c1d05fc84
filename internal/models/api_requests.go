package models

// ScopeFilter narrows the tournament/match population. All fields are
// optional; zero values mean "no constraint". It applies to every
// leaderboard type.
type ScopeFilter struct {
	Year     *int   `json:"year,omitempty"`
	League   string `json:"league,omitempty"`
	Split    string `json:"split,omitempty"`
	Playoffs *bool  `json:"playoffs,omitempty"`
	Patch    string `json:"patch,omitempty"`
}

// PlayerFilter narrows stat lines by player-level attributes.
type PlayerFilter struct {
	Position string `json:"position,omitempty"`
	Champion string `json:"champion,omitempty"`
	Side     string `json:"side,omitempty"`
}

// PlayerLeaderboardRequest holds the validated parameters of a player
// leaderboard query.
type PlayerLeaderboardRequest struct {
	Metric string `json:"metric" validate:"oneof=kda dpm cspm vision winrate"`
	Scope  ScopeFilter
	Player PlayerFilter
	Limit  int `json:"limit" validate:"min=1,max=100"`
	// MinGames excludes low-sample players after grouping.
	MinGames int `json:"min_games" validate:"min=1,max=100"`
}

// TeamLeaderboardRequest holds the validated parameters of a team
// leaderboard query. Teams have no metric selector; ranking is by win rate.
type TeamLeaderboardRequest struct {
	Scope ScopeFilter
	Limit int `json:"limit" validate:"min=1,max=100"`
	// MinMatches excludes low-sample teams after aggregation.
	MinMatches int `json:"min_matches" validate:"min=1,max=100"`
}

// TournamentLeaderboardRequest holds the validated parameters of a
// tournament leaderboard query.
type TournamentLeaderboardRequest struct {
	Metric string `json:"metric" validate:"oneof=total_matches total_teams avg_game_duration"`
	Scope  ScopeFilter
	Limit  int `json:"limit" validate:"min=1,max=100"`
}
