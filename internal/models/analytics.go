package models

import "time"

// PlayerLeaderboardRow is one ranked entry of the player leaderboard.
// Kill/death/assist totals are always populated regardless of the ranking
// metric so the output schema is fixed per endpoint.
type PlayerLeaderboardRow struct {
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	Position     string  `json:"position"`
	GamesPlayed  int64   `json:"games_played"`
	Metric       string  `json:"metric"`
	MetricValue  float64 `json:"metric_value"`
	TotalKills   int64   `json:"total_kills"`
	TotalDeaths  int64   `json:"total_deaths"`
	TotalAssists int64   `json:"total_assists"`
}

// TeamLeaderboardRow is one ranked entry of the team leaderboard.
// Teams always rank by win rate.
type TeamLeaderboardRow struct {
	TeamID        string  `json:"team_id"`
	TeamName      string  `json:"team_name"`
	MatchesPlayed int64   `json:"matches_played"`
	Wins          int64   `json:"wins"`
	Losses        int64   `json:"losses"`
	WinRate       float64 `json:"win_rate"`
}

// TournamentLeaderboardRow is one ranked entry of the tournament leaderboard.
type TournamentLeaderboardRow struct {
	TournamentID    string  `json:"tournament_id"`
	League          string  `json:"league"`
	Year            int     `json:"year"`
	Split           string  `json:"split"`
	Metric          string  `json:"metric"`
	MetricValue     float64 `json:"metric_value"`
	TotalMatches    int64   `json:"total_matches"`
	TotalTeams      int64   `json:"total_teams"`
	AvgGameDuration float64 `json:"avg_game_duration"`
}

// DashboardStats holds the four public entity counts.
type DashboardStats struct {
	TotalTeams       int64 `json:"total_teams"`
	TotalPlayers     int64 `json:"total_players"`
	TotalTournaments int64 `json:"total_tournaments"`
	TotalMatches     int64 `json:"total_matches"`
}

// PlayerCareerStats is a player's lifetime aggregate across all stat lines.
type PlayerCareerStats struct {
	ID           string  `json:"id"`
	PlayerName   string  `json:"player_name"`
	Position     *string `json:"position"`
	TotalGames   int64   `json:"total_games"`
	TotalWins    int64   `json:"total_wins"`
	TotalKills   int64   `json:"total_kills"`
	TotalDeaths  int64   `json:"total_deaths"`
	TotalAssists int64   `json:"total_assists"`
	AvgKDA       float64 `json:"avg_kda"`
	WinRate      float64 `json:"win_rate"`
}

// ChampionStats aggregates a player's games on one champion.
type ChampionStats struct {
	Champion    string  `json:"champion"`
	GamesPlayed int64   `json:"games_played"`
	Wins        int64   `json:"wins"`
	WinRate     float64 `json:"win_rate"`
	AvgKills    float64 `json:"avg_kills"`
	AvgDeaths   float64 `json:"avg_deaths"`
	AvgAssists  float64 `json:"avg_assists"`
	AvgKDA      float64 `json:"avg_kda"`
}

// PlayerMatchEntry is one stat line enriched with match context for history views.
type PlayerMatchEntry struct {
	StatLine
	MatchDate *time.Time `json:"match_date"`
	TeamName  string     `json:"team_name"`
}

// TournamentDetail is a tournament with participation counts.
type TournamentDetail struct {
	Tournament
	TotalTeams   int64 `json:"total_teams"`
	TotalMatches int64 `json:"total_matches"`
}

// TeamStanding is a team's record inside a single tournament, derived
// from per-match team results.
type TeamStanding struct {
	TeamID      string  `json:"team_id"`
	TeamName    string  `json:"team_name"`
	GamesPlayed int64   `json:"games_played"`
	Wins        int64   `json:"wins"`
	Losses      int64   `json:"losses"`
	WinRate     float64 `json:"win_rate"`
}

// MatchDetail is a match with the stat lines of both teams.
type MatchDetail struct {
	Match
	PlayerStats []MatchStatEntry `json:"player_stats"`
}

// MatchStatEntry is one stat line labeled with player and team names.
type MatchStatEntry struct {
	StatLine
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
}
