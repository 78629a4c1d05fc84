package logic

import "math"

// Player leaderboard metrics.
const (
	MetricKDA     = "kda"
	MetricDPM     = "dpm"
	MetricCSPM    = "cspm"
	MetricVision  = "vision"
	MetricWinRate = "winrate"
)

// Tournament leaderboard metrics.
const (
	MetricTotalMatches    = "total_matches"
	MetricTotalTeams      = "total_teams"
	MetricAvgGameDuration = "avg_game_duration"
)

// round2 rounds to 2 decimal places, half away from zero. Every numeric
// output field goes through this so results are reproducible.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// kdaRatio computes (kills+assists)/deaths with a zero-death floor: a
// deathless run divides by 1, the denominator term is never dropped.
func kdaRatio(kills, assists, deaths int64) float64 {
	d := deaths
	if d < 1 {
		d = 1
	}
	return float64(kills+assists) / float64(d)
}

// winRatePercent returns wins/matches as a percentage, 0 when no matches
// were played.
func winRatePercent(wins, matches int64) float64 {
	if matches <= 0 {
		return 0
	}
	return float64(wins) / float64(matches) * 100
}
