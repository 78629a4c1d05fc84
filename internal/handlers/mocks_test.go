package handlers

import (
	"context"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

// MockAnalyticsService
type MockAnalyticsService struct {
	PlayerLeaderboardFunc     func(ctx context.Context, req models.PlayerLeaderboardRequest) ([]models.PlayerLeaderboardRow, error)
	TeamLeaderboardFunc       func(ctx context.Context, req models.TeamLeaderboardRequest) ([]models.TeamLeaderboardRow, error)
	TournamentLeaderboardFunc func(ctx context.Context, req models.TournamentLeaderboardRequest) ([]models.TournamentLeaderboardRow, error)
	DashboardStatsFunc        func(ctx context.Context) (*models.DashboardStats, error)
}

func (m *MockAnalyticsService) PlayerLeaderboard(ctx context.Context, req models.PlayerLeaderboardRequest) ([]models.PlayerLeaderboardRow, error) {
	if m.PlayerLeaderboardFunc != nil {
		return m.PlayerLeaderboardFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAnalyticsService) TeamLeaderboard(ctx context.Context, req models.TeamLeaderboardRequest) ([]models.TeamLeaderboardRow, error) {
	if m.TeamLeaderboardFunc != nil {
		return m.TeamLeaderboardFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAnalyticsService) TournamentLeaderboard(ctx context.Context, req models.TournamentLeaderboardRequest) ([]models.TournamentLeaderboardRow, error) {
	if m.TournamentLeaderboardFunc != nil {
		return m.TournamentLeaderboardFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAnalyticsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if m.DashboardStatsFunc != nil {
		return m.DashboardStatsFunc(ctx)
	}
	return &models.DashboardStats{}, nil
}

// MockPlayerService
type MockPlayerService struct {
	ListPlayersFunc      func(ctx context.Context, position, search string, offset, limit int) ([]models.Player, error)
	GetPlayerFunc        func(ctx context.Context, id string) (*models.PlayerCareerStats, error)
	GetChampionStatsFunc func(ctx context.Context, playerID string) ([]models.ChampionStats, error)
	GetRecentMatchesFunc func(ctx context.Context, playerID string, offset, limit int) ([]models.PlayerMatchEntry, error)
}

func (m *MockPlayerService) ListPlayers(ctx context.Context, position, search string, offset, limit int) ([]models.Player, error) {
	if m.ListPlayersFunc != nil {
		return m.ListPlayersFunc(ctx, position, search, offset, limit)
	}
	return nil, nil
}

func (m *MockPlayerService) GetPlayer(ctx context.Context, id string) (*models.PlayerCareerStats, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, id)
	}
	return &models.PlayerCareerStats{}, nil
}

func (m *MockPlayerService) GetChampionStats(ctx context.Context, playerID string) ([]models.ChampionStats, error) {
	if m.GetChampionStatsFunc != nil {
		return m.GetChampionStatsFunc(ctx, playerID)
	}
	return nil, nil
}

func (m *MockPlayerService) GetRecentMatches(ctx context.Context, playerID string, offset, limit int) ([]models.PlayerMatchEntry, error) {
	if m.GetRecentMatchesFunc != nil {
		return m.GetRecentMatchesFunc(ctx, playerID, offset, limit)
	}
	return nil, nil
}

// MockTeamService
type MockTeamService struct {
	ListTeamsFunc func(ctx context.Context, search string, offset, limit int) ([]models.Team, error)
	GetTeamFunc   func(ctx context.Context, id string) (*models.Team, error)
}

func (m *MockTeamService) ListTeams(ctx context.Context, search string, offset, limit int) ([]models.Team, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, search, offset, limit)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, id string) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, id)
	}
	return &models.Team{}, nil
}

// MockTournamentService
type MockTournamentService struct {
	ListTournamentsFunc func(ctx context.Context, f models.ScopeFilter, sortBy, sortOrder string, offset, limit int) ([]models.Tournament, error)
	GetTournamentFunc   func(ctx context.Context, id string) (*models.TournamentDetail, error)
	GetStandingsFunc    func(ctx context.Context, tournamentID string) ([]models.TeamStanding, error)
	GetMatchesFunc      func(ctx context.Context, tournamentID string, offset, limit int) ([]models.Match, error)
}

func (m *MockTournamentService) ListTournaments(ctx context.Context, f models.ScopeFilter, sortBy, sortOrder string, offset, limit int) ([]models.Tournament, error) {
	if m.ListTournamentsFunc != nil {
		return m.ListTournamentsFunc(ctx, f, sortBy, sortOrder, offset, limit)
	}
	return nil, nil
}

func (m *MockTournamentService) GetTournament(ctx context.Context, id string) (*models.TournamentDetail, error) {
	if m.GetTournamentFunc != nil {
		return m.GetTournamentFunc(ctx, id)
	}
	return &models.TournamentDetail{}, nil
}

func (m *MockTournamentService) GetStandings(ctx context.Context, tournamentID string) ([]models.TeamStanding, error) {
	if m.GetStandingsFunc != nil {
		return m.GetStandingsFunc(ctx, tournamentID)
	}
	return nil, nil
}

func (m *MockTournamentService) GetMatches(ctx context.Context, tournamentID string, offset, limit int) ([]models.Match, error) {
	if m.GetMatchesFunc != nil {
		return m.GetMatchesFunc(ctx, tournamentID, offset, limit)
	}
	return nil, nil
}

// MockMatchService
type MockMatchService struct {
	GetMatchFunc func(ctx context.Context, id string) (*models.MatchDetail, error)
}

func (m *MockMatchService) GetMatch(ctx context.Context, id string) (*models.MatchDetail, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(ctx, id)
	}
	return &models.MatchDetail{}, nil
}
