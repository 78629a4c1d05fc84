package main

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// Seeds a development database with a plausible season of data: four
// tournaments, ten five-player teams, best-of-one matches with ten stat
// lines each, and one analyst token for hitting the gated endpoints.

const devAnalystToken = "dev-analyst-token"

var leagues = []struct {
	league string
	year   int
	split  string
}{
	{"LCK", 2024, "Spring"},
	{"LCK", 2024, "Summer"},
	{"LEC", 2024, "Spring"},
	{"LPL", 2024, "Spring"},
}

var teamNames = []string{
	"T1", "Gen.G", "Hanwha Life", "KT Rolster", "Dplus KIA",
	"DRX", "Kwangdong Freecs", "Nongshim RedForce", "OKSavingsBank BRION", "FearX",
}

var positions = []string{"Top", "Jungle", "Mid", "Bot", "Support"}

var champions = []string{
	"Azir", "Ahri", "Orianna", "Corki", "Aatrox", "KSante", "Jax",
	"Viego", "Lee Sin", "Maokai", "Jinx", "Kaisa", "Zeri",
	"Nautilus", "Rell", "Renata Glasc",
}

func main() {
	matchesPerTournament := flag.Int("matches", 45, "matches to generate per tournament")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	_ = godotenv.Load()
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Fatal("POSTGRES_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("ping postgres: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))

	teamIDs := make([]string, len(teamNames))
	for i, name := range teamNames {
		teamIDs[i] = uuid.NewString()
		if _, err := db.Exec(
			"INSERT INTO teams (id, team_name) VALUES ($1, $2)",
			teamIDs[i], name); err != nil {
			log.Fatalf("insert team %s: %v", name, err)
		}
	}

	// Five players per team, one per position.
	rosters := make(map[string][]string, len(teamIDs))
	for ti, teamID := range teamIDs {
		for _, pos := range positions {
			playerID := uuid.NewString()
			name := fmt.Sprintf("%s %s", teamNames[ti], pos)
			if _, err := db.Exec(
				"INSERT INTO players (id, player_name, position) VALUES ($1, $2, $3)",
				playerID, name, pos); err != nil {
				log.Fatalf("insert player %s: %v", name, err)
			}
			rosters[teamID] = append(rosters[teamID], playerID)
		}
	}

	totalMatches := 0
	for _, lg := range leagues {
		tournamentID := uuid.NewString()
		if _, err := db.Exec(
			"INSERT INTO tournaments (id, league, year, split, playoffs) VALUES ($1, $2, $3, $4, $5)",
			tournamentID, lg.league, lg.year, lg.split, false); err != nil {
			log.Fatalf("insert tournament %s %d: %v", lg.league, lg.year, err)
		}

		matchDate := time.Date(lg.year, time.January, 10, 17, 0, 0, 0, time.UTC)
		for i := 0; i < *matchesPerTournament; i++ {
			blue := teamIDs[rng.Intn(len(teamIDs))]
			red := teamIDs[rng.Intn(len(teamIDs))]
			for red == blue {
				red = teamIDs[rng.Intn(len(teamIDs))]
			}
			blueWins := rng.Intn(2) == 0

			matchID := uuid.NewString()
			gameLength := 1500 + rng.Intn(1200)
			patch := fmt.Sprintf("14.%02d", 1+rng.Intn(10))
			if _, err := db.Exec(`
				INSERT INTO matches (id, tournament_id, game_number, game_length, patch, match_date)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				matchID, tournamentID, 1, gameLength, patch, matchDate); err != nil {
				log.Fatalf("insert match: %v", err)
			}
			matchDate = matchDate.Add(26 * time.Hour)

			seedStatLines(db, rng, matchID, blue, "Blue", blueWins, rosters[blue], gameLength)
			seedStatLines(db, rng, matchID, red, "Red", !blueWins, rosters[red], gameLength)
			totalMatches++
		}
	}

	tokenHash := sha256.Sum256([]byte(devAnalystToken))
	if _, err := db.Exec(
		"INSERT INTO analyst_tokens (id, token_hash, label, is_active) VALUES ($1, $2, $3, true)",
		uuid.NewString(), hex.EncodeToString(tokenHash[:]), "development"); err != nil {
		log.Fatalf("insert analyst token: %v", err)
	}

	log.Printf("seeded %d teams, %d players, %d tournaments, %d matches",
		len(teamIDs), len(teamIDs)*len(positions), len(leagues), totalMatches)
	log.Printf("analyst token: %s", devAnalystToken)
}

// seedStatLines writes one side's five stat lines for a match. Every line
// on a team carries the same result flag.
func seedStatLines(db *sql.DB, rng *rand.Rand, matchID, teamID, side string, won bool, roster []string, gameLength int) {
	minutes := float64(gameLength) / 60
	for _, playerID := range roster {
		kills := rng.Intn(8)
		deaths := rng.Intn(6)
		assists := rng.Intn(12)
		if won {
			kills += rng.Intn(4)
		}
		cs := 120 + rng.Intn(220)
		damage := 8000 + rng.Intn(18000)

		if _, err := db.Exec(`
			INSERT INTO match_player_stats (
				match_id, player_id, team_id, side, champion, result,
				kills, deaths, assists,
				totalgold, damagetochampions, dpm, damageshare,
				wardsplaced, visionscore,
				total_cs, cspm
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			matchID, playerID, teamID, side, champions[rng.Intn(len(champions))], won,
			kills, deaths, assists,
			7000+rng.Intn(9000), damage, float64(damage)/minutes, 0.1+rng.Float64()*0.2,
			5+rng.Intn(30), 15+rng.Intn(80),
			cs, float64(cs)/minutes); err != nil {
			log.Fatalf("insert stat line: %v", err)
		}
	}
}
