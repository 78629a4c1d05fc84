package logic

import (
	"fmt"
	"strings"

	"github.com/Compassionate-Cockroaches/ProjectDatabase/internal/models"
)

// whereBuilder accumulates AND-ed conditions with positional pgx arguments.
// Condition expressions carry a single %d verb for the argument ordinal.
type whereBuilder struct {
	conds []string
	args  []any
}

func (b *whereBuilder) add(expr string, arg any) {
	b.args = append(b.args, arg)
	b.conds = append(b.conds, fmt.Sprintf(expr, len(b.args)))
}

// addRaw appends a condition that binds no argument.
func (b *whereBuilder) addRaw(expr string) {
	b.conds = append(b.conds, expr)
}

// where renders the accumulated conditions, or an empty string when no
// filter is present.
func (b *whereBuilder) where() string {
	if len(b.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(b.conds, " AND ")
}

// nextOrdinal returns the placeholder number the next bound argument will get.
// Used for clauses (HAVING, LIMIT) appended after the filters.
func (b *whereBuilder) nextOrdinal() int {
	return len(b.args) + 1
}

// applyScopeFilter binds the shared dataset-scope filters against the joined
// relation. Aliases: t = tournaments, m = matches. Absent fields bind nothing;
// unknown values simply match zero rows.
func applyScopeFilter(b *whereBuilder, f models.ScopeFilter) {
	if f.Year != nil {
		b.add("t.year = $%d", *f.Year)
	}
	if f.League != "" {
		b.add("t.league = $%d", f.League)
	}
	if f.Split != "" {
		b.add("t.split = $%d", f.Split)
	}
	if f.Playoffs != nil {
		b.add("t.playoffs = $%d", *f.Playoffs)
	}
	if f.Patch != "" {
		b.add("m.patch = $%d", f.Patch)
	}
}

// applyPlayerFilter binds the player-only filters. Aliases: p = players,
// s = match_player_stats.
func applyPlayerFilter(b *whereBuilder, f models.PlayerFilter) {
	if f.Position != "" {
		b.add("p.position = $%d", f.Position)
	}
	if f.Champion != "" {
		b.add("s.champion = $%d", f.Champion)
	}
	if f.Side != "" {
		b.add("s.side = $%d", f.Side)
	}
}
