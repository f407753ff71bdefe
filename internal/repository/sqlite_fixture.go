package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// SQLiteFixtureRepo implements FixtureRepo using a SQLite database.
type SQLiteFixtureRepo struct {
	db *sql.DB
}

// NewSQLiteFixtureRepo creates a new SQLiteFixtureRepo.
func NewSQLiteFixtureRepo(db *sql.DB) *SQLiteFixtureRepo {
	return &SQLiteFixtureRepo{db: db}
}

const fixtureColumns = `id, date, opponent, is_home, competition, notes, importance_weight`

func (r *SQLiteFixtureRepo) Create(ctx context.Context, teamID string, f *domain.Fixture) error {
	query := `INSERT INTO fixtures (id, team_id, date, opponent, is_home, competition, notes, importance_weight, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID,
		teamID,
		f.Date.Format(dateLayout),
		f.Opponent,
		boolToInt(f.IsHome),
		f.Competition,
		f.Notes,
		f.ImportanceWeight,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting fixture: %w", err)
	}
	return nil
}

func (r *SQLiteFixtureRepo) ListByTeam(ctx context.Context, teamID string) ([]domain.Fixture, error) {
	query := `SELECT ` + fixtureColumns + ` FROM fixtures WHERE team_id = ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing fixtures: %w", err)
	}
	return r.collect(rows)
}

func (r *SQLiteFixtureRepo) ListRange(ctx context.Context, teamID string, from, to time.Time) ([]domain.Fixture, error) {
	query := `SELECT ` + fixtureColumns + ` FROM fixtures
		WHERE team_id = ? AND date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, teamID, from.Format(dateLayout), to.Format(dateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing fixtures in range: %w", err)
	}
	return r.collect(rows)
}

func (r *SQLiteFixtureRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM fixtures WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting fixture: %w", err)
	}
	return nil
}

func (r *SQLiteFixtureRepo) collect(rows *sql.Rows) ([]domain.Fixture, error) {
	defer rows.Close()

	var fixtures []domain.Fixture
	for rows.Next() {
		var f domain.Fixture
		var date string
		var isHome int
		if err := rows.Scan(&f.ID, &date, &f.Opponent, &isHome, &f.Competition, &f.Notes, &f.ImportanceWeight); err != nil {
			return nil, fmt.Errorf("scanning fixture: %w", err)
		}
		f.Date = parseTime(date)
		f.IsHome = intToBool(isHome)
		fixtures = append(fixtures, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fixtures: %w", err)
	}
	return fixtures, nil
}
