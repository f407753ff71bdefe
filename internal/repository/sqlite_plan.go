package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/pitchcycle/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database. The plan is
// stored as an opaque JSON document; a handful of columns are denormalized
// at save time for cheap listing.
type SQLitePlanRepo struct {
	db *sql.DB
}

// NewSQLitePlanRepo creates a new SQLitePlanRepo.
func NewSQLitePlanRepo(db *sql.DB) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: db}
}

func (r *SQLitePlanRepo) Save(ctx context.Context, teamID string, plan *domain.Plan) error {
	doc, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("serializing plan: %w", err)
	}
	now := nowUTC()
	query := `INSERT INTO plans (id, team_id, title, start_date, end_date, duration_days, plan_json, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			duration_days = excluded.duration_days,
			plan_json = excluded.plan_json,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		plan.ID,
		teamID,
		plan.Title,
		plan.StartDate.Format(dateLayout),
		plan.EndDate.Format(dateLayout),
		plan.TotalDays,
		string(doc),
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("saving plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `SELECT plan_json FROM plans WHERE id = ?`
	var doc string
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, fmt.Errorf("loading plan: %w", err)
	}
	var plan domain.Plan
	if err := json.Unmarshal([]byte(doc), &plan); err != nil {
		return nil, fmt.Errorf("deserializing plan %s: %w", id, err)
	}
	return &plan, nil
}

func (r *SQLitePlanRepo) List(ctx context.Context, teamID string) ([]PlanListing, error) {
	query := `SELECT id, team_id, title, start_date, end_date, duration_days, created_at, updated_at
		FROM plans WHERE team_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var listings []PlanListing
	for rows.Next() {
		var l PlanListing
		var start, end, created, updated string
		if err := rows.Scan(&l.ID, &l.TeamID, &l.Title, &start, &end, &l.DurationDays, &created, &updated); err != nil {
			return nil, fmt.Errorf("scanning plan listing: %w", err)
		}
		l.StartDate = parseTime(start)
		l.EndDate = parseTime(end)
		l.CreatedAt = parseTime(created)
		l.UpdatedAt = parseTime(updated)
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan listings: %w", err)
	}
	return listings, nil
}

func (r *SQLitePlanRepo) UpdateTitle(ctx context.Context, id, title string) error {
	// Update both the column and the embedded document so readers of either
	// see the same title.
	plan, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	plan.Title = title
	doc, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("serializing plan: %w", err)
	}
	query := `UPDATE plans SET title = ?, plan_json = ?, updated_at = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, query, title, string(doc), nowUTC(), id); err != nil {
		return fmt.Errorf("updating plan title: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM plans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting plan: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrPlanNotFound
	}
	return nil
}
