package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/domain/studygroup"
	"github.com/jsamuelsen11/stuti-api/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.StudyGroupRepository = (*Repository)(nil)
	_ ports.HealthChecker        = (*Repository)(nil)
)

// Repository stores study groups in the study_groups table and memberships
// in study_group_members.
type Repository struct {
	db *sql.DB
}

// NewRepository wraps an open database handle. See Open and InitSchema.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Name identifies the repository in readiness results.
func (r *Repository) Name() string { return "postgres" }

// HealthCheck pings the database.
func (r *Repository) HealthCheck(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	return nil
}

// CreateStudyGroup inserts g and its leader membership in one transaction.
func (r *Repository) CreateStudyGroup(ctx context.Context, g *studygroup.StudyGroup) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	const insertGroup = `
		INSERT INTO study_groups (
			title, description, image_url, topic, is_online, region, preferred_mbtis,
			number_of_recruits, start_date_time, end_date_time, leader_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`

	var id int64
	err = tx.QueryRowContext(ctx, insertGroup,
		g.Title,
		g.Description,
		g.ImageURL,
		string(g.Topic),
		g.IsOnline,
		string(g.Region),
		pq.Array(mbtiStrings(g.PreferredMBTIs)),
		g.NumberOfRecruits,
		g.StartDateTime.UTC(),
		g.EndDateTime.UTC(),
		g.LeaderID,
		g.CreatedAt.UTC(),
		g.UpdatedAt.UTC(),
	).Scan(&id)
	if err != nil {
		return fmt.Errorf("inserting study group: %w", translateError(err))
	}

	g.ID = id
	leader := g.LeaderMembership()
	if err = insertMembership(ctx, tx, leader); err != nil {
		return fmt.Errorf("inserting leader membership: %w", translateError(err))
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing study group: %w", err)
	}
	g.Members = []studygroup.Membership{leader}
	return nil
}

func insertMembership(ctx context.Context, tx *sql.Tx, m studygroup.Membership) error {
	const q = `
		INSERT INTO study_group_members (study_group_id, member_id, role, created_at)
		VALUES ($1, $2, $3, $4)`
	_, err := tx.ExecContext(ctx, q, m.StudyGroupID, m.MemberID, string(m.Role), m.CreatedAt.UTC())
	return err
}

// FindStudyGroupByID loads a live group and its memberships, oldest first.
func (r *Repository) FindStudyGroupByID(ctx context.Context, id int64) (*studygroup.StudyGroup, error) {
	const q = `
		SELECT id, title, description, image_url, topic, is_online, region, preferred_mbtis,
			number_of_recruits, start_date_time, end_date_time, leader_id, created_at, updated_at
		FROM study_groups
		WHERE id = $1 AND deleted_at IS NULL`

	var (
		g     studygroup.StudyGroup
		topic string
		reg   string
		mbtis []string
	)
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&g.ID,
		&g.Title,
		&g.Description,
		&g.ImageURL,
		&topic,
		&g.IsOnline,
		&reg,
		pq.Array(&mbtis),
		&g.NumberOfRecruits,
		&g.StartDateTime,
		&g.EndDateTime,
		&g.LeaderID,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("study group %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("selecting study group %d: %w", id, err)
	}

	g.Topic = studygroup.Topic(topic)
	g.Region = studygroup.Region(reg)
	g.PreferredMBTIs = toMBTIs(mbtis)
	normalizeTimes(&g)

	members, err := r.memberships(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Members = members
	return &g, nil
}

func (r *Repository) memberships(ctx context.Context, groupID int64) ([]studygroup.Membership, error) {
	const q = `
		SELECT study_group_id, member_id, role, created_at
		FROM study_group_members
		WHERE study_group_id = $1
		ORDER BY created_at, member_id`

	rows, err := r.db.QueryContext(ctx, q, groupID)
	if err != nil {
		return nil, fmt.Errorf("selecting memberships of %d: %w", groupID, err)
	}
	defer rows.Close()

	var out []studygroup.Membership
	for rows.Next() {
		var (
			m    studygroup.Membership
			role string
		)
		if err := rows.Scan(&m.StudyGroupID, &m.MemberID, &role, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning membership: %w", err)
		}
		m.Role = studygroup.Role(role)
		m.CreatedAt = m.CreatedAt.UTC()
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating memberships of %d: %w", groupID, err)
	}
	return out, nil
}

// UpdateStudyGroup writes title, description, image URL and updated_at.
func (r *Repository) UpdateStudyGroup(ctx context.Context, g *studygroup.StudyGroup) error {
	const q = `
		UPDATE study_groups
		SET title = $2, description = $3, image_url = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`

	res, err := r.db.ExecContext(ctx, q, g.ID, g.Title, g.Description, g.ImageURL, g.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("updating study group %d: %w", g.ID, err)
	}
	return requireRow(res, g.ID)
}

// AddMembership inserts m if the group is live. A second row for the same
// member is rejected by the primary key.
func (r *Repository) AddMembership(ctx context.Context, m studygroup.Membership) error {
	const q = `
		INSERT INTO study_group_members (study_group_id, member_id, role, created_at)
		SELECT $1, $2, $3, $4
		WHERE EXISTS (SELECT 1 FROM study_groups WHERE id = $1 AND deleted_at IS NULL)`

	res, err := r.db.ExecContext(ctx, q, m.StudyGroupID, m.MemberID, string(m.Role), m.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("membership (%d, %d): %w", m.StudyGroupID, m.MemberID, translateError(err))
	}
	return requireRow(res, m.StudyGroupID)
}

// DeleteStudyGroup tombstones the group and removes its memberships.
func (r *Repository) DeleteStudyGroup(ctx context.Context, id int64) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx,
		`UPDATE study_groups SET deleted_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("deleting study group %d: %w", id, err)
	}
	if err = requireRow(res, id); err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM study_group_members WHERE study_group_id = $1`, id); err != nil {
		return fmt.Errorf("deleting memberships of %d: %w", id, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing delete of %d: %w", id, err)
	}
	return nil
}

func requireRow(res sql.Result, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("study group %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func mbtiStrings(in []studygroup.MBTI) []string {
	out := make([]string, len(in))
	for i, m := range in {
		out[i] = string(m)
	}
	return out
}

func toMBTIs(in []string) []studygroup.MBTI {
	if len(in) == 0 {
		return nil
	}
	out := make([]studygroup.MBTI, len(in))
	for i, s := range in {
		out[i] = studygroup.MBTI(s)
	}
	return out
}

// normalizeTimes puts every timestamp in UTC; lib/pq returns the session zone.
func normalizeTimes(g *studygroup.StudyGroup) {
	g.StartDateTime = g.StartDateTime.UTC()
	g.EndDateTime = g.EndDateTime.UTC()
	g.CreatedAt = g.CreatedAt.UTC()
	g.UpdatedAt = g.UpdatedAt.UTC()
}
