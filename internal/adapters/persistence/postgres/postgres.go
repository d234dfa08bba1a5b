// Package postgres provides the StudyGroupRepository backed by PostgreSQL
// through database/sql and lib/pq. Deleted groups are kept as tombstones
// (deleted_at set) and are invisible to every read.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/jsamuelsen11/stuti-api/internal/domain"
	"github.com/jsamuelsen11/stuti-api/internal/platform/config"
)

// SQLSTATE codes translated to domain errors.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// Open connects to cfg.DSN, applies the pool settings and verifies the
// connection with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS study_groups (
	id                 BIGSERIAL PRIMARY KEY,
	title              VARCHAR(50)  NOT NULL,
	description        TEXT         NOT NULL,
	image_url          TEXT         NOT NULL DEFAULT '',
	topic              VARCHAR(32)  NOT NULL,
	is_online          BOOLEAN      NOT NULL,
	region             VARCHAR(32)  NOT NULL,
	preferred_mbtis    TEXT[]       NOT NULL DEFAULT '{}',
	number_of_recruits INTEGER      NOT NULL,
	start_date_time    TIMESTAMPTZ  NOT NULL,
	end_date_time      TIMESTAMPTZ  NOT NULL,
	leader_id          BIGINT       NOT NULL,
	created_at         TIMESTAMPTZ  NOT NULL,
	updated_at         TIMESTAMPTZ  NOT NULL,
	deleted_at         TIMESTAMPTZ
);
CREATE INDEX IF NOT EXISTS idx_study_groups_leader_id ON study_groups(leader_id);

CREATE TABLE IF NOT EXISTS study_group_members (
	study_group_id BIGINT      NOT NULL REFERENCES study_groups(id),
	member_id      BIGINT      NOT NULL,
	role           VARCHAR(16) NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL,
	PRIMARY KEY (study_group_id, member_id)
);
CREATE INDEX IF NOT EXISTS idx_study_group_members_member_id ON study_group_members(member_id);
`

// InitSchema creates the tables if they do not exist yet.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating study group schema: %w", err)
	}
	return nil
}

// translateError maps driver errors onto domain sentinels. Errors it does
// not recognise are returned unchanged.
func translateError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrConflict)
	case codeForeignKeyViolation:
		return fmt.Errorf("%s: %w", pqErr.Message, domain.ErrNotFound)
	default:
		return err
	}
}
