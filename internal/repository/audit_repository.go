package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/account-console/internal/domain"
)

// AuditRepository persists session audit entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.AuditEntry, error)
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository returns a Postgres-backed implementation.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	const query = `
        INSERT INTO session_audit (id, session_id, kind, role, token_fingerprint, detail)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING created_at`

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	var role *string
	if entry.Role != nil {
		r := string(*entry.Role)
		role = &r
	}
	return r.pool.QueryRow(ctx, query,
		entry.ID,
		entry.SessionID,
		entry.Kind,
		role,
		entry.TokenFingerprint,
		entry.Detail,
	).Scan(&entry.CreatedAt)
}

func (r *auditRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.AuditEntry, error) {
	const query = `
        SELECT id, session_id, kind, role, token_fingerprint, detail, created_at
        FROM session_audit WHERE session_id=$1
        ORDER BY created_at DESC
        LIMIT $2`

	if limit <= 0 || limit > 200 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, query, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AuditEntry
	for rows.Next() {
		var (
			e    domain.AuditEntry
			role *string
		)
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Kind, &role, &e.TokenFingerprint, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		if role != nil {
			r := domain.Role(*role)
			e.Role = &r
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
