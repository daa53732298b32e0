// Package entry implements journal entry persistence using PostgreSQL.
// Reward settlement writes are guarded on reward_status = 'PENDING' so a
// settled entry can never be written twice.
package entry

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/journalmind/journalmind-backend/internal/adapter/postgres"
	"github.com/journalmind/journalmind-backend/internal/domain"
)

const table = "entries"

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// selectColumns casts reward_amount to text so its full 78-digit range
// survives scanning without a numeric driver type.
var selectColumns = []string{
	"id", "user_id", "content", "media", "wallet_address", "created_at",
	"reward_status", "reward_amount::text AS reward_amount", "distributed_at",
}

// Repo provides journal entry persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new entry repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// entryRow mirrors one entries table row.
type entryRow struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	Content       string     `db:"content"`
	Media         []byte     `db:"media"`
	WalletAddress string     `db:"wallet_address"`
	CreatedAt     time.Time  `db:"created_at"`
	RewardStatus  string     `db:"reward_status"`
	RewardAmount  *string    `db:"reward_amount"`
	DistributedAt *time.Time `db:"distributed_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an entry by primary key.
// Returns domain.ErrNotFound if the entry does not exist.
func (r *Repo) GetByID(ctx context.Context, entryID uuid.UUID) (*domain.JournalEntry, error) {
	query := psql.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"id": entryID})

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get entry: %w", err)
	}

	var row entryRow
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "entry", entryID)
	}

	return toDomain(row)
}

// List returns a user's entries ordered by created_at DESC with pagination,
// plus the total count. An empty journal returns an empty slice.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*domain.JournalEntry, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.q)

	countSQL, countArgs, err := psql.Select("count(*)").From(table).
		Where(squirrel.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count entries: %w", err)
	}

	var total int
	if err := pgxscan.Get(ctx, q, &total, countSQL, countArgs...); err != nil {
		return nil, 0, fmt.Errorf("count entries: %w", err)
	}

	listSQL, listArgs, err := psql.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list entries: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, q, &rows, listSQL, listArgs...); err != nil {
		return nil, 0, fmt.Errorf("list entries: %w", err)
	}

	entries := make([]*domain.JournalEntry, 0, len(rows))
	for _, row := range rows {
		e, err := toDomain(row)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}

	return entries, total, nil
}

// GetPrevious returns the user's most recent entry created strictly before
// the given time, or nil if the entry is the user's first. Absence of a
// previous entry is a normal outcome, not an error.
func (r *Repo) GetPrevious(ctx context.Context, userID uuid.UUID, before time.Time) (*domain.JournalEntry, error) {
	query := psql.Select(selectColumns...).
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Lt{"created_at": before}).
		OrderBy("created_at DESC").
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get previous entry: %w", err)
	}

	var rows []entryRow
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Select(ctx, q, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("get previous entry: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	return toDomain(rows[0])
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new journal entry in the initial PENDING state with no
// reward amount. The id and creation time are assigned here unless the
// caller provided them.
func (r *Repo) Create(ctx context.Context, e *domain.JournalEntry) (*domain.JournalEntry, error) {
	media, err := json.Marshal(e.Media)
	if err != nil {
		return nil, fmt.Errorf("marshal media: %w", err)
	}

	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	createdAt := e.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query := psql.Insert(table).
		Columns("id", "user_id", "content", "media", "wallet_address", "created_at", "reward_status").
		Values(id, e.UserID, e.Content, media, e.WalletAddress, createdAt, domain.RewardStatusPending).
		Suffix("RETURNING " + joinColumns())

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert entry: %w", err)
	}

	var row entryRow
	q := postgres.QuerierFromCtx(ctx, r.q)
	if err := pgxscan.Get(ctx, q, &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "entry", id)
	}

	return toDomain(row)
}

// Guarded settlement updates. The reward_status predicate makes each write
// at-most-once: a second settlement attempt affects zero rows.
const (
	setRewardAmountSQL = `
UPDATE entries SET reward_amount = $2::numeric
WHERE id = $1 AND reward_status = 'PENDING'`

	settleApprovedSQL = `
UPDATE entries
SET reward_status = 'APPROVED', reward_amount = $2::numeric, distributed_at = $3
WHERE id = $1 AND reward_status = 'PENDING'`

	settleDeniedSQL = `
UPDATE entries
SET reward_status = 'DENIED', reward_amount = NULL
WHERE id = $1 AND reward_status = 'PENDING'`
)

// SetRewardAmount records the computed reward on a still-pending entry.
// Returns domain.ErrAlreadySettled if the entry has left PENDING.
func (r *Repo) SetRewardAmount(ctx context.Context, entryID uuid.UUID, amount *domain.TokenAmount) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := q.Exec(ctx, setRewardAmountSQL, entryID, amount.String())
	if err != nil {
		return postgres.MapError(err, "entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", entryID, domain.ErrAlreadySettled)
	}
	return nil
}

// SettleApproved moves a pending entry to APPROVED with the transferred
// amount and settlement time. Returns domain.ErrAlreadySettled if the entry
// was settled concurrently.
func (r *Repo) SettleApproved(ctx context.Context, entryID uuid.UUID, amount *domain.TokenAmount, distributedAt time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := q.Exec(ctx, settleApprovedSQL, entryID, amount.String(), distributedAt)
	if err != nil {
		return postgres.MapError(err, "entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", entryID, domain.ErrAlreadySettled)
	}
	return nil
}

// SettleDenied moves a pending entry to DENIED and clears the amount.
// Returns domain.ErrAlreadySettled if the entry was settled concurrently.
func (r *Repo) SettleDenied(ctx context.Context, entryID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.q)

	tag, err := q.Exec(ctx, settleDeniedSQL, entryID)
	if err != nil {
		return postgres.MapError(err, "entry", entryID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %s: %w", entryID, domain.ErrAlreadySettled)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func joinColumns() string {
	return "id, user_id, content, media, wallet_address, created_at, " +
		"reward_status, reward_amount::text AS reward_amount, distributed_at"
}

func toDomain(row entryRow) (*domain.JournalEntry, error) {
	e := &domain.JournalEntry{
		ID:            row.ID,
		UserID:        row.UserID,
		Content:       row.Content,
		WalletAddress: row.WalletAddress,
		CreatedAt:     row.CreatedAt,
		RewardStatus:  domain.RewardStatus(row.RewardStatus),
		DistributedAt: row.DistributedAt,
	}

	if len(row.Media) > 0 {
		if err := json.Unmarshal(row.Media, &e.Media); err != nil {
			return nil, fmt.Errorf("entry %s: unmarshal media: %w", row.ID, err)
		}
	}

	if row.RewardAmount != nil {
		amount, err := domain.ParseTokenAmount(*row.RewardAmount)
		if err != nil {
			return nil, fmt.Errorf("entry %s: reward amount: %w", row.ID, err)
		}
		e.RewardAmount = amount
	}

	return e, nil
}
