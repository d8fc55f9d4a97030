package linkkeep

import (
	"context"
	"database/sql"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

// Bookmarks wraps the bookmark table. Every operation takes the owning
// user id; a row owned by another user behaves exactly like a missing row.
type Bookmarks interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*Bookmark, error)
	GetByID(ctx context.Context, ownerID, id int64) (*Bookmark, error)
	Create(ctx context.Context, record *Bookmark) (*Bookmark, error)
	Update(ctx context.Context, record *Bookmark, columns ...string) (*Bookmark, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

type bookmarks struct {
	db *bun.DB
}

var _ Bookmarks = (*bookmarks)(nil)

func NewBookmarksRepository(db *bun.DB) Bookmarks {
	return &bookmarks{db: db}
}

// ListByOwner returns the owner's bookmarks in insertion order. The
// result is never nil so an empty list serializes as [].
func (a *bookmarks) ListByOwner(ctx context.Context, ownerID int64) ([]*Bookmark, error) {
	records := make([]*Bookmark, 0)

	err := a.db.NewSelect().
		Model(&records).
		Where("?TableAlias.user_id = ?", ownerID).
		Order("id ASC").
		Scan(ctx)

	if err != nil {
		return nil, err
	}

	return records, nil
}

func (a *bookmarks) GetByID(ctx context.Context, ownerID, id int64) (*Bookmark, error) {
	record := &Bookmark{}

	err := a.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.user_id = ?", ownerID).
		Limit(1).
		Scan(ctx)

	if err != nil {
		if goerrors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookmarkNotFound.Clone().WithMetadata(map[string]any{
				"id": id,
			})
		}
		return nil, err
	}

	return record, nil
}

func (a *bookmarks) Create(ctx context.Context, record *Bookmark) (*Bookmark, error) {
	if _, err := a.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, err
	}
	return record, nil
}

// Update persists only the named columns, scoped by id and owner.
func (a *bookmarks) Update(ctx context.Context, record *Bookmark, columns ...string) (*Bookmark, error) {
	now := time.Now()
	record.UpdatedAt = &now
	columns = append(columns, "updated_at")

	res, err := a.db.NewUpdate().
		Model(record).
		Column(columns...).
		Where("?TableAlias.id = ?", record.ID).
		Where("?TableAlias.user_id = ?", record.UserID).
		Exec(ctx)

	if err != nil {
		return nil, err
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, ErrBookmarkNotFound.Clone().WithMetadata(map[string]any{
			"id": record.ID,
		})
	}

	return a.GetByID(ctx, record.UserID, record.ID)
}

// Delete removes the row scoped by id and owner. Deleting an id that is
// already gone reports not-found rather than success.
func (a *bookmarks) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := a.db.NewDelete().
		Model((*Bookmark)(nil)).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.user_id = ?", ownerID).
		Exec(ctx)

	if err != nil {
		return err
	}

	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return ErrBookmarkNotFound.Clone().WithMetadata(map[string]any{
			"id": id,
		})
	}

	return nil
}
