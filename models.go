package linkkeep

import (
	"time"

	"github.com/uptrace/bun"
)

// User is the account model. The password hash never leaves the service;
// it is excluded from JSON at the boundary.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id"`
	Email         string     `bun:"email,notnull,unique" json:"email"`
	PasswordHash  string     `bun:"password_hash,notnull" json:"-"`
	FirstName     string     `bun:"first_name" json:"firstName,omitempty"`
	LastName      string     `bun:"last_name" json:"lastName,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt,omitempty"`

	Bookmarks []*Bookmark `bun:"rel:has-many,join:id=user_id" json:"-"`
}

// Bookmark belongs to exactly one user; every read and write is scoped
// by the owning user id.
type Bookmark struct {
	bun.BaseModel `bun:"table:bookmarks,alias:bmk"`
	ID            int64      `bun:"id,pk,autoincrement" json:"id"`
	UserID        int64      `bun:"user_id,notnull" json:"userId"`
	Title         string     `bun:"title,notnull" json:"title"`
	Link          string     `bun:"link,notnull" json:"link"`
	Description   string     `bun:"description" json:"description,omitempty"`
	CreatedAt     *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updatedAt,omitempty"`

	User *User `bun:"rel:belongs-to,join:user_id=id" json:"-"`
}
