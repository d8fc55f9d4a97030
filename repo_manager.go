package linkkeep

import (
	"errors"
	"log"

	"github.com/uptrace/bun"
)

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	Users() Users
	Bookmarks() Bookmarks
	Validate() error
	MustValidate()
}

type mngr struct {
	db        *bun.DB
	users     Users
	bookmarks Bookmarks
}

func NewRepositoryManager(db *bun.DB) RepositoryManager {
	return &mngr{
		db:        db,
		users:     NewUsersRepository(db),
		bookmarks: NewBookmarksRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.bookmarks == nil {
		return errors.New("repository bookmarks should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) Users() Users {
	return m.users
}

func (m mngr) Bookmarks() Bookmarks {
	return m.bookmarks
}
