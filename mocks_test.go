package linkkeep_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/linkkeep/linkkeep"
)

type MockUsers struct {
	mock.Mock
}

var _ linkkeep.Users = (*MockUsers)(nil)

func (m *MockUsers) Create(ctx context.Context, record *linkkeep.User) (*linkkeep.User, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkkeep.User), args.Error(1)
}

func (m *MockUsers) GetByEmail(ctx context.Context, email string) (*linkkeep.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkkeep.User), args.Error(1)
}

func (m *MockUsers) GetByID(ctx context.Context, id int64) (*linkkeep.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkkeep.User), args.Error(1)
}

func (m *MockUsers) Update(ctx context.Context, record *linkkeep.User, columns ...string) (*linkkeep.User, error) {
	args := m.Called(ctx, record, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkkeep.User), args.Error(1)
}

type MockBookmarks struct {
	mock.Mock
}

var _ linkkeep.Bookmarks = (*MockBookmarks)(nil)

func (m *MockBookmarks) ListByOwner(ctx context.Context, ownerID int64) ([]*linkkeep.Bookmark, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*linkkeep.Bookmark), args.Error(1)
}

func (m *MockBookmarks) GetByID(ctx context.Context, ownerID, id int64) (*linkkeep.Bookmark, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkkeep.Bookmark), args.Error(1)
}

func (m *MockBookmarks) Create(ctx context.Context, record *linkkeep.Bookmark) (*linkkeep.Bookmark, error) {
	args := m.Called(ctx, record)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkkeep.Bookmark), args.Error(1)
}

func (m *MockBookmarks) Update(ctx context.Context, record *linkkeep.Bookmark, columns ...string) (*linkkeep.Bookmark, error) {
	args := m.Called(ctx, record, columns)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkkeep.Bookmark), args.Error(1)
}

func (m *MockBookmarks) Delete(ctx context.Context, ownerID, id int64) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type MockRepositoryManager struct {
	mock.Mock
	users     *MockUsers
	bookmarks *MockBookmarks
}

var _ linkkeep.RepositoryManager = (*MockRepositoryManager)(nil)

func NewMockRepositoryManager() *MockRepositoryManager {
	return &MockRepositoryManager{
		users:     &MockUsers{},
		bookmarks: &MockBookmarks{},
	}
}

func (m *MockRepositoryManager) Users() linkkeep.Users {
	return m.users
}

func (m *MockRepositoryManager) Bookmarks() linkkeep.Bookmarks {
	return m.bookmarks
}

func (m *MockRepositoryManager) Validate() error {
	return nil
}

func (m *MockRepositoryManager) MustValidate() {}

type MockTokenService struct {
	mock.Mock
}

var _ linkkeep.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) Generate(user *linkkeep.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (linkkeep.AuthClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(linkkeep.AuthClaims), args.Error(1)
}
