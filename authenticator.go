package linkkeep

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Auther orchestrates signup and signin against the user repository,
// the password hasher, and the token service.
type Auther struct {
	repo   RepositoryManager
	tokens TokenService
	logger Logger
}

var _ Authenticator = (*Auther)(nil)

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(repo RepositoryManager, tokens TokenService) *Auther {
	return &Auther{
		repo:   repo,
		tokens: tokens,
		logger: defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// SignUp hashes the password and persists a new user. A unique-email
// violation surfaces as ErrCredentialsTaken; any other storage failure
// propagates unchanged.
func (s *Auther) SignUp(ctx context.Context, email, password string) (*User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return nil, richErr
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
	}

	user := &User{
		Email:        email,
		PasswordHash: hash,
	}

	created, err := s.repo.Users().Create(ctx, user)
	if err != nil {
		if IsUniqueViolation(err) {
			s.logger.Info("SignUp rejected duplicate email", "email", email)
			return nil, ErrCredentialsTaken
		}
		s.logger.Error("SignUp create user error", "error", err)
		return nil, err
	}

	return created, nil
}

// SignIn verifies the credentials and mints an access token. An unknown
// email and a password mismatch produce the same failure so callers
// cannot enumerate accounts.
func (s *Auther) SignIn(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.Users().GetByEmail(ctx, email)
	if err != nil {
		if IsRecordNotFound(err) {
			s.logger.Info("SignIn unknown email", "email", email)
			return "", ErrIncorrectCredentials
		}
		s.logger.Error("SignIn lookup error", "error", err)
		return "", err
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		s.logger.Info("SignIn password mismatch", "email", email)
		return "", ErrIncorrectCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("SignIn token generation error", "error", err)
		return "", err
	}

	return token, nil
}
