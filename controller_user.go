package linkkeep

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
)

// UserController serves the authenticated user's own profile.
type UserController struct {
	Repo   RepositoryManager
	Logger Logger
}

func NewUserController(repo RepositoryManager, logger Logger) *UserController {
	if logger == nil {
		logger = defLogger{}
	}
	return &UserController{Repo: repo, Logger: logger}
}

// callerID reads the user id the guard attached to the request context.
func callerID(c *fiber.Ctx) (int64, error) {
	id, ok := UserIDFromContext(c.UserContext())
	if !ok {
		return 0, goerrors.New("missing authenticated user in context", goerrors.CategoryAuth).
			WithCode(goerrors.CodeUnauthorized)
	}
	return id, nil
}

// MeGet handles GET /user/me.
func (a *UserController) MeGet(c *fiber.Ctx) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	user, err := a.Repo.Users().GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(user)
}

// EditUserPayload is a partial profile update; nil fields stay unchanged.
type EditUserPayload struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}

// Validate will run validation rules
func (r EditUserPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, is.Email),
		validation.Field(&r.FirstName, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Length(1, 200)),
	)
}

// EditPatch handles PATCH /user/edit on the caller's own row only.
func (a *UserController) EditPatch(c *fiber.Ctx) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	payload := new(EditUserPayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Debug("user edit parse payload", "error", err)
		return badRequest(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Debug("user edit validate payload", "error", err)
		return validationError(err)
	}

	user, err := a.Repo.Users().GetByID(c.UserContext(), id)
	if err != nil {
		return err
	}

	columns := make([]string, 0, 3)
	if payload.FirstName != nil {
		user.FirstName = *payload.FirstName
		columns = append(columns, "first_name")
	}
	if payload.LastName != nil {
		user.LastName = *payload.LastName
		columns = append(columns, "last_name")
	}
	if payload.Email != nil {
		user.Email = *payload.Email
		columns = append(columns, "email")
	}

	if len(columns) == 0 {
		return c.JSON(user)
	}

	updated, err := a.Repo.Users().Update(c.UserContext(), user, columns...)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}
