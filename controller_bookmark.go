package linkkeep

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

// BookmarkController serves the caller's bookmark collection. The guard
// supplies the owning user id; every repository call is scoped by it.
type BookmarkController struct {
	Repo   RepositoryManager
	Logger Logger
}

func NewBookmarkController(repo RepositoryManager, logger Logger) *BookmarkController {
	if logger == nil {
		logger = defLogger{}
	}
	return &BookmarkController{Repo: repo, Logger: logger}
}

// GetAll handles GET /bookmark/getall, insertion order, [] when none.
func (a *BookmarkController) GetAll(c *fiber.Ctx) error {
	id, err := callerID(c)
	if err != nil {
		return err
	}

	records, err := a.Repo.Bookmarks().ListByOwner(c.UserContext(), id)
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// GetByID handles GET /bookmark/:id. A foreign-owned id is not found.
func (a *BookmarkController) GetByID(c *fiber.Ctx) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(err, "bookmark id must be numeric")
	}

	record, err := a.Repo.Bookmarks().GetByID(c.UserContext(), ownerID, int64(id))
	if err != nil {
		return err
	}

	return c.JSON(record)
}

// CreateBookmarkPayload is the creation body.
type CreateBookmarkPayload struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Validate will run validation rules
func (r CreateBookmarkPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 500)),
		validation.Field(&r.Link, validation.Required, is.URL),
	)
}

// Create handles POST /bookmark.
func (a *BookmarkController) Create(c *fiber.Ctx) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	payload := new(CreateBookmarkPayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Debug("bookmark create parse payload", "error", err)
		return badRequest(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Debug("bookmark create validate payload", "error", err)
		return validationError(err)
	}

	record := &Bookmark{
		UserID:      ownerID,
		Title:       payload.Title,
		Link:        payload.Link,
		Description: payload.Description,
	}

	created, err := a.Repo.Bookmarks().Create(c.UserContext(), record)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// EditBookmarkPayload is a partial update; nil fields stay unchanged.
type EditBookmarkPayload struct {
	Title       *string `json:"title"`
	Link        *string `json:"link"`
	Description *string `json:"description"`
}

// Validate will run validation rules
func (r EditBookmarkPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Length(1, 500)),
		validation.Field(&r.Link, is.URL),
	)
}

// EditPatch handles PATCH /bookmark/:id, scoped by id and owner.
func (a *BookmarkController) EditPatch(c *fiber.Ctx) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(err, "bookmark id must be numeric")
	}

	payload := new(EditBookmarkPayload)
	if err := c.BodyParser(payload); err != nil {
		a.Logger.Debug("bookmark edit parse payload", "error", err)
		return badRequest(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Debug("bookmark edit validate payload", "error", err)
		return validationError(err)
	}

	record, err := a.Repo.Bookmarks().GetByID(c.UserContext(), ownerID, int64(id))
	if err != nil {
		return err
	}

	columns := make([]string, 0, 3)
	if payload.Title != nil {
		record.Title = *payload.Title
		columns = append(columns, "title")
	}
	if payload.Link != nil {
		record.Link = *payload.Link
		columns = append(columns, "link")
	}
	if payload.Description != nil {
		record.Description = *payload.Description
		columns = append(columns, "description")
	}

	if len(columns) == 0 {
		return c.JSON(record)
	}

	updated, err := a.Repo.Bookmarks().Update(c.UserContext(), record, columns...)
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// Delete handles DELETE /bookmark/:id; deleting an already-gone id
// reports not-found, not success.
func (a *BookmarkController) Delete(c *fiber.Ctx) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(err, "bookmark id must be numeric")
	}

	if err := a.Repo.Bookmarks().Delete(c.UserContext(), ownerID, int64(id)); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}
