package linkkeep

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/linkkeep/linkkeep/middleware/jwtware"
)

// tokenValidatorAdapter narrows TokenService to the middleware's
// validator contract.
type tokenValidatorAdapter struct {
	tokens TokenService
}

func (a tokenValidatorAdapter) Validate(raw string) (jwtware.AuthClaims, error) {
	claims, err := a.tokens.Validate(raw)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// RegisterRoutes declares the full routing table. Signup/signin are
// public; every user and bookmark route sits behind the guard.
func RegisterRoutes(app *fiber.App, repo RepositoryManager, auther Authenticator, tokens TokenService, logger Logger) {
	if logger == nil {
		logger = defLogger{}
	}

	authController := NewAuthController(auther, WithAuthLogger(logger))
	userController := NewUserController(repo, logger)
	bookmarkController := NewBookmarkController(repo, logger)

	guard := jwtware.New(jwtware.Config{
		TokenValidator: tokenValidatorAdapter{tokens: tokens},
		ContextEnricher: func(ctx context.Context, claims jwtware.AuthClaims) context.Context {
			id, err := claims.UserID()
			if err != nil {
				return ctx
			}
			return WithUserID(ctx, id)
		},
	})

	app.Post("/auth/signup", authController.SignupPost)
	app.Post("/auth/signin", authController.SigninPost)

	user := app.Group("/user", guard)
	user.Get("/me", userController.MeGet)
	user.Patch("/edit", userController.EditPatch)

	bookmark := app.Group("/bookmark", guard)
	bookmark.Get("/getall", bookmarkController.GetAll)
	bookmark.Post("/", bookmarkController.Create)
	bookmark.Get("/:id", bookmarkController.GetByID)
	bookmark.Patch("/:id", bookmarkController.EditPatch)
	bookmark.Delete("/:id", bookmarkController.Delete)
}
