package linkkeep

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
)

// AuthController serves signup and signin.
type AuthController struct {
	Auther Authenticator
	Logger Logger
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(auther Authenticator, opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Auther: auther,
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	return c
}

func WithAuthLogger(logger Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Logger = logger
		return c
	}
}

// CredentialsPayload is the signup/signin request body.
type CredentialsPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r CredentialsPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
		),
	)
}

// SignupPost handles POST /auth/signup. Validation rejects missing or
// malformed fields before any hashing occurs.
func (a *AuthController) SignupPost(c *fiber.Ctx) error {
	payload := new(CredentialsPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Debug("signup parse payload", "error", err)
		return badRequest(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Debug("signup validate payload", "error", err)
		return validationError(err)
	}

	user, err := a.Auther.SignUp(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(user)
}

// TokenResponse is the signin success body.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// SigninPost handles POST /auth/signin.
func (a *AuthController) SigninPost(c *fiber.Ctx) error {
	payload := new(CredentialsPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Debug("signin parse payload", "error", err)
		return badRequest(err, "failed to parse request body")
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Debug("signin validate payload", "error", err)
		return validationError(err)
	}

	token, err := a.Auther.SignIn(c.UserContext(), payload.Email, payload.Password)
	if err != nil {
		return err
	}

	return c.JSON(TokenResponse{AccessToken: token})
}
