package linkkeep

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
)

// HTTPError is the JSON body every failed request renders.
type HTTPError struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
	Fields     any    `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns the single boundary translator mapping
// error kinds to status codes. Handlers and middleware return rich
// errors; nothing else in the service writes error responses.
func NewHTTPErrorHandler(logger Logger) fiber.ErrorHandler {
	if logger == nil {
		logger = defLogger{}
	}

	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if goerrors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(HTTPError{
				StatusCode: fiberErr.Code,
				Message:    fiberErr.Message,
				Error:      http.StatusText(fiberErr.Code),
			})
		}

		var richErr *goerrors.Error
		if !goerrors.As(err, &richErr) {
			richErr = goerrors.Wrap(err, goerrors.CategoryInternal, "an unexpected server error occurred").
				WithCode(goerrors.CodeInternal)
		}

		status := statusForError(richErr)

		if status >= http.StatusInternalServerError {
			logger.Error(
				"request failed",
				"error", richErr.Message,
				"category", richErr.Category,
				"path", c.Path(),
			)
		} else {
			logger.Debug(
				"request rejected",
				"error", richErr.Message,
				"category", richErr.Category,
				"path", c.Path(),
			)
		}

		body := HTTPError{
			StatusCode: status,
			Message:    richErr.Message,
			Error:      http.StatusText(status),
		}
		if fields, ok := richErr.Metadata["fields"]; ok {
			body.Fields = fields
		}

		return c.Status(status).JSON(body)
	}
}

func statusForError(richErr *goerrors.Error) int {
	if richErr.Code > 0 {
		return richErr.Code
	}

	switch richErr.Category {
	case goerrors.CategoryValidation, goerrors.CategoryBadInput:
		return http.StatusBadRequest
	case goerrors.CategoryAuth, goerrors.CategoryAuthz:
		return http.StatusUnauthorized
	case goerrors.CategoryConflict:
		return http.StatusConflict
	case goerrors.CategoryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(err error, msg string) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, msg).
		WithCode(goerrors.CodeBadRequest)
}

func validationError(err error) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid request payload").
		WithCode(goerrors.CodeBadRequest).
		WithMetadata(map[string]any{
			"fields": err.Error(),
		})
}
