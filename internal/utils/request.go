package utils

import (
	"bytes"
	"encoding/json"
	stdErrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gradwear/storefront/internal/errors"
	"github.com/gradwear/storefront/internal/utils/response"
)

// MaxBodyBytes bounds JSON request bodies. Multipart admin forms are parsed separately.
const MaxBodyBytes = 1 << 20

// ParseAndValidate decodes the JSON body into dest and runs the validator on it. On failure
// the error reply is already written and false is returned.
func ParseAndValidate(r *http.Request, w http.ResponseWriter, dest any, validate *validator.Validate) bool {

	if appErr := decodeJSONBody(w, r, dest); appErr != nil {
		slog.Warn("Invalid request body",
			slog.String("endpoint", r.URL.Path),
			slog.String("error", appErr.Error()))
		response.Error(w, appErr)
		return false
	}

	if err := validate.Struct(dest); err != nil {
		var validationErrs validator.ValidationErrors
		if stdErrors.As(err, &validationErrs) {
			slog.Warn("Validation failed",
				slog.String("endpoint", r.URL.Path),
				slog.String("error", validationErrs.Error()))
			response.ValidationError(w, validationErrs)
		} else {
			slog.Error("Unexpected validation error", slog.String("error", err.Error()))
			response.Error(w, errors.ValidationError("invalid input data").WithError(err))
		}
		return false
	}

	return true
}

func decodeJSONBody(w http.ResponseWriter, r *http.Request, dest any) *errors.AppError {
	defer r.Body.Close()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stdErrors.As(err, &tooLarge) {
			return errors.BadRequestError("Request body too large").WithError(err)
		}
		return errors.BadRequestError("Failed to read request body").WithError(err)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return errors.BadRequestError("Request body cannot be empty")
	}

	if err := json.Unmarshal(body, dest); err != nil {
		return errors.BadRequestError("Invalid JSON format").WithError(err)
	}

	return nil
}

// ParseID parses a positive integer path parameter.
func ParseID(r *http.Request, name string) (int64, error) {

	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.AddValidationError(name, "must be a positive integer")
	}

	return id, nil
}
