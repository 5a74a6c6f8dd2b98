package service

import (
	"github.com/gradwear/storefront/internal/errors"
	"github.com/microcosm-cc/bluemonday"
)

// free text typed by customers is stored and rendered back, strip any markup
var strictPolicy = bluemonday.StrictPolicy()

// backendError keeps AppErrors raised by the repositories and wraps anything else.
func backendError(err error, message string) error {
	if _, ok := errors.IsAppError(err); ok {
		return err
	}

	return errors.NetworkError(message).WithError(err)
}

func requireUser(userID int64) error {
	if userID <= 0 {
		return errors.AuthRequiredError("Sign in to continue")
	}

	return nil
}
