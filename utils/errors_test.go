package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageWithDetails(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal("Could not save friend list", cause)

	assert.Equal(t, "Could not save friend list. Details => connection refused", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestErrorMessageWithoutDetails(t *testing.T) {
	err := NotFound("User Mouss does not exist", nil)
	assert.Equal(t, "User Mouss does not exist", err.Error())
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("while accepting: %w", Conflict("Users are already friends", nil))
	assert.Equal(t, KindConflict, KindOf(err))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
}

func TestHTTPStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("x", nil)))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("x", nil)))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(BadRequest("x", nil)))
	assert.Equal(t, http.StatusUnauthorized, HTTPStatus(Unauthorized("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Internal("x", nil)))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("boom")))
}
