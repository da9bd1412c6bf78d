package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromErrorWrapsUnknown(t *testing.T) {
	appErr := FromError(fmt.Errorf("boom"))
	assert.Equal(t, ErrInternal.Code, appErr.Code)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Nil(t, FromError(nil))
}

func TestWrapAsMatchesBase(t *testing.T) {
	cause := errors.New("sheets unavailable")
	err := fmt.Errorf("list: %w", WrapAs(cause, ErrFetchCaseStudies))

	assert.True(t, errors.Is(err, ErrFetchCaseStudies))
	assert.True(t, errors.Is(err, cause))
	assert.False(t, errors.Is(err, ErrInvalidToken))
	assert.Equal(t, "Failed to fetch case studies", FromError(err).Message)
}

func TestCloneOverridesMessage(t *testing.T) {
	clone := Clone(ErrValidation, "unknown facet")
	assert.Equal(t, "unknown facet", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
	assert.True(t, errors.Is(clone, ErrValidation))
}
