package errs

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"not found", NotFound("owner", 7), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", NotFound("dog", 1)), http.StatusNotFound},
		{"constraint", Constraint("dog", "owner_id", "referenced owner does not exist"), http.StatusBadRequest},
		{"connection", Connection("open", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{"mapping", Mapping("walk", "date", errors.New("bad date")), http.StatusInternalServerError},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HTTPStatus(tc.err))
		})
	}
}

func TestConnectionError_UnwrapsCause(t *testing.T) {
	err := Connection("query owner", context.DeadlineExceeded)

	assert.ErrorIs(t, err, ErrConnection)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestConstraintError_Message(t *testing.T) {
	assert.Equal(t, "owner.email: value already exists", Constraint("owner", "email", "value already exists").Error())
	assert.Equal(t, "owner: still referenced by dog", Constraint("owner", "", "still referenced by dog").Error())

	var ce *ConstraintError
	assert.True(t, errors.As(fmt.Errorf("create: %w", Constraint("dog", "name", "is required")), &ce))
	assert.Equal(t, "name", ce.Field)
}
