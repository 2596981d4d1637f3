package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestExecuteDbOperationSuccess(t *testing.T) {
	calls := 0
	result, err := ExecuteDbOperation(func() (interface{}, error) {
		calls++
		return "ok", nil
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestExecuteDbOperationStopsOnNonRetryable(t *testing.T) {
	calls := 0
	opErr := errors.New("duplicate key error")
	_, err := ExecuteDbOperation(func() (interface{}, error) {
		calls++
		return nil, opErr
	}, 3)

	assert.Equal(t, opErr, err)
	assert.Equal(t, 1, calls)
}

func TestExecuteDbOperationRetriesTransientError(t *testing.T) {
	calls := 0
	result, err := ExecuteDbOperation(func() (interface{}, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("connection refused")
		}
		return "ok", nil
	}, 3)

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 2, calls)
}

func TestIsRetryableError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"shutdown in progress", mongo.CommandError{Code: 91}, true},
		{"primary stepped down", mongo.CommandError{Code: 189}, true},
		{"duplicate key command", mongo.CommandError{Code: 11000, Message: "E11000 duplicate key"}, false},
		{"network refused", errors.New("connection refused"), true},
		{"server selection", errors.New("server selection error: context deadline exceeded"), true},
		{"plain failure", errors.New("document validation failed"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryableError(tt.err))
		})
	}
}
