package procsync

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultString(t *testing.T) {
	assert.Equal(t, "Success", ResultSuccess.String())
	assert.Equal(t, "NotReady", ResultNotReady.String())
	assert.Equal(t, "Error", ResultError.String())
	assert.Equal(t, "InvalidParameter", ResultInvalidParameter.String())
	assert.Equal(t, "Unavailable", ResultUnavailable.String())
	assert.Equal(t, "FileNotFound", ResultFileNotFound.String())
	assert.Equal(t, "FileIoError", ResultFileIoError.String())
	assert.Equal(t, "Unknown", Result(99).String())
}

func TestResultErr(t *testing.T) {
	if err := ResultSuccess.Err(); err != nil {
		t.Fatalf("Success.Err() = %v, want nil", err)
	}
	assert.True(t, errors.Is(ResultNotReady.Err(), ErrNotReady))
	assert.True(t, errors.Is(ResultError.Err(), ErrOperationFailed))
	assert.True(t, errors.Is(ResultInvalidParameter.Err(), ErrInvalidParameter))
	assert.True(t, errors.Is(ResultUnavailable.Err(), ErrUnavailable))
	assert.True(t, errors.Is(ResultFileNotFound.Err(), ErrFileNotFound))
	assert.True(t, errors.Is(ResultFileIoError.Err(), ErrFileIo))
	assert.True(t, ResultSuccess.IsSuccess())
	assert.False(t, ResultNotReady.IsSuccess())
}
