package apperror

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorIsSentinel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		kind     Kind
	}{
		{"cancelled", Cancelled("authorize"), ErrAuthCancelled, KindAuthCancelled},
		{"auth failed", AuthFailed("exchange", io.EOF), ErrAuthFailed, KindAuthFailed},
		{"network", Network("fetch profile", io.ErrUnexpectedEOF), ErrNetwork, KindNetwork},
		{"parse", Parse("decode profile", io.EOF), ErrParse, KindParse},
		{"storage", Storage("set", io.EOF), ErrStorage, KindStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("outer: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.kind, KindOf(wrapped))
		})
	}
}

func TestErrorUnwrapsCause(t *testing.T) {
	err := Network("fetch profile", io.ErrUnexpectedEOF)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.NotErrorIs(t, err, ErrParse)
	assert.Equal(t, "fetch profile: unexpected EOF", err.Error())
}

func TestCancelledMessage(t *testing.T) {
	assert.Equal(t, "authorize: authorization cancelled", Cancelled("authorize").Error())
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "unknown", Kind(0).String())
	assert.Equal(t, "network", KindNetwork.String())
}
