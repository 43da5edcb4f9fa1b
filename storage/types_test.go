package storage

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	plain := &Error{Type: ErrNotFound, Message: "event not found"}
	assert.Equal(t, "not_found: event not found", plain.Error())

	cause := errors.New("connection reset")
	wrapped := &Error{Type: ErrUnavailable, Message: "backend", Err: cause}
	assert.Equal(t, "unavailable: backend: connection reset", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(&Error{Type: ErrNotFound, Message: "gone"}))
	assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", &Error{Type: ErrNotFound, Message: "gone"})))
	assert.False(t, IsNotFound(&Error{Type: ErrInvalidInput, Message: "bad"}))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestEventPatch_IsEmpty(t *testing.T) {
	assert.True(t, EventPatch{}.IsEmpty())
	assert.False(t, EventPatch{Title: mo.Some("x")}.IsEmpty())
	// An explicitly cleared field still counts as a selected field
	assert.False(t, EventPatch{Location: mo.Some("")}.IsEmpty())
	assert.False(t, EventPatch{StartTime: mo.Some(time.Time{})}.IsEmpty())
}

func TestRulePatch_IsEmpty(t *testing.T) {
	assert.True(t, RulePatch{}.IsEmpty())
	assert.False(t, RulePatch{WeekFrequency: mo.Some(2)}.IsEmpty())
	assert.False(t, RulePatch{Days: mo.Some([7]bool{})}.IsEmpty())
}
