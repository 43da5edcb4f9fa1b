package storage

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockStore implements the Store interface for testing
type MockStore struct {
	mock.Mock
}

// GetCalendarID implements the Store interface
func (m *MockStore) GetCalendarID(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

// ListEvents implements the Store interface
func (m *MockStore) ListEvents(ctx context.Context, calendarID string) ([]Event, error) {
	args := m.Called(ctx, calendarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

// FindEventsByTitle implements the Store interface
func (m *MockStore) FindEventsByTitle(ctx context.Context, calendarID, title string) ([]Event, error) {
	args := m.Called(ctx, calendarID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Event), args.Error(1)
}

// GetEvent implements the Store interface
func (m *MockStore) GetEvent(ctx context.Context, eventID string) (*Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Event), args.Error(1)
}

// ListRules implements the Store interface
func (m *MockStore) ListRules(ctx context.Context, calendarID string) ([]RecurrenceRule, error) {
	args := m.Called(ctx, calendarID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RecurrenceRule), args.Error(1)
}

// FindRulesByTitle implements the Store interface
func (m *MockStore) FindRulesByTitle(ctx context.Context, calendarID, title string) ([]RecurrenceRule, error) {
	args := m.Called(ctx, calendarID, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]RecurrenceRule), args.Error(1)
}

// GetRule implements the Store interface
func (m *MockStore) GetRule(ctx context.Context, ruleID string) (*RecurrenceRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*RecurrenceRule), args.Error(1)
}

// PatchEvent implements the Store interface
func (m *MockStore) PatchEvent(ctx context.Context, eventID string, patch EventPatch) error {
	args := m.Called(ctx, eventID, patch)
	return args.Error(0)
}

// PatchRule implements the Store interface
func (m *MockStore) PatchRule(ctx context.Context, ruleID string, patch RulePatch) error {
	args := m.Called(ctx, ruleID, patch)
	return args.Error(0)
}
