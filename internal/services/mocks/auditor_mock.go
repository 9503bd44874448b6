// filepath: internal/services/mocks/auditor_mock.go
package mocks

import (
	"context"

	"focusboard/internal/logging/audit"

	"github.com/stretchr/testify/mock"
)

type MockAuditor struct {
	mock.Mock
}

var _ audit.Logger = (*MockAuditor)(nil)

func (m *MockAuditor) Log(ctx context.Context, action string, resource string, details map[string]interface{}) {
	m.Called(ctx, action, resource, details)
}
