package handlers

import (
	"context"

	"svt_viewer/internal/models"
	"svt_viewer/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockCatalog struct {
	snap       models.Snapshot
	listErr    error
	thermostat models.Thermostat
	getErr     error
	refreshErr error

	lastGetID    int
	refreshCalls int
}

func (m *mockCatalog) List(ctx context.Context) (models.Snapshot, error) {
	return m.snap, m.listErr
}
func (m *mockCatalog) Get(ctx context.Context, id int) (models.Thermostat, error) {
	m.lastGetID = id
	return m.thermostat, m.getErr
}
func (m *mockCatalog) Refresh(ctx context.Context) (models.Snapshot, error) {
	m.refreshCalls++
	if m.refreshErr != nil {
		return models.Snapshot{}, m.refreshErr
	}
	return m.snap, nil
}

type mockDiagnostics struct {
	resp       []models.Diagnostic
	err        error
	lastFilter service.DiagnosticFilter
	calls      int
}

func (m *mockDiagnostics) List(ctx context.Context, f service.DiagnosticFilter) ([]models.Diagnostic, error) {
	m.calls++
	m.lastFilter = f
	return m.resp, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}
