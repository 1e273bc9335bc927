package testutil

import (
	"context"
	"guildpreview/internal/models"
	"guildpreview/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MockMetrics implements providers.MetricsProviderInterface.
type MockMetrics struct {
	mu               sync.Mutex
	Requests         map[string]int
	UpstreamStatuses []int
	Throttled        int
	Rendered         int
	Dropped          int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{Requests: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(endpoint string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests[endpoint]++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncUpstreamRequests(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpstreamStatuses = append(m.UpstreamStatuses, status)
}
func (m *MockMetrics) ObserveUpstreamDuration(_ time.Duration) {}
func (m *MockMetrics) IncThrottled() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Throttled++
}
func (m *MockMetrics) ObserveChannels(rendered int, dropped int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rendered += rendered
	m.Dropped += dropped
}

// MockClient implements upstream.ClientInterface.
type MockClient struct {
	mu       sync.Mutex
	Template *models.Template
	Err      error
	Calls    []string
}

func (m *MockClient) FetchTemplate(_ context.Context, templateID string) (*models.Template, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, templateID)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Template, nil
}

// MockTemplateService implements services.TemplateServiceInterface.
type MockTemplateService struct {
	mu     sync.Mutex
	Result *models.TemplateResult
	Err    error
	Calls  []string
}

func (m *MockTemplateService) GetTemplate(_ context.Context, templateID string) (*models.TemplateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, templateID)
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

// SampleTemplate is a small but complete template used across tests.
func SampleTemplate() *models.Template {
	general := int64(1)
	return &models.Template{
		Code:        "hgM48av5Q69A",
		Name:        "Study Group",
		Description: "A place to **study** together",
		Roles: []models.RoleRecord{
			{ID: 0, Name: "@everyone", Color: 0},
			{ID: 1, Name: "Moderator", Color: 0x1abc9c},
		},
		Channels: []models.ChannelRecord{
			{ID: 1, Name: "General", ParentID: nil, Position: 0},
			{ID: 2, Name: "Voice", ParentID: &general, Position: 1},
			{ID: 3, Name: "Orphan", ParentID: ptr(99), Position: 2},
		},
	}
}

func ptr(v int64) *int64 { return &v }
