package testutil

import (
	"context"
	"insightd/internal/ai"
	"insightd/internal/models"
	"insightd/internal/providers"
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

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu              sync.Mutex
	Requests        int
	CacheHits       int
	CacheMisses     int
	Persists        int
	AIOutcomes      map[string]int // "operation/outcome"
	AIObservations  int
	ReqObservations int
}

func NewMockMetrics() *MockMetrics {
	return &MockMetrics{AIOutcomes: make(map[string]int)}
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}

func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReqObservations++
}

func (m *MockMetrics) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHits++
}

func (m *MockMetrics) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMisses++
}

func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Persists++
}

func (m *MockMetrics) IncAIRequests(operation, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AIOutcomes[operation+"/"+outcome]++
}

func (m *MockMetrics) ObserveAIDuration(_ string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AIObservations++
}

// MockCache implements providers.CacheProviderInterface.
type MockCache struct {
	mu   sync.Mutex
	Data map[string][]byte
}

func NewMockCache() *MockCache {
	return &MockCache{Data: make(map[string][]byte)}
}

func (m *MockCache) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.Data[key]
	return val, ok
}

func (m *MockCache) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Data[key] = value
}

func (m *MockCache) Del(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Data, key)
}

// MockCompressor implements interfaces.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockAnalyzer implements ai.Analyzer with injectable behavior.
type MockAnalyzer struct {
	ExtractFn func(ctx context.Context, data []byte, mimeType string) (*ai.InsightExtraction, error)
	AnalyzeFn func(ctx context.Context, data []byte, mimeType string) (*ai.VideoAnalysis, error)
}

func (m *MockAnalyzer) ExtractInsight(ctx context.Context, data []byte, mimeType string) (*ai.InsightExtraction, error) {
	if m.ExtractFn != nil {
		return m.ExtractFn(ctx, data, mimeType)
	}
	return &ai.InsightExtraction{}, nil
}

func (m *MockAnalyzer) AnalyzeVideo(ctx context.Context, data []byte, mimeType string) (*ai.VideoAnalysis, error) {
	if m.AnalyzeFn != nil {
		return m.AnalyzeFn(ctx, data, mimeType)
	}
	return &ai.VideoAnalysis{}, nil
}

// MockInsightService implements services.InsightServiceInterface over a
// plain slice, with no persistence side effects.
type MockInsightService struct {
	mu           sync.Mutex
	Records      []models.InsightRecord
	AddErr       error
	RemoveErr    error
	AddCalls     int
	RemoveCalls  int
	PersistCalls int
}

func (m *MockInsightService) Add(rec models.InsightRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AddCalls++
	if m.AddErr != nil {
		return m.AddErr
	}
	m.Records = append(m.Records, rec)
	return nil
}

func (m *MockInsightService) Remove(id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemoveCalls++
	if m.RemoveErr != nil {
		return false, m.RemoveErr
	}
	for i, rec := range m.Records {
		if rec.ID == id {
			m.Records = append(m.Records[:i], m.Records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (m *MockInsightService) List() []models.InsightRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]models.InsightRecord, len(m.Records))
	copy(result, m.Records)
	return result
}

func (m *MockInsightService) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Records)
}

func (m *MockInsightService) Persist() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistCalls++
	return nil
}
