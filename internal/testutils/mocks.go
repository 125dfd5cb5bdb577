package testutils

import (
	"context"
	"sync"
	"time"

	"github.com/jfgoncalves/morning-weather/internal/domain/entities"
	"github.com/jfgoncalves/morning-weather/internal/domain/ports"
	"github.com/stretchr/testify/mock"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context) (*entities.RawForecast, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RawForecast), args.Error(1)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *entities.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) Read(name string) ([]byte, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockAssetStore) Exists(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

type MockScheduler struct {
	mock.Mock
}

func (m *MockScheduler) Schedule(ctx context.Context, spec string, task ports.Task) error {
	args := m.Called(ctx, spec, task)
	return args.Error(0)
}

func (m *MockScheduler) Stop() {
	m.Called()
}

// RecordingSender keeps every email it is asked to send.
type RecordingSender struct {
	mu     sync.Mutex
	Err    error
	emails []*entities.Email
}

func (s *RecordingSender) Send(_ context.Context, email *entities.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = append(s.emails, email)
	return s.Err
}

func (s *RecordingSender) Emails() []*entities.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entities.Email(nil), s.emails...)
}

// FixedClock returns a ports.Clock frozen at t.
func FixedClock(t time.Time) ports.Clock {
	return func() time.Time { return t }
}
