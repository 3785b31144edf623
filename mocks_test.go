package authclient_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	authclient "github.com/goliatone/go-authclient"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService implements authclient.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, data authclient.RegistrationData) error {
	args := m.Called(ctx, data)
	return args.Error(0)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

// blockingAuthService parks Login until released, to exercise the
// re-entrancy guard around in-flight submissions.
type blockingAuthService struct {
	token   string
	started chan struct{}
	release chan struct{}
}

func newBlockingAuthService(token string) *blockingAuthService {
	return &blockingAuthService{
		token:   token,
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (s *blockingAuthService) Register(context.Context, authclient.RegistrationData) error {
	return nil
}

func (s *blockingAuthService) Login(context.Context, string, string) (string, error) {
	close(s.started)
	<-s.release
	return s.token, nil
}

// recordingNavigator captures every destination the subsystem requests.
type recordingNavigator struct {
	mu           sync.Mutex
	destinations []authclient.Destination
}

func (n *recordingNavigator) Navigate(destination authclient.Destination) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.destinations = append(n.destinations, destination)
}

func (n *recordingNavigator) visited() []authclient.Destination {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]authclient.Destination(nil), n.destinations...)
}

// recordingSink captures activity events.
type recordingSink struct {
	mu     sync.Mutex
	events []authclient.ActivityEvent
}

func (s *recordingSink) Record(_ context.Context, event authclient.ActivityEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) types() []authclient.ActivityEventType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]authclient.ActivityEventType, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.EventType)
	}
	return out
}

// makeToken signs a minimal credential carrying the given claims. The
// decoder never checks the signature, only the structure.
func makeToken(t *testing.T, subject, role string) string {
	t.Helper()

	claims := jwt.MapClaims{
		"iat": jwt.NewNumericDate(time.Now()),
		"exp": jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	if subject != "" {
		claims["sub"] = subject
		claims["uid"] = subject
	}
	if role != "" {
		claims["role"] = role
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}
