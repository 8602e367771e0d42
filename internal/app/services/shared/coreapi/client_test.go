package coreapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

type sessionRepoStub struct {
	deletedSessionIDs []string
}

func (s *sessionRepoStub) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}
func (s *sessionRepoStub) Get(ctx context.Context, key string) (string, error) { return "", nil }
func (s *sessionRepoStub) Delete(ctx context.Context, key string) error       { return nil }
func (s *sessionRepoStub) CreateSession(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return nil
}
func (s *sessionRepoStub) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return nil, nil
}
func (s *sessionRepoStub) DeleteSession(ctx context.Context, sessionID string) error {
	s.deletedSessionIDs = append(s.deletedSessionIDs, sessionID)
	return nil
}
func (s *sessionRepoStub) SaveBooking(ctx context.Context, booking *models.BookingSession, ttl time.Duration) error {
	return nil
}
func (s *sessionRepoStub) GetBooking(ctx context.Context, bookingID string) (*models.BookingSession, error) {
	return nil, nil
}
func (s *sessionRepoStub) DeleteBooking(ctx context.Context, bookingID string) error { return nil }

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func newTestClient(serverURL string, sessions *sessionRepoStub) *Client {
	return &Client{
		BaseUrl:    serverURL,
		HttpClient: &http.Client{Timeout: 5 * time.Second},
		Limiter:    rate.NewLimiter(rate.Inf, 1),
		Sessions:   sessions,
		Log:        zap.NewNop(),
	}
}

func sessionContext(coreToken string) context.Context {
	return utils.ContextWithSession(context.Background(), &models.Session{
		ID:        "session-1",
		Role:      constvars.RoleDoctor,
		CoreToken: coreToken,
	})
}

func TestClientDo(t *testing.T) {
	t.Run("attaches bearer token from session", func(t *testing.T) {
		coreToken := signedToken(t, time.Now().Add(time.Hour))
		var gotAuthorization string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuthorization = r.Header.Get(constvars.HeaderAuthorization)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"ok":true}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, &sessionRepoStub{})
		var out struct {
			OK bool `json:"ok"`
		}
		err := client.Do(sessionContext(coreToken), constvars.MethodGet, "/api/test", nil, nil, &out)

		require.NoError(t, err)
		assert.True(t, out.OK)
		assert.Equal(t, constvars.BearerPrefix+coreToken, gotAuthorization)
	})

	t.Run("purges session when core token expired", func(t *testing.T) {
		coreToken := signedToken(t, time.Now().Add(-time.Hour))
		requestReachedServer := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestReachedServer = true
		}))
		defer server.Close()

		sessions := &sessionRepoStub{}
		client := newTestClient(server.URL, sessions)
		err := client.Do(sessionContext(coreToken), constvars.MethodGet, "/api/test", nil, nil, nil)

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, []string{"session-1"}, sessions.deletedSessionIDs)
		assert.False(t, requestReachedServer)
	})

	t.Run("maps 404 to not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"patient not found"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, &sessionRepoStub{})
		err := client.Do(context.Background(), constvars.MethodGet, "/api/patients/my", nil, nil, nil)

		require.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("recognizes duplicate feedback conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"message":"Feedback already submitted for this appointment"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, &sessionRepoStub{})
		err := client.Do(context.Background(), constvars.MethodPost, "/api/feedbacks", nil, map[string]interface{}{"rating": 5}, nil)

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientDuplicateFeedback, customErr.ClientMessage)
	})

	t.Run("keeps upstream message verbatim even with format verbs", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"token budget 100% consumed"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, &sessionRepoStub{})
		err := client.Do(context.Background(), constvars.MethodGet, "/api/auth/me", nil, nil, nil)

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Contains(t, customErr.DevMessage, "token budget 100% consumed")
	})

	t.Run("maps 401 to session ended", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"bad token"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL, &sessionRepoStub{})
		err := client.Do(context.Background(), constvars.MethodGet, "/api/auth/me", nil, nil, nil)

		require.Error(t, err)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("skips decoding on no content", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := newTestClient(server.URL, &sessionRepoStub{})
		var out map[string]interface{}
		err := client.Do(context.Background(), constvars.MethodDelete, "/api/hospitals/1", nil, nil, &out)

		require.NoError(t, err)
		assert.Nil(t, out)
	})
}
