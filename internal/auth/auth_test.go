package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"Spectra/internal/repo"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type memRepo struct {
	mu    sync.Mutex
	users map[string]string
	ids   map[string]int
	fail  error
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]string{}, ids: map[string]int{}}
}

func (m *memRepo) CreateUser(_ context.Context, login, _, hash string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return 0, m.fail
	}
	if _, ok := m.users[login]; ok {
		return 0, errors.New("duplicate login")
	}
	m.users[login] = hash
	m.ids[login] = len(m.ids) + 1
	return m.ids[login], nil
}

func (m *memRepo) GetByLogin(_ context.Context, login string) (int, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail != nil {
		return 0, "", m.fail
	}
	hash, ok := m.users[login]
	if !ok {
		return 0, "", repo.ErrNotFound
	}
	return m.ids[login], hash, nil
}

func newEnv(clock clockwork.Clock) *Authenv {
	return &Authenv{JWTKey: []byte("test-key"), Repo: newMemRepo(), Clock: clock}
}

func post(h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	return rec
}

func TestRegisterAndLogin(t *testing.T) {
	env := newEnv(clockwork.NewFakeClock())

	rec := post(env.RegisterHandler, `{"login":" alice ","email":"a@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var tr tokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tr))
	assert.Equal(t, "alice", tr.Login)
	assert.NotEmpty(t, tr.Token)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)

	rec = post(env.RegisterHandler, `{"login":"alice","email":"a@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = post(env.LoginHandler, `{"login":"alice","password":"secret1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = post(env.LoginHandler, `{"login":"alice","password":"wrong-pass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = post(env.LoginHandler, `{"login":"bob","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := newEnv(nil)
	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"missing email", `{"login":"a","password":"secret1"}`},
		{"short password", `{"login":"a","email":"a@b.c","password":"12345"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusBadRequest, post(env.RegisterHandler, tt.body).Code)
		})
	}
}

func TestLoginRepoError(t *testing.T) {
	env := newEnv(nil)
	env.Repo.(*memRepo).fail = errors.New("connection refused")
	rec := post(env.LoginHandler, `{"login":"a","password":"secret1"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestTokenExpiry(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	env := newEnv(clock)

	token, expires, err := env.IssueToken(7, "alice")
	require.NoError(t, err)
	assert.Equal(t, clock.Now().Add(TokenTTL), expires)

	claims, err := env.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "alice", claims.Login)

	clock.Advance(TokenTTL + time.Minute)
	_, err = env.ParseToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	other := &Authenv{JWTKey: []byte("other-key"), Clock: clock}
	token, _, err = other.IssueToken(1, "eve")
	require.NoError(t, err)
	_, err = env.ParseToken(token)
	assert.Error(t, err)
}

func TestAuthMiddleware(t *testing.T) {
	env := newEnv(clockwork.NewFakeClock())
	token, _, err := env.IssueToken(3, "carol")
	require.NoError(t, err)

	var gotID int
	var gotLogin string
	h := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotLogin, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name string
		set  func(r *http.Request)
		want int
	}{
		{"no credentials", func(r *http.Request) {}, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }, http.StatusNoContent},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: CookieName, Value: token}) }, http.StatusNoContent},
		{"garbage", func(r *http.Request) { r.Header.Set("Authorization", "Bearer abc.def.ghi") }, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.set(req)
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
	assert.Equal(t, 3, gotID)
	assert.Equal(t, "carol", gotLogin)
}

func TestUserFromContextEmpty(t *testing.T) {
	_, _, ok := UserFromContext(context.Background())
	assert.False(t, ok)

	rec := httptest.NewRecorder()
	newEnv(nil).MeHandler(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestIPRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(rate.Limit(0.001), 2)
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, do("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:1002"))
	assert.Equal(t, http.StatusOK, do("10.0.0.2:1000"))
}

func TestIPRateLimiterEvictsIdleClients(t *testing.T) {
	clock := clockwork.NewFakeClock()
	l := newIPRateLimiter(rate.Limit(1), 1, time.Minute, clock)

	l.getLimiter("10.0.0.1")
	l.getLimiter("10.0.0.2")
	assert.Equal(t, 2, l.Len())

	clock.Advance(30 * time.Second)
	l.getLimiter("10.0.0.2")
	assert.Equal(t, 2, l.Len())

	clock.Advance(40 * time.Second)
	l.getLimiter("10.0.0.3")
	assert.Equal(t, 2, l.Len(), "10.0.0.1 idle past the TTL is dropped")

	clock.Advance(2 * time.Minute)
	l.getLimiter("10.0.0.3")
	assert.Equal(t, 1, l.Len())
}
