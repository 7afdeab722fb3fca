package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lingorelay/internal/auth"
	apperrors "lingorelay/internal/errors"
	"lingorelay/internal/handler"
	"lingorelay/internal/model"
	"lingorelay/internal/repository"
	"lingorelay/internal/router"
	"lingorelay/internal/service"
)

// memUserRepo is an in-memory UserRepository with the same contract as the
// GORM implementation, unique email included.
type memUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return apperrors.ErrDuplicateEmail
	}
	user.CreatedAt = time.Now()
	stored := *user
	r.users[user.Email] = &stored
	return nil
}

func (r *memUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[email]; ok {
		user.LastLoginAt = &at
	}
	return nil
}

func (r *memUserRepo) lastLogin(email string) *time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	if user, ok := r.users[email]; ok {
		return user.LastLoginAt
	}
	return nil
}

// memHistoryRepo mirrors the owner-scoped semantics of the GORM repository.
type memHistoryRepo struct {
	mu      sync.Mutex
	records []model.TranslationRecord
}

var _ repository.HistoryRepository = (*memHistoryRepo)(nil)

func newMemHistoryRepo() *memHistoryRepo {
	return &memHistoryRepo{}
}

func (r *memHistoryRepo) Create(ctx context.Context, record *model.TranslationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	record.CreatedAt = time.Now()
	r.records = append(r.records, *record)
	return nil
}

func (r *memHistoryRepo) ListByOwner(ctx context.Context, owner string, limit int) ([]model.TranslationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.TranslationRecord
	for _, rec := range r.records {
		if rec.OwnerEmail == owner {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *memHistoryRepo) DeleteAllByOwner(ctx context.Context, owner string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []model.TranslationRecord
	var removed int64
	for _, rec := range r.records {
		if rec.OwnerEmail == owner {
			removed++
			continue
		}
		kept = append(kept, rec)
	}
	r.records = kept
	return removed, nil
}

func (r *memHistoryRepo) DeleteByIDAndOwner(ctx context.Context, id uuid.UUID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, rec := range r.records {
		if rec.ID == id && rec.OwnerEmail == owner {
			r.records = append(r.records[:i], r.records[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrHistoryNotFound
}

// stubTranslateService satisfies the relay interface for route wiring.
type stubTranslateService struct{}

func (stubTranslateService) Relay(ctx context.Context, payload []byte) (int, []byte, error) {
	return http.StatusOK, []byte(`{}`), nil
}

var _ service.TranslateService = stubTranslateService{}

// testApp wires the full router over in-memory stores.
type testApp struct {
	echo        *echo.Echo
	jwtService  *auth.JWTService
	userRepo    *memUserRepo
	historyRepo *memHistoryRepo
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	userRepo := newMemUserRepo()
	historyRepo := newMemHistoryRepo()
	jwtService := auth.NewJWTService("test-secret")

	authService := service.NewAuthService(userRepo, jwtService)
	historyService := service.NewHistoryService(historyRepo)

	e := echo.New()
	router.Register(
		e,
		jwtService,
		handler.NewAuthHandler(authService),
		handler.NewHistoryHandler(historyService),
		handler.NewTranslateHandler(stubTranslateService{}),
		handler.NewHealthHandler(nil),
	)
	return &testApp{echo: e, jwtService: jwtService, userRepo: userRepo, historyRepo: historyRepo}
}

func (a *testApp) request(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}
