package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/service"
	"github.com/MKhiriev/go-contact-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services shared by the handler tests
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, user models.User) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, user models.User) (models.User, error) {
	return m.loginFn(ctx, user)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockContactService implements service.ContactService for unit tests.
type mockContactService struct {
	getStatesFn        func(ctx context.Context, userID int64) ([]models.ContactState, error)
	uploadContactsFn   func(ctx context.Context, req models.UploadRequest) error
	downloadContactsFn func(ctx context.Context, req models.DownloadRequest) ([]models.ContactRecord, error)
	updateContactsFn   func(ctx context.Context, req models.UpdateRequest) error
	deleteContactsFn   func(ctx context.Context, req models.DeleteRequest) error
	undeleteContactsFn func(ctx context.Context, req models.UndeleteRequest) error
}

func (m *mockContactService) GetStates(ctx context.Context, userID int64) ([]models.ContactState, error) {
	return m.getStatesFn(ctx, userID)
}

func (m *mockContactService) UploadContacts(ctx context.Context, req models.UploadRequest) error {
	return m.uploadContactsFn(ctx, req)
}

func (m *mockContactService) DownloadContacts(ctx context.Context, req models.DownloadRequest) ([]models.ContactRecord, error) {
	return m.downloadContactsFn(ctx, req)
}

func (m *mockContactService) UpdateContacts(ctx context.Context, req models.UpdateRequest) error {
	return m.updateContactsFn(ctx, req)
}

func (m *mockContactService) DeleteContacts(ctx context.Context, req models.DeleteRequest) error {
	return m.deleteContactsFn(ctx, req)
}

func (m *mockContactService) UndeleteContacts(ctx context.Context, req models.UndeleteRequest) error {
	return m.undeleteContactsFn(ctx, req)
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	require.NotNil(t, h)
}

func TestNewHandler_StoresServices(t *testing.T) {
	svc := &service.Services{}
	h := NewHandler(svc, logger.Nop())

	assert.Equal(t, svc, h.services)
}

func TestNewHandler_StoresLogger(t *testing.T) {
	log := logger.Nop()
	h := NewHandler(&service.Services{}, log)

	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	return NewHandler(&service.Services{}, logger.Nop())
}

func TestInit_ReturnsRouter(t *testing.T) {
	router := newTestHandler(t).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// expectedRoutes lists every route that Init() must register.
var expectedRoutes = []routeCase{
	// auth
	{http.MethodPost, "/api/auth/register"},
	{http.MethodPost, "/api/auth/login"},
	// sync (auth middleware will return 401, not 404/405)
	{http.MethodGet, "/api/sync/"},
	// contacts (auth middleware will return 401, not 404/405)
	{http.MethodPost, "/api/contacts/"},
	{http.MethodPost, "/api/contacts/download"},
	{http.MethodPut, "/api/contacts/update"},
	{http.MethodDelete, "/api/contacts/delete"},
	{http.MethodPost, "/api/contacts/undelete"},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t).Init()

	for _, tc := range expectedRoutes {
		tc := tc
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// A registered route returns anything except 404 (not found) or
			// 405 (method not allowed). Auth-protected routes return 401 —
			// that still proves the route exists.
			assert.NotEqual(t, http.StatusNotFound, rec.Code,
				"route not found: %s %s", tc.method, tc.path)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code,
				"method not allowed: %s %s", tc.method, tc.path)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t).Init()

	// GET /api/auth/register is not registered — only POST is. The
	// MethodNotAllowed override hides the route with a 404.
	req := httptest.NewRequest(http.MethodGet, "/api/auth/register", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
