package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/items_api/internal/tokens"
)

func serve(t *testing.T, m *BearerAuth, header string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := m.RequireAuth(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec, c, called
}

func TestRequireAuth(t *testing.T) {
	now := time.Now()
	mgr := &tokens.Manager{Secret: []byte("secret"), TTL: time.Hour, Now: func() time.Time { return now }}
	m := NewBearerAuth(mgr)

	valid, _, err := mgr.Issue(5, "alice")
	require.NoError(t, err)

	expiredMgr := &tokens.Manager{Secret: []byte("secret"), TTL: time.Hour, Now: func() time.Time { return now.Add(-2 * time.Hour) }}
	expired, _, err := expiredMgr.Issue(5, "alice")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		status   int
		message  string
		wantNext bool
	}{
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK, wantNext: true},
		{name: "any scheme word", header: "Token " + valid, status: http.StatusOK, wantNext: true},
		{name: "no header", header: "", status: http.StatusUnauthorized, message: "Authentication token required."},
		{name: "scheme only", header: "Bearer", status: http.StatusUnauthorized, message: "Authentication token required."},
		{name: "expired", header: "Bearer " + expired, status: http.StatusUnauthorized, message: "Token expired."},
		{name: "malformed", header: "Bearer abc.def.ghi", status: http.StatusForbidden, message: "Invalid token."},
		{name: "garbage", header: "Bearer garbage", status: http.StatusForbidden, message: "Invalid token."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, c, called := serve(t, m, tt.header)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.wantNext, called)
			if tt.message != "" {
				assert.JSONEq(t, `{"message":"`+tt.message+`"}`, rec.Body.String())
			}
			if tt.wantNext {
				id, ok := UserID(c)
				assert.True(t, ok)
				assert.EqualValues(t, 5, id)
				assert.Equal(t, "alice", Username(c))
			}
		})
	}
}

func TestUserID_Unset(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, ok := UserID(c)
	assert.False(t, ok)
}
