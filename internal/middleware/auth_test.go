package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"physrisk-api/pkg/scope"
)

func serveWith(mw gin.HandlerFunc, mutate func(*http.Request)) (*httptest.ResponseRecorder, string) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw)

	var tier string
	r.GET("/probe", func(c *gin.Context) {
		tier = scope.GetDataAccessFromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, tier
}

func TestAuthRejectsMissingToken(t *testing.T) {
	mw := newTestMiddleware(&fakeManager{})

	w, _ := serveWith(mw.Auth(), nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	mw := newTestMiddleware(&fakeManager{verifyErr: scope.ErrInvalidToken})

	w, _ := serveWith(mw.Auth(), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestAuthAcceptsHeaderToken(t *testing.T) {
	mw := newTestMiddleware(&fakeManager{payload: payloadExpiringIn(time.Hour)})

	w, tier := serveWith(mw.Auth(), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer valid")
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if tier != scope.DataAccessOSC {
		t.Errorf("tier = %q, want %q", tier, scope.DataAccessOSC)
	}
}

func TestAuthAcceptsCookieToken(t *testing.T) {
	mw := newTestMiddleware(&fakeManager{payload: payloadExpiringIn(time.Hour)})

	w, _ := serveWith(mw.Auth(), func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: "valid"})
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}

func TestAccessTierAnonymousGetsDefault(t *testing.T) {
	mw := newTestMiddleware(&fakeManager{})

	w, tier := serveWith(mw.AccessTier(), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if tier != scope.DefaultDataAccess {
		t.Errorf("tier = %q, want default %q", tier, scope.DefaultDataAccess)
	}
}

func TestAccessTierInvalidTokenStaysAnonymous(t *testing.T) {
	mw := newTestMiddleware(&fakeManager{verifyErr: scope.ErrInvalidToken})

	w, tier := serveWith(mw.AccessTier(), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer garbage")
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for anonymous fallback", w.Code)
	}
	if tier != scope.DefaultDataAccess {
		t.Errorf("tier = %q, want default %q", tier, scope.DefaultDataAccess)
	}
}

func TestAccessTierResolvesTokenTier(t *testing.T) {
	payload := payloadExpiringIn(time.Hour)
	payload.DataAccess = "partner"
	mw := newTestMiddleware(&fakeManager{payload: payload})

	_, tier := serveWith(mw.AccessTier(), func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer valid")
	})
	if tier != "partner" {
		t.Errorf("tier = %q, want partner", tier)
	}
}
