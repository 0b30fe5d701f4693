package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"physrisk-api/config"
	"physrisk-api/internal/auth"
	"physrisk-api/internal/hazard"
	"physrisk-api/internal/middleware"
	"physrisk-api/pkg/log"
	"physrisk-api/pkg/scope"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, args ...any)                   {}
func (nopLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Info(ctx context.Context, args ...any)                    {}
func (nopLogger) Infof(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Warn(ctx context.Context, args ...any)                    {}
func (nopLogger) Warnf(ctx context.Context, template string, args ...any)  {}
func (nopLogger) Error(ctx context.Context, args ...any)                   {}
func (nopLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (nopLogger) Fatal(ctx context.Context, args ...any)                   {}
func (nopLogger) Fatalf(ctx context.Context, template string, args ...any) {}

var _ log.Logger = nopLogger{}

// fakeRequester records the last forwarded call and replays canned replies.
type fakeRequester struct {
	lastRequestID string
	lastEnvelope  map[string]any
	lastImageReq  hazard.ImageRequest
	reply         []byte
	image         []byte
	err           error
	resets        int
}

func (f *fakeRequester) Get(ctx context.Context, requestID string, request map[string]any) ([]byte, error) {
	f.lastRequestID = requestID
	f.lastEnvelope = request
	return f.reply, f.err
}

func (f *fakeRequester) GetImage(ctx context.Context, req hazard.ImageRequest) ([]byte, error) {
	f.lastImageReq = req
	return f.image, f.err
}

func (f *fakeRequester) ResetCache(ctx context.Context) {
	f.resets++
}

// fakeAuthUC issues a fixed token or fails with a fixed error.
type fakeAuthUC struct {
	token string
	err   error
}

func (f *fakeAuthUC) IssueToken(ctx context.Context, input auth.TokenInput) (auth.TokenOutput, error) {
	if f.err != nil {
		return auth.TokenOutput{}, f.err
	}
	return auth.TokenOutput{AccessToken: f.token}, nil
}

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestRouter(requester hazard.Requester, uc auth.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cookieCfg := config.CookieConfig{Name: "physrisk_access_token", SameSite: "Lax"}
	mw := middleware.New(nopLogger{}, scope.New(testSecret), cookieCfg)

	r := gin.New()
	api := r.Group("/api", mw.AccessTier(), mw.RefreshSession())
	New(uc, requester, nopLogger{}, cookieCfg).RegisterRoutes(api, mw)
	return r
}

func doJSON(r *gin.Engine, method, path, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIssueTokenSuccess(t *testing.T) {
	r := newTestRouter(&fakeRequester{}, &fakeAuthUC{token: "minted"})

	w := doJSON(r, http.MethodPost, "/api/token", `{"email":"test","password":"key"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["access_token"] != "minted" {
		t.Errorf("access_token = %v, want minted", body["access_token"])
	}

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "physrisk_access_token" {
			sessionCookie = cookie
		}
	}
	if sessionCookie == nil || sessionCookie.Value != "minted" {
		t.Error("session cookie was not set on issuance")
	}
}

func TestIssueTokenWrongCredentials(t *testing.T) {
	r := newTestRouter(&fakeRequester{}, &fakeAuthUC{err: auth.ErrWrongCredentials})

	w := doJSON(r, http.MethodPost, "/api/token", `{"email":"test","password":"nope"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Wrong email or password") {
		t.Errorf("body = %s, want wrong-credentials message", w.Body.String())
	}
}

func TestIssueTokenServerMisconfigured(t *testing.T) {
	r := newTestRouter(&fakeRequester{}, &fakeAuthUC{err: auth.ErrServerMisconfigured})

	w := doJSON(r, http.MethodPost, "/api/token", `{"email":"test","password":"key"}`, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "OSC_TEST_USER_KEY") {
		t.Error("response leaked the missing variable name")
	}
}

func TestDataRouteOverwritesGroupIDs(t *testing.T) {
	fake := &fakeRequester{reply: []byte(`{"items":[{"event_type":"Fire"}]}`)}
	r := newTestRouter(fake, &fakeAuthUC{})

	w := doJSON(r, http.MethodPost, "/api/get_hazard_data",
		`{"items":[{"request_item_id":"r1"}],"group_ids":["forged","tiers"]}`, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if fake.lastRequestID != hazard.RequestHazardData {
		t.Errorf("request id = %q, want %q", fake.lastRequestID, hazard.RequestHazardData)
	}

	groupIDs, ok := fake.lastEnvelope[hazard.GroupIDsKey].([]string)
	if !ok || len(groupIDs) != 1 || groupIDs[0] != scope.DefaultDataAccess {
		t.Errorf("group_ids = %v, want [%s]", fake.lastEnvelope[hazard.GroupIDsKey], scope.DefaultDataAccess)
	}
}

func TestDataRouteUsesTokenTier(t *testing.T) {
	fake := &fakeRequester{reply: []byte(`{"items":[1]}`)}
	r := newTestRouter(fake, &fakeAuthUC{})

	token, err := scope.New(testSecret).CreateToken("test", "partner")
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	w := doJSON(r, http.MethodPost, "/api/get_asset_impact", `{}`, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	groupIDs, _ := fake.lastEnvelope[hazard.GroupIDsKey].([]string)
	if len(groupIDs) != 1 || groupIDs[0] != "partner" {
		t.Errorf("group_ids = %v, want [partner]", groupIDs)
	}
}

func TestDataRouteRelaysReplyVerbatim(t *testing.T) {
	reply := `{"items":[{"event_type":"CoastalInundation","intensities":[0.1,0.2]}]}`
	fake := &fakeRequester{reply: []byte(reply)}
	r := newTestRouter(fake, &fakeAuthUC{})

	w := doJSON(r, http.MethodPost, "/api/get_hazard_data_availability", `{}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != reply {
		t.Errorf("body = %s, want verbatim engine reply", w.Body.String())
	}
}

func TestDataRouteNoResults(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{"empty collections", `{"items":[],"models":[]}`},
		{"null collections", `{"items":null}`},
		{"no collections", `{"something_else":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(&fakeRequester{reply: []byte(tt.reply)}, &fakeAuthUC{})

			w := doJSON(r, http.MethodPost, "/api/get_hazard_data", `{}`, nil)
			if w.Code != http.StatusNotFound {
				t.Fatalf("status = %d, want 404", w.Code)
			}
			if !strings.Contains(w.Body.String(), "No results") {
				t.Errorf("body = %s, want no-results message", w.Body.String())
			}
		})
	}
}

func TestDataRouteEngineFailure(t *testing.T) {
	r := newTestRouter(&fakeRequester{err: hazard.ErrEngineRequest}, &fakeAuthUC{})

	w := doJSON(r, http.MethodPost, "/api/get_asset_exposure", `{"assets":[]}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDataRouteMalformedBody(t *testing.T) {
	r := newTestRouter(&fakeRequester{reply: []byte(`{"items":[1]}`)}, &fakeAuthUC{})

	w := doJSON(r, http.MethodPost, "/api/get_hazard_data", `not json`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetImage(t *testing.T) {
	fake := &fakeRequester{image: []byte("\x89PNG")}
	r := newTestRouter(fake, &fakeAuthUC{})

	w := doJSON(r, http.MethodGet, "/api/images/inundation/wri/v2/depth.png?year=2050&scenarioId=rcp8p5&minValue=0.5", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q, want image/png", ct)
	}

	req := fake.lastImageReq
	if req.Resource != "inundation/wri/v2/depth" {
		t.Errorf("resource = %q", req.Resource)
	}
	if req.Format != "png" {
		t.Errorf("format = %q, want png", req.Format)
	}
	if req.Tile != nil {
		t.Error("whole-image request carried a tile address")
	}
	if req.Year != 2050 {
		t.Errorf("year = %d, want 2050", req.Year)
	}
	if req.ScenarioID == nil || *req.ScenarioID != "rcp8p5" {
		t.Errorf("scenario = %v, want rcp8p5", req.ScenarioID)
	}
	if req.MinValue == nil || *req.MinValue != 0.5 {
		t.Errorf("min value = %v, want 0.5", req.MinValue)
	}
	if len(req.GroupIDs) != 1 || req.GroupIDs[0] != scope.DefaultDataAccess {
		t.Errorf("group ids = %v, want [%s]", req.GroupIDs, scope.DefaultDataAccess)
	}
}

func TestGetImageMissingYear(t *testing.T) {
	r := newTestRouter(&fakeRequester{image: []byte("x")}, &fakeAuthUC{})

	w := doJSON(r, http.MethodGet, "/api/images/inundation/depth.png", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetImageMissingResource(t *testing.T) {
	r := newTestRouter(&fakeRequester{err: hazard.ErrResourceNotFound}, &fakeAuthUC{})

	w := doJSON(r, http.MethodGet, "/api/images/unknown/depth.png?year=2050", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetImageEngineFailure(t *testing.T) {
	r := newTestRouter(&fakeRequester{err: hazard.ErrEngineRequest}, &fakeAuthUC{})

	w := doJSON(r, http.MethodGet, "/api/images/inundation/depth.png?year=2050", "", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
}

func TestGetImageNoExtension(t *testing.T) {
	r := newTestRouter(&fakeRequester{image: []byte("x")}, &fakeAuthUC{})

	w := doJSON(r, http.MethodGet, "/api/images/inundation/depth?year=2050", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestGetTile(t *testing.T) {
	fake := &fakeRequester{image: []byte("\x89PNG")}
	r := newTestRouter(fake, &fakeAuthUC{})

	w := doJSON(r, http.MethodGet, "/api/tiles/inundation/wri/v2/depth/8/134/82.png?year=2050", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	req := fake.lastImageReq
	if req.Resource != "inundation/wri/v2/depth" {
		t.Errorf("resource = %q", req.Resource)
	}
	if req.Tile == nil {
		t.Fatal("tile request lost its tile address")
	}
	if req.Tile.Z != 8 || req.Tile.X != 134 || req.Tile.Y != 82 {
		t.Errorf("tile = %+v, want z=8 x=134 y=82", req.Tile)
	}
}

func TestGetTileNonIntegerCoords(t *testing.T) {
	r := newTestRouter(&fakeRequester{image: []byte("x")}, &fakeAuthUC{})

	w := doJSON(r, http.MethodGet, "/api/tiles/inundation/depth/8/foo/82.png?year=2050", "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestResetDropsCaches(t *testing.T) {
	fake := &fakeRequester{}
	r := newTestRouter(fake, &fakeAuthUC{})

	// Back-to-back resets must both succeed; dropping an already-empty cache
	// is a no-op, not an error.
	for i := 1; i <= 2; i++ {
		w := doJSON(r, http.MethodGet, "/api/reset", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("reset %d: status = %d, want 200", i, w.Code)
		}
		if w.Body.String() != "Reset successful" {
			t.Errorf("reset %d: body = %q, want Reset successful", i, w.Body.String())
		}
	}
	if fake.resets != 2 {
		t.Errorf("resets = %d, want 2", fake.resets)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(&fakeRequester{}, &fakeAuthUC{})

	w := doJSON(r, http.MethodPost, "/api/logout", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "physrisk_access_token" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("logout did not clear the session cookie")
	}
}

func TestProfileRequiresAuth(t *testing.T) {
	r := newTestRouter(&fakeRequester{}, &fakeAuthUC{})

	w := doJSON(r, http.MethodGet, "/api/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestProfileReturnsIdentity(t *testing.T) {
	r := newTestRouter(&fakeRequester{}, &fakeAuthUC{})

	token, err := scope.New(testSecret).CreateToken("test", scope.DataAccessOSC)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	w := doJSON(r, http.MethodGet, "/api/profile", "", func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body["id"] != "test" {
		t.Errorf("id = %v, want test", body["id"])
	}
}
