package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/inkwell/internal/blog/domain"
	bloghttp "github.com/aussiebroadwan/inkwell/internal/blog/http"
	"github.com/aussiebroadwan/inkwell/internal/blog/metrics"
	"github.com/aussiebroadwan/inkwell/internal/blog/service"
	"github.com/aussiebroadwan/inkwell/internal/blog/store/drivers/sqlite"
	"github.com/aussiebroadwan/inkwell/pkg/blogsdk"
	"github.com/aussiebroadwan/inkwell/pkg/cryptox"
	"github.com/aussiebroadwan/inkwell/pkg/httpx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const (
	testPassword   = "correct-horse-battery"
	bootstrapToken = "bootstrap-secret"
)

func TestMain(m *testing.M) {
	cryptox.SetPepper("http-test-pepper")
	os.Exit(m.Run())
}

type server struct {
	t     *testing.T
	ts    *httptest.Server
	store *sqlite.Store
}

func unlimited() httpx.RateLimitConfig {
	return httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
}

func newServer(t *testing.T) *server {
	t.Helper()

	st, err := sqlite.NewStore(filepath.Join(t.TempDir(), "inkwell.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	tokens, err := service.NewTokenService([]byte("0123456789abcdef0123456789abcdef"), "inkwell-test", 30*time.Minute, nil)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	limits := httpx.RateLimitProfiles{Strict: unlimited(), Moderate: unlimited(), Lenient: unlimited(), Public: unlimited()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := bloghttp.NewRouter("test", st, limits, reg, logger)
	r.Tokens = tokens
	r.Resolver = &service.IdentityResolver{Tokens: tokens, Store: st}
	r.AccountService = &service.AccountService{Store: st, Tokens: tokens, AuthorPolicy: domain.AuthorNullify, Metrics: collector}
	r.PostService = &service.PostService{Store: st, Metrics: collector}
	r.BootstrapService = &service.BootstrapService{Store: st, Token: bootstrapToken}
	r.ApplyRoutes()

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return &server{t: t, ts: ts, store: st}
}

func (s *server) seed(username string, roles domain.Roles) domain.Account {
	s.t.Helper()
	hash, err := cryptox.HashPassword(testPassword)
	require.NoError(s.t, err)
	a, err := s.store.Accounts().CreateAccount(context.Background(), domain.Account{
		Username: username, PasswordHash: hash, IsActive: true, Roles: roles,
	})
	require.NoError(s.t, err)
	return a
}

func (s *server) do(method, path, token string, body any) *http.Response {
	s.t.Helper()
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(s.t, err)
		rdr = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.ts.URL+path, rdr)
	require.NoError(s.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.t, err)
	s.t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (s *server) login(username string) string {
	s.t.Helper()
	resp := s.do(http.MethodPost, "/v1/auth/token", "", blogsdk.LoginRequest{Username: username, Password: testPassword})
	require.Equal(s.t, http.StatusOK, resp.StatusCode)
	var tok blogsdk.TokenResponse
	decode(s.t, resp, &tok)
	return tok.AccessToken
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body blogsdk.ErrorResponse
	decode(t, resp, &body)
	return body.Error
}

func TestToken_JSONAndForm(t *testing.T) {
	s := newServer(t)
	s.seed("alice", domain.Roles{})

	t.Run("json", func(t *testing.T) {
		token := s.login("alice")
		require.NotEmpty(t, token)
	})

	t.Run("form", func(t *testing.T) {
		form := url.Values{"username": {"alice"}, "password": {testPassword}}
		resp, err := http.Post(s.ts.URL+"/v1/auth/token", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var tok blogsdk.TokenResponse
		decode(t, resp, &tok)
		require.Equal(t, "bearer", tok.TokenType)
		require.Equal(t, 1800, tok.ExpiresIn)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp := s.do(http.MethodPost, "/v1/auth/token", "", blogsdk.LoginRequest{Username: "alice", Password: "nope-nope"})
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.Equal(t, blogsdk.ErrorCodeInvalidGrant, errorCode(t, resp))
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := s.do(http.MethodPost, "/v1/auth/token", "", blogsdk.LoginRequest{Username: "alice"})
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSignup(t *testing.T) {
	s := newServer(t)

	resp := s.do(http.MethodPost, "/v1/users/signup", "", blogsdk.CreateAccountRequest{Username: "bob", Password: testPassword})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var view blogsdk.AccountView
	decode(t, resp, &view)
	require.Equal(t, "bob", view.Username)
	require.True(t, view.IsActive)
	require.Nil(t, view.IsStaff, "role flags are hidden from a normal caller")

	resp = s.do(http.MethodPost, "/v1/users/signup", "", blogsdk.CreateAccountRequest{Username: "bob", Password: testPassword})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, blogsdk.ErrorCodeUsernameTaken, errorCode(t, resp))

	resp = s.do(http.MethodPost, "/v1/users/signup", "", blogsdk.CreateAccountRequest{Username: "x", Password: "short"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var verr blogsdk.ValidationErrorResponse
	decode(t, resp, &verr)
	require.Equal(t, blogsdk.ErrorCodeValidation, verr.Code)
	require.Contains(t, verr.Details, "username")
	require.Contains(t, verr.Details, "password")
}

func TestMe_ProjectsToOwnClearance(t *testing.T) {
	s := newServer(t)
	s.seed("staffer", domain.Roles{IsStaff: true})

	resp := s.do(http.MethodGet, "/v1/me", s.login("staffer"), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view blogsdk.AccountView
	decode(t, resp, &view)
	require.NotNil(t, view.IsStaff)
	require.True(t, *view.IsStaff)
	require.Nil(t, view.IsSuperuser)
	require.Nil(t, view.IsOwner)
}

func TestSecuredRoutes_RequireBearer(t *testing.T) {
	s := newServer(t)

	for _, path := range []string{"/v1/me", "/v1/users", "/v1/accounts/1"} {
		resp := s.do(http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		require.Contains(t, resp.Header.Get("WWW-Authenticate"), "Bearer")
	}

	resp := s.do(http.MethodGet, "/v1/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPrivilegedCreation(t *testing.T) {
	s := newServer(t)
	s.seed("owner", domain.Roles{IsOwner: true})
	s.seed("super", domain.Roles{IsStaff: true, IsSuperuser: true})

	ownerToken := s.login("owner")
	superToken := s.login("super")

	resp := s.do(http.MethodPost, "/v1/superusers", superToken, blogsdk.CreateAccountRequest{Username: "carol", Password: testPassword})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(http.MethodPost, "/v1/superusers", ownerToken, blogsdk.CreateAccountRequest{Username: "carol", Password: testPassword})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var view blogsdk.AccountView
	decode(t, resp, &view)
	require.True(t, *view.IsStaff)
	require.True(t, *view.IsSuperuser)
	require.False(t, *view.IsOwner)

	resp = s.do(http.MethodPost, "/v1/staff", superToken, blogsdk.CreateAccountRequest{Username: "dave", Password: testPassword})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = s.do(http.MethodGet, "/v1/superusers", ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var roster []blogsdk.AccountView
	decode(t, resp, &roster)
	require.Len(t, roster, 2)
}

func TestAccountUpdateAndDelete(t *testing.T) {
	s := newServer(t)
	owner := s.seed("owner", domain.Roles{IsOwner: true})
	s.seed("staffer", domain.Roles{IsStaff: true})
	victim := s.seed("victim", domain.Roles{})

	staffToken := s.login("staffer")
	ownerToken := s.login("owner")

	resp := s.do(http.MethodDelete, "/v1/accounts/"+strconv.FormatInt(owner.ID, 10), staffToken, nil)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(http.MethodPatch, "/v1/accounts/"+strconv.FormatInt(victim.ID, 10), staffToken,
		blogsdk.UpdateAccountRequest{IsStaff: boolp(true)})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(http.MethodPatch, "/v1/accounts/"+strconv.FormatInt(victim.ID, 10), staffToken,
		blogsdk.UpdateAccountRequest{Bio: strp("edited")})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var view blogsdk.AccountView
	decode(t, resp, &view)
	require.Equal(t, "edited", *view.Bio)

	resp = s.do(http.MethodDelete, "/v1/accounts/"+strconv.FormatInt(victim.ID, 10), ownerToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = s.do(http.MethodGet, "/v1/accounts/"+strconv.FormatInt(victim.ID, 10), ownerToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(http.MethodGet, "/v1/accounts/abc", ownerToken, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPosts(t *testing.T) {
	s := newServer(t)
	s.seed("staffer", domain.Roles{IsStaff: true})
	s.seed("reader", domain.Roles{})
	staffToken := s.login("staffer")

	resp := s.do(http.MethodPost, "/v1/posts", s.login("reader"), blogsdk.CreatePostRequest{Title: "t", Slug: "t", Text: "x"})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.do(http.MethodPost, "/v1/posts", staffToken, blogsdk.CreatePostRequest{
		Title: "Hello", Slug: "hello", Text: `<p>hi</p><script>alert(1)</script>`,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var post blogsdk.PostView
	decode(t, resp, &post)
	require.Equal(t, "<p>hi</p>", post.Text)
	require.NotNil(t, post.Author)

	path := "/v1/posts/" + strconv.FormatInt(post.ID, 10)

	resp = s.do(http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(http.MethodPatch, path, staffToken, blogsdk.UpdatePostRequest{IsDelete: boolp(true)})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.do(http.MethodGet, path, "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.do(http.MethodGet, "/v1/posts", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []blogsdk.PostView
	decode(t, resp, &list)
	require.Empty(t, list)

	resp = s.do(http.MethodGet, "/v1/posts?include_deleted=true", "", nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(http.MethodGet, "/v1/posts?include_deleted=true", staffToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &list)
	require.Len(t, list, 1)

	resp = s.do(http.MethodGet, "/v1/posts?limit=0x", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.do(http.MethodDelete, path, staffToken, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestBootstrap(t *testing.T) {
	s := newServer(t)
	req := blogsdk.BootstrapRequest{Username: "founder", Password: testPassword}

	resp := s.do(http.MethodPost, "/v1/bootstrap", "", req)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	post := func(token string) *http.Response {
		raw, err := json.Marshal(req)
		require.NoError(t, err)
		r, err := http.NewRequest(http.MethodPost, s.ts.URL+"/v1/bootstrap", bytes.NewReader(raw))
		require.NoError(t, err)
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("X-Bootstrap-Token", token)
		resp, err := http.DefaultClient.Do(r)
		require.NoError(t, err)
		t.Cleanup(func() { _ = resp.Body.Close() })
		return resp
	}

	require.Equal(t, http.StatusUnauthorized, post("wrong").StatusCode)

	resp = post(bootstrapToken)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out blogsdk.BootstrapResponse
	decode(t, resp, &out)
	require.True(t, *out.Owner.IsOwner)

	resp = post(bootstrapToken)
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	require.NotEmpty(t, s.login("founder"))
}

func TestHealthAndMetrics(t *testing.T) {
	s := newServer(t)

	resp := s.do(http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var live blogsdk.HealthResponse
	decode(t, resp, &live)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	resp = s.do(http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ready blogsdk.HealthResponse
	decode(t, resp, &ready)
	require.Equal(t, "ok", ready.Checks.Database)
	require.Equal(t, "ok", ready.Checks.Signer)

	resp = s.do(http.MethodPost, "/v1/auth/token", "", blogsdk.LoginRequest{Username: "ghost", Password: "whatever1"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `inkwell_logins_total{outcome="failure"} 1`)
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }
