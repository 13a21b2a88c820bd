package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/catwiki/catwiki-api/internal/application"
	"github.com/catwiki/catwiki-api/internal/domain/entity"
	repo "github.com/catwiki/catwiki-api/internal/domain/repository"
	"github.com/catwiki/catwiki-api/internal/interface/middleware"
)

type memUserRepo struct {
	users map[string]*entity.User // by email
	byID  map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}, byID: map[string]*entity.User{}}
}

func (m *memUserRepo) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	p := u.ToPrimitives()
	p.ID = entity.GenerateUserID().Value()
	saved, err := entity.UserFromPrimitives(p)
	if err != nil {
		return nil, err
	}
	m.users[saved.Email().Value()] = saved
	m.byID[saved.ID().Value()] = saved
	return saved, nil
}

func (m *memUserRepo) FindByID(ctx context.Context, id entity.UserID) (*entity.User, error) {
	u, ok := m.byID[id.Value()]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email entity.Email) (*entity.User, error) {
	u, ok := m.users[email.Value()]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) ExistsByEmail(ctx context.Context, email entity.Email) (bool, error) {
	_, ok := m.users[email.Value()]
	return ok, nil
}

type plainHasher struct{}

func (plainHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }
func (plainHasher) Compare(plain, digest string) bool { return digest == "h:"+plain }

type stubTokens struct{}

func (stubTokens) Issue(userID, email string) (string, error) { return "tok-" + userID, nil }
func (stubTokens) Verify(token string) (string, string, error) {
	return "", "", nil
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *memUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := newMemUserRepo()
	svc := application.NewAuthService(userRepo, plainHasher{}, stubTokens{}, nil, nil, "", nil)
	h := NewAuthHandler(svc, nil)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	// Protected routes get identity injected directly, bypassing the
	// token gate which has its own tests.
	asUser := func(uid string) gin.HandlerFunc {
		return func(c *gin.Context) { c.Set(middleware.CtxUserIDKey, uid) }
	}
	r.GET("/auth/profile/:uid", func(c *gin.Context) {
		asUser(c.Param("uid"))(c)
		h.GetProfile(c)
	})
	r.GET("/auth/check-auth/:uid", func(c *gin.Context) {
		asUser(c.Param("uid"))(c)
		h.CheckAuth(c)
	})
	return r, userRepo
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Status  int             `json:"status"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	if err := json.Unmarshal(w.Body.Bytes(), &e); err != nil {
		t.Fatalf("invalid envelope %q: %v", w.Body.String(), err)
	}
	return e
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, _ := newAuthTestRouter(t)
		w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
			"email": "user@example.com", "password": "Password1!", "name": "Test User",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		e := decodeEnvelope(t, w)
		if !e.Success {
			t.Error("Success should be true")
		}
		var data struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := json.Unmarshal(e.Data, &data); err != nil {
			t.Fatal(err)
		}
		if data.Email != "user@example.com" || data.ID == "" {
			t.Errorf("data = %+v", data)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		r, _ := newAuthTestRouter(t)
		w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{"email": "user@example.com"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d", w.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		r, _ := newAuthTestRouter(t)
		payload := gin.H{"email": "user@example.com", "password": "Password1!", "name": "Test User"}
		doJSON(t, r, http.MethodPost, "/auth/register", payload)
		w := doJSON(t, r, http.MethodPost, "/auth/register", payload)
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}
	})

	t.Run("weak password", func(t *testing.T) {
		r, _ := newAuthTestRouter(t)
		w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
			"email": "user@example.com", "password": "weakpass", "name": "Test User",
		})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	register := func(t *testing.T, r *gin.Engine) {
		w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
			"email": "user@example.com", "password": "Password1!", "name": "Test User",
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("register failed: %s", w.Body.String())
		}
	}

	t.Run("success returns token and user", func(t *testing.T) {
		r, _ := newAuthTestRouter(t)
		register(t, r)

		w := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "user@example.com", "password": "Password1!"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		var data struct {
			Token string `json:"token"`
			User  struct {
				Email string `json:"email"`
			} `json:"user"`
		}
		e := decodeEnvelope(t, w)
		if err := json.Unmarshal(e.Data, &data); err != nil {
			t.Fatal(err)
		}
		if data.Token == "" || data.User.Email != "user@example.com" {
			t.Errorf("data = %+v", data)
		}
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		r, _ := newAuthTestRouter(t)
		register(t, r)

		wrong := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "user@example.com", "password": "Wrong1!pass"})
		unknown := doJSON(t, r, http.MethodPost, "/auth/login", gin.H{"email": "other@example.com", "password": "Password1!"})

		if wrong.Code != http.StatusUnauthorized || unknown.Code != http.StatusUnauthorized {
			t.Fatalf("statuses = %d, %d, want 401", wrong.Code, unknown.Code)
		}
		if decodeEnvelope(t, wrong).Message != decodeEnvelope(t, unknown).Message {
			t.Error("failure messages must be indistinguishable")
		}
	})
}

func TestCheckAuthEndpoint(t *testing.T) {
	r, userRepo := newAuthTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email": "user@example.com", "password": "Password1!", "name": "Test User",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %s", w.Body.String())
	}
	var uid string
	for id := range userRepo.byID {
		uid = id
	}

	t.Run("live account", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/check-auth/"+uid, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("deleted account is 401", func(t *testing.T) {
		gone := entity.GenerateUserID().Value()
		req := httptest.NewRequest(http.MethodGet, "/auth/check-auth/"+gone, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})
}

func TestGetProfileEndpoint(t *testing.T) {
	r, userRepo := newAuthTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/auth/register", gin.H{
		"email": "user@example.com", "password": "Password1!", "name": "Test User",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register failed: %s", w.Body.String())
	}
	var uid string
	for id := range userRepo.byID {
		uid = id
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/profile/"+uid, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !bytes.Contains(rec.Body.Bytes(), []byte("user@example.com")) {
		t.Errorf("body %q missing email", body)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("h:Password1!")) {
		t.Error("profile must not expose the password digest")
	}
}
