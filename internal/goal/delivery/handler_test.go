package delivery_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	api "lifegoals/cmd/api"
	authdto "lifegoals/internal/auth/dto"
	authRepo "lifegoals/internal/auth/repository"
	authUsecase "lifegoals/internal/auth/usecase"
	goaldomain "lifegoals/internal/goal/domain"
	goalRepo "lifegoals/internal/goal/repository"
	goalUsecase "lifegoals/internal/goal/usecase"
	"lifegoals/pkg/config"

	"github.com/gin-gonic/gin"
)

func newTestEngine(t *testing.T) (*gin.Engine, authUsecase.AuthUsecase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour}
	authUc := authUsecase.NewAuthUsecase(authRepo.NewMemoryUserRepository(), cfg)
	goalUc := goalUsecase.NewGoalUsecase(goalRepo.NewMemoryGoalRepository())

	r := gin.New()
	api.SetupRoutes(r, authUc, goalUc)
	return r, authUc
}

func registerUser(t *testing.T, authUc authUsecase.AuthUsecase, name, email string) string {
	t.Helper()
	resp, err := authUc.Register(&authdto.RegisterRequest{Name: name, Email: email, Password: "pw123456"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return resp.Token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGoalsRequireAuth(t *testing.T) {
	r, _ := newTestEngine(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/goals"},
		{http.MethodPost, "/api/goals"},
		{http.MethodPut, "/api/goals/g1"},
		{http.MethodDelete, "/api/goals/g1"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doJSON(t, r, tt.method, tt.path, "", "{}")
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestListGoalsEmpty(t *testing.T) {
	r, authUc := newTestEngine(t)
	token := registerUser(t, authUc, "Ann", "ann@x.com")

	w := doJSON(t, r, http.MethodGet, "/api/goals", token, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body = %q, want []", body)
	}
}

func TestGoalLifecycle(t *testing.T) {
	r, authUc := newTestEngine(t)
	token := registerUser(t, authUc, "Ann", "ann@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/goals", token,
		`{"title":"Run 5k","description":"Couch to 5k plan","completed":false}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", w.Code, w.Body.String())
	}
	var created goaldomain.Goal
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created goal: %v", err)
	}
	if created.ID == "" || created.Title != "Run 5k" {
		t.Fatalf("unexpected created goal: %+v", created)
	}

	// Partial update: toggle completion only.
	w = doJSON(t, r, http.MethodPut, "/api/goals/"+created.ID, token, `{"completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	var updated goaldomain.Goal
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decoding updated goal: %v", err)
	}
	if !updated.Completed || updated.Title != "Run 5k" {
		t.Errorf("toggle result: %+v", updated)
	}

	w = doJSON(t, r, http.MethodGet, "/api/goals", token, "")
	var listed []goaldomain.Goal
	if err := json.Unmarshal(w.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(listed) != 1 || !listed[0].Completed {
		t.Errorf("unexpected list after toggle: %+v", listed)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/goals/"+created.ID, token, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/goals", token, "")
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("body after delete = %q, want []", body)
	}
}

func TestGoalOwnershipEnforced(t *testing.T) {
	r, authUc := newTestEngine(t)
	annToken := registerUser(t, authUc, "Ann", "ann@x.com")
	bobToken := registerUser(t, authUc, "Bob", "bob@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/goals", annToken, `{"title":"Run 5k"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	var created goaldomain.Goal
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decoding created goal: %v", err)
	}

	w = doJSON(t, r, http.MethodPut, "/api/goals/"+created.ID, bobToken, `{"completed":true}`)
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign update status = %d, want 403", w.Code)
	}
	w = doJSON(t, r, http.MethodDelete, "/api/goals/"+created.ID, bobToken, "")
	if w.Code != http.StatusForbidden {
		t.Errorf("foreign delete status = %d, want 403", w.Code)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/goals/missing", annToken, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing delete status = %d, want 404", w.Code)
	}
}

func TestCreateGoalValidation(t *testing.T) {
	r, authUc := newTestEngine(t)
	token := registerUser(t, authUc, "Ann", "ann@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/goals", token, `{"description":"no title"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLoginRejectionIsUnauthorized(t *testing.T) {
	r, authUc := newTestEngine(t)
	registerUser(t, authUc, "Ann", "ann@x.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "",
		`{"email":"ann@x.com","password":"wrong-password"}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decoding error payload: %v", err)
	}
	if payload.Error == "" {
		t.Error("expected an error message in the response body")
	}
}
