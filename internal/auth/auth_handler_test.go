package auth_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-admin/internal/auth"
	autherrors "hr-admin/internal/auth/errors"
	"hr-admin/internal/session"
	"hr-admin/internal/shared/principal"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	registerFn func(ctx context.Context, req auth.RegisterRequest) error
	loginFn    func(ctx context.Context, username, password string) (string, principal.Principal, error)
	logoutFn   func(ctx context.Context, token string) error
}

func (f *fakeService) Register(ctx context.Context, req auth.RegisterRequest) error {
	return f.registerFn(ctx, req)
}
func (f *fakeService) Login(ctx context.Context, username, password string) (string, principal.Principal, error) {
	return f.loginFn(ctx, username, password)
}
func (f *fakeService) Logout(ctx context.Context, token string) error { return f.logoutFn(ctx, token) }

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_Login(t *testing.T) {
	svc := &fakeService{}
	handler := auth.NewHandler(svc)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("success sets session cookie", func(t *testing.T) {
		svc.loginFn = func(ctx context.Context, username, password string) (string, principal.Principal, error) {
			return "tok-123", principal.Principal{
				UserID:   uuid.New(),
				Username: "jdoe",
				Role:     principal.RoleEmployee,
			}, nil
		}

		body, _ := json.Marshal(auth.LoginRequest{Username: "jdoe", Password: "secret123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		cookies := w.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, session.CookieName, cookies[0].Name)
		assert.Equal(t, "tok-123", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)

		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]interface{})
		assert.Equal(t, "jdoe", data["username"])
		assert.Equal(t, "employee", data["role"])
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc.loginFn = func(ctx context.Context, username, password string) (string, principal.Principal, error) {
			return "", principal.Principal{}, autherrors.ErrInvalidCredentials
		}

		body, _ := json.Marshal(auth.LoginRequest{Username: "jdoe", Password: "wrong"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, w.Result().Cookies())
	})

	t.Run("missing fields", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"username":"jdoe"}`))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	svc := &fakeService{}
	handler := auth.NewHandler(svc)
	router := setupAuthRouter()
	router.POST("/register", handler.Register)

	t.Run("success", func(t *testing.T) {
		var got auth.RegisterRequest
		svc.registerFn = func(ctx context.Context, req auth.RegisterRequest) error {
			got = req
			return nil
		}

		body, _ := json.Marshal(auth.RegisterRequest{
			Username: "jdoe",
			Password: "secret123",
			Email:    "jdoe@example.com",
		})
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "jdoe", got.Username)
	})

	t.Run("short password rejected before service", func(t *testing.T) {
		svc.registerFn = func(ctx context.Context, req auth.RegisterRequest) error {
			t.Fatal("service must not be called on validation failure")
			return nil
		}

		body := []byte(`{"username":"jdoe","password":"123","email":"jdoe@example.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate username", func(t *testing.T) {
		svc.registerFn = func(ctx context.Context, req auth.RegisterRequest) error {
			return autherrors.ErrUsernameAlreadyExists
		}

		body, _ := json.Marshal(auth.RegisterRequest{
			Username: "jdoe",
			Password: "secret123",
			Email:    "jdoe@example.com",
		})
		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestHandler_Whoami(t *testing.T) {
	handler := auth.NewHandler(&fakeService{})
	router := setupAuthRouter()

	attach := func(p principal.Principal) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Request = c.Request.WithContext(principal.With(c.Request.Context(), p))
		}
	}

	router.GET("/whoami", handler.Whoami)
	router.GET("/whoami-authed", attach(principal.Principal{
		Username: "jdoe",
		FullName: "Jane Doe",
		Role:     principal.RoleEmployee,
	}), handler.Whoami)

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]interface{})
		assert.Equal(t, false, data["authenticated"])
	})

	t.Run("authenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami-authed", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var res map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		data := res["data"].(map[string]interface{})
		assert.Equal(t, true, data["authenticated"])
		assert.Equal(t, "jdoe", data["username"])
		assert.Equal(t, "Jane Doe", data["full_name"])
	})
}

func TestHandler_Logout(t *testing.T) {
	svc := &fakeService{}
	handler := auth.NewHandler(svc)
	router := setupAuthRouter()
	router.POST("/logout", func(c *gin.Context) {
		c.Set("session_token", "tok-123")
	}, handler.Logout)

	var deleted string
	svc.logoutFn = func(ctx context.Context, token string) error {
		deleted = token
		return nil
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok-123", deleted)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
