package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gigguide/gigguide-api/internal/config"
	"github.com/gigguide/gigguide-api/internal/domain"
	"github.com/gigguide/gigguide-api/internal/pkg/jwthelper"
	"github.com/gigguide/gigguide-api/internal/service"
)

type fakeAuthService struct {
	registered  service.Registration
	registerErr error
}

func (f *fakeAuthService) Register(ctx context.Context, reg service.Registration) (domain.User, error) {
	if f.registerErr != nil {
		return domain.User{}, f.registerErr
	}
	f.registered = reg

	return domain.User{ID: 7, Username: reg.Username, Email: reg.Email, Role: reg.Role}, nil
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	return domain.User{ID: 7, Email: email}, nil
}

func registerRouter(svc AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	conf := &config.APIConfig{JWTSigningKey: "test-signing-key"}
	handler := NewAuthHandler(conf, svc)

	router := gin.New()
	router.POST("/auth/register", handler.HandleRegister)

	return router
}

func TestHandleRegister_ReturnsUserAndToken(t *testing.T) {
	svc := &fakeAuthService{}
	router := registerRouter(svc)

	body := `{"username":"nova","email":"nova@example.com","password":"sup3rsecret","confirm_password":"sup3rsecret","role":3}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "test-agent")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, uint(7), resp.User.ID)
	assert.Equal(t, "nova", resp.User.Username)
	require.NotEmpty(t, resp.Token)

	claims, err := jwthelper.ParseToken([]byte("test-signing-key"), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "test-agent", claims.UserAgent)
}

func TestHandleRegister_DuplicateEmailConflict(t *testing.T) {
	svc := &fakeAuthService{registerErr: service.ErrUserEmailExists}
	router := registerRouter(svc)

	body := `{"username":"nova","email":"nova@example.com","password":"sup3rsecret","confirm_password":"sup3rsecret","role":3}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}
