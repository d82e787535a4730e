package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/authz"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/services"
)

func init() { gin.SetMode(gin.TestMode) }

// fakeAuthService подменяет services.AuthService: возвращает заранее
// настроенные результаты и запоминает аргументы.
type fakeAuthService struct {
	LoginUser  *models.User
	LoginToken string
	LoginErr   error

	RegisterErr error
	ResetErr    error

	LastLoginEmail    string
	LastLoginPassword string
}

func (f *fakeAuthService) Register(req *models.RegisterRequest) error { return f.RegisterErr }

func (f *fakeAuthService) Login(email, password string) (*models.User, string, error) {
	f.LastLoginEmail, f.LastLoginPassword = email, password
	if f.LoginErr != nil {
		return nil, "", f.LoginErr
	}
	return f.LoginUser, f.LoginToken, nil
}

func (f *fakeAuthService) UpdateProfile(user *models.User, newFullName, newEmail string) (*models.User, error) {
	return user, nil
}

func (f *fakeAuthService) ChangePassword(user *models.User, currentPassword, newPassword string) error {
	return nil
}

func (f *fakeAuthService) ForgotPassword(email string) error { return nil }

func (f *fakeAuthService) ResetPassword(token, newPassword, confirmPassword string) error {
	return f.ResetErr
}

func (f *fakeAuthService) SendVerificationCode(user *models.User) error { return nil }
func (f *fakeAuthService) VerifyEmail(user *models.User, code int) error {
	return nil
}

func (f *fakeAuthService) MakeAdmin(actor *models.User, targetID int) (*models.User, error) {
	return nil, services.ErrForbidden
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, handler gin.HandlerFunc, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := gin.New()
	r.Handle(method, path, handler)

	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestLogin_SetsCookie(t *testing.T) {
	svc := &fakeAuthService{
		LoginUser: &models.User{
			ID:     7,
			Email:  "ada@uni.edu",
			Role:   authz.RoleLecturer,
			Access: authz.AccessApproved,
			Active: true,
		},
		LoginToken: "signed.jwt.token",
	}
	h := NewAuthHandler(svc, 1, true)

	w, env := doJSON(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"ada@uni.edu","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", env.Status)
	require.Equal(t, "ada@uni.edu", svc.LastLoginEmail)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	jwtCookie := cookies[0]
	require.Equal(t, "jwt", jwtCookie.Name)
	require.Equal(t, "signed.jwt.token", jwtCookie.Value)
	require.True(t, jwtCookie.HttpOnly)
	require.True(t, jwtCookie.Secure)
	require.Equal(t, http.SameSiteNoneMode, jwtCookie.SameSite)
	require.Equal(t, 24*60*60, jwtCookie.MaxAge)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{LoginErr: services.ErrInvalidCredentials}
	h := NewAuthHandler(svc, 1, true)

	w, env := doJSON(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"ada@uni.edu","password":"bad"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "error", env.Status)
	require.Equal(t, "Invalid email or password. Kindly try again", env.Message)
	require.Empty(t, w.Result().Cookies())
}

func TestLogin_NotApproved(t *testing.T) {
	svc := &fakeAuthService{LoginErr: services.ErrNotApproved}
	h := NewAuthHandler(svc, 1, true)

	w, env := doJSON(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"email":"ada@uni.edu","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "You are not yet approved to login. Kindly wait for approval", env.Message)
}

func TestLogin_BadPayload(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{}, 1, true)
	w, env := doJSON(t, h.Login, http.MethodPost, "/api/auth/login", `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "error", env.Status)
}

func TestRegister_Created(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{}, 1, true)
	w, env := doJSON(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"full_name":"Dr. Ada Lovelace","email":"ada@uni.edu","password":"s3cret-pass","confirm_password":"s3cret-pass"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "success", env.Status)
	require.Contains(t, env.Message, "under review")
}

func TestRegister_EmailTaken(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{RegisterErr: services.ErrEmailTaken}, 1, true)
	w, env := doJSON(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"full_name":"Dr. Ada Lovelace","email":"ada@uni.edu","password":"s3cret-pass","confirm_password":"s3cret-pass"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Email already registered", env.Message)
}

func TestLogout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{}, 1, true)
	w, env := doJSON(t, h.Logout, http.MethodPost, "/api/auth/logout", `{}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "success", env.Status)

	setCookie := w.Header().Get("Set-Cookie")
	require.True(t, strings.HasPrefix(setCookie, "jwt="))
	require.Contains(t, setCookie, "Max-Age=0")
}

func TestResetPassword_InvalidToken(t *testing.T) {
	h := NewAuthHandler(&fakeAuthService{ResetErr: services.ErrInvalidOrExpiredToken}, 1, true)
	w, env := doJSON(t, h.ResetPassword, http.MethodPatch, "/api/auth/reset-password",
		`{"token":"deadbeef","new_password":"brand-new","confirm_password":"brand-new"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid or expired reset token", env.Message)
}
