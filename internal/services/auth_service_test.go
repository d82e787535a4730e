package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/authz"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/config"
	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
)

type authFixture struct {
	repo     *fakeUserRepo
	tokens   TokenService
	notifier *fakeNotifier
	audit    *fakeActivities
	svc      AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	repo := newFakeUserRepo()
	tokens := NewTokenService(repo, config.JWTConfig{Secret: "test-secret", ExpiresDays: 1})
	notifier := &fakeNotifier{}
	audit := &fakeActivities{}
	tg := NewTelegramService("", 0, true)
	return &authFixture{
		repo:     repo,
		tokens:   tokens,
		notifier: notifier,
		audit:    audit,
		svc:      NewAuthService(repo, tokens, notifier, audit, tg),
	}
}

func registerReq(email string) *models.RegisterRequest {
	return &models.RegisterRequest{
		FullName:        "Dr. Ada Lovelace",
		Email:           email,
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
	}
}

func TestRegister_CreatesPendingLecturer(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))

	u, err := f.repo.GetByEmail("ada@uni.edu")
	require.NoError(t, err)
	require.NotNil(t, u)
	require.Equal(t, authz.RoleLecturer, u.Role)
	require.Equal(t, authz.AccessPending, u.Access)
	require.True(t, u.Active)
	require.False(t, u.EmailVerified)

	// пароль хранится только как bcrypt-хэш
	require.NotEqual(t, "s3cret-pass", u.PasswordHash)
	require.True(t, strings.HasPrefix(u.PasswordHash, "$2"))
	require.True(t, CheckPassword(u.PasswordHash, "s3cret-pass"))

	require.Contains(t, f.audit.Entries, models.ActivityRegister)
}

func TestRegister_PasswordMismatch(t *testing.T) {
	f := newAuthFixture(t)
	req := registerReq("ada@uni.edu")
	req.ConfirmPassword = "different"
	require.ErrorIs(t, f.svc.Register(req), ErrPasswordMismatch)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))
	require.ErrorIs(t, f.svc.Register(registerReq("ada@uni.edu")), ErrEmailTaken)
}

func TestLogin_Approved(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))
	u, _ := f.repo.GetByEmail("ada@uni.edu")
	require.NoError(t, f.repo.UpdateAccess(u.ID, authz.AccessApproved))

	got, token, err := f.svc.Login("ada@uni.edu", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.NotEmpty(t, token)

	verified, err := f.tokens.VerifySessionToken(token)
	require.NoError(t, err)
	require.Equal(t, u.ID, verified.ID)
}

// Неизвестный email и неверный пароль дают один и тот же сбой.
func TestLogin_UniformFailure(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))
	u, _ := f.repo.GetByEmail("ada@uni.edu")
	require.NoError(t, f.repo.UpdateAccess(u.ID, authz.AccessApproved))

	_, _, errUnknown := f.svc.Login("nobody@uni.edu", "s3cret-pass")
	_, _, errWrongPass := f.svc.Login("ada@uni.edu", "bad-pass")
	require.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
}

func TestLogin_PendingAndDenied(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))

	_, _, err := f.svc.Login("ada@uni.edu", "s3cret-pass")
	require.ErrorIs(t, err, ErrNotApproved)

	u, _ := f.repo.GetByEmail("ada@uni.edu")
	require.NoError(t, f.repo.UpdateAccess(u.ID, authz.AccessDenied))
	_, _, err = f.svc.Login("ada@uni.edu", "s3cret-pass")
	require.ErrorIs(t, err, ErrNotApproved)
}

func TestChangePassword(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))
	u, _ := f.repo.GetByEmail("ada@uni.edu")

	require.ErrorIs(t, f.svc.ChangePassword(u, "bad-current", "new-pass"), ErrWrongPassword)

	require.NoError(t, f.svc.ChangePassword(u, "s3cret-pass", "new-pass"))
	got, _ := f.repo.GetByID(u.ID)
	require.True(t, CheckPassword(got.PasswordHash, "new-pass"))
	require.False(t, CheckPassword(got.PasswordHash, "s3cret-pass"))
}

func TestForgotPassword_SendsToken(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))

	require.NoError(t, f.svc.ForgotPassword("ada@uni.edu"))
	require.NotNil(t, f.notifier.LastResetUser)
	require.Len(t, f.notifier.LastResetToken, 64)
}

// Для неизвестного email ответ тот же успех, письма нет.
func TestForgotPassword_UnknownEmail(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.ForgotPassword("nobody@uni.edu"))
	require.Nil(t, f.notifier.LastResetUser)
}

func TestResetPassword_FullFlow(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))
	require.NoError(t, f.svc.ForgotPassword("ada@uni.edu"))
	token := f.notifier.LastResetToken

	require.ErrorIs(t, f.svc.ResetPassword(token, "brand-new", "mismatch"), ErrPasswordMismatch)

	require.NoError(t, f.svc.ResetPassword(token, "brand-new", "brand-new"))
	u, _ := f.repo.GetByEmail("ada@uni.edu")
	require.True(t, CheckPassword(u.PasswordHash, "brand-new"))

	// токен одноразовый
	require.ErrorIs(t, f.svc.ResetPassword(token, "again", "again"), ErrInvalidOrExpiredToken)
}

func TestVerifyEmailFlow(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))
	u, _ := f.repo.GetByEmail("ada@uni.edu")

	require.NoError(t, f.svc.SendVerificationCode(u))
	code := f.notifier.LastVerificationCode
	require.GreaterOrEqual(t, code, 100000)

	require.NoError(t, f.svc.VerifyEmail(u, code))
	got, _ := f.repo.GetByID(u.ID)
	require.True(t, got.EmailVerified)

	// уже подтверждён — новый код не выдаём
	require.ErrorIs(t, f.svc.SendVerificationCode(got), ErrAlreadyVerified)
}

func TestMakeAdmin(t *testing.T) {
	f := newAuthFixture(t)
	require.NoError(t, f.svc.Register(registerReq("ada@uni.edu")))
	require.NoError(t, f.svc.Register(registerReq("grace@uni.edu")))
	target, _ := f.repo.GetByEmail("grace@uni.edu")

	lecturer, _ := f.repo.GetByEmail("ada@uni.edu")
	_, err := f.svc.MakeAdmin(lecturer, target.ID)
	require.ErrorIs(t, err, ErrForbidden)

	admin := &models.User{ID: lecturer.ID, Role: authz.RoleAdmin}
	promoted, err := f.svc.MakeAdmin(admin, target.ID)
	require.NoError(t, err)
	require.Equal(t, authz.RoleAdmin, promoted.Role)

	_, err = f.svc.MakeAdmin(admin, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}
