package services

import (
	"errors"
	"time"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
)

// fakeUserRepo реализует repositories.UserRepository поверх map,
// с честной CAS-семантикой Consume*-методов.
type fakeUserRepo struct {
	users  map[int]*models.User
	nextID int

	FailOn string // имя метода, который должен вернуть ошибку
}

var errFakeRepo = errors.New("fake repo failure")

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) fail(method string) bool { return f.FailOn == method }

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.fail("Create") {
		return errFakeRepo
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int) (*models.User, error) {
	if f.fail("GetByID") {
		return nil, errFakeRepo
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	if f.fail("GetByEmail") {
		return nil, errFakeRepo
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(limit, offset int) ([]*models.User, error) {
	var res []*models.User
	for id := 1; id < f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			cp := *u
			res = append(res, &cp)
		}
	}
	if offset >= len(res) {
		return nil, nil
	}
	res = res[offset:]
	if limit > 0 && limit < len(res) {
		res = res[:limit]
	}
	return res, nil
}

func (f *fakeUserRepo) EmailTaken(email string, excludeID int) (bool, error) {
	for _, u := range f.users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) UpdateProfile(id int, fullName, email string) error {
	if u, ok := f.users[id]; ok {
		u.FullName, u.Email = fullName, email
	}
	return nil
}

func (f *fakeUserRepo) UpdatePassword(id int, passwordHash string) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (f *fakeUserRepo) UpdateRole(id int, role string) error {
	if u, ok := f.users[id]; ok {
		u.Role = role
	}
	return nil
}

func (f *fakeUserRepo) UpdateAccess(id int, access string) error {
	if u, ok := f.users[id]; ok {
		u.Access = access
	}
	return nil
}

func (f *fakeUserRepo) SetActive(id int, active bool) error {
	if u, ok := f.users[id]; ok {
		u.Active = active
	}
	return nil
}

func (f *fakeUserRepo) SetVerificationCode(id int, code int, expiresAt time.Time) error {
	if f.fail("SetVerificationCode") {
		return errFakeRepo
	}
	if u, ok := f.users[id]; ok {
		c, t := code, expiresAt
		u.EmailVerificationCode, u.EmailVerificationCodeExpires = &c, &t
	}
	return nil
}

func (f *fakeUserRepo) ConsumeVerificationCode(id int, code int, now time.Time) (bool, error) {
	u, ok := f.users[id]
	if !ok || u.EmailVerificationCode == nil || u.EmailVerificationCodeExpires == nil {
		return false, nil
	}
	if *u.EmailVerificationCode != code || !u.EmailVerificationCodeExpires.After(now) {
		return false, nil
	}
	u.EmailVerified = true
	u.EmailVerificationCode, u.EmailVerificationCodeExpires = nil, nil
	return true, nil
}

func (f *fakeUserRepo) SetResetToken(id int, tokenHash string, expiresAt time.Time) error {
	if f.fail("SetResetToken") {
		return errFakeRepo
	}
	if u, ok := f.users[id]; ok {
		h, t := tokenHash, expiresAt
		u.PasswordResetToken, u.PasswordResetTokenExpires = &h, &t
	}
	return nil
}

func (f *fakeUserRepo) ListPendingResets(now time.Time) ([]*models.User, error) {
	if f.fail("ListPendingResets") {
		return nil, errFakeRepo
	}
	var res []*models.User
	for id := 1; id < f.nextID; id++ {
		u, ok := f.users[id]
		if !ok || u.PasswordResetToken == nil || u.PasswordResetTokenExpires == nil {
			continue
		}
		if u.PasswordResetTokenExpires.After(now) {
			cp := *u
			res = append(res, &cp)
		}
	}
	return res, nil
}

func (f *fakeUserRepo) ConsumeResetToken(id int, tokenHash, newPasswordHash string) (bool, error) {
	u, ok := f.users[id]
	if !ok || u.PasswordResetToken == nil || *u.PasswordResetToken != tokenHash {
		return false, nil
	}
	u.PasswordHash = newPasswordHash
	u.PasswordResetToken, u.PasswordResetTokenExpires = nil, nil
	return true, nil
}

// fakeNotifier запоминает последнюю отправку вместо реального SMTP.
type fakeNotifier struct {
	LastVerificationUser *models.User
	LastVerificationCode int

	LastResetUser  *models.User
	LastResetToken string

	LastApprovalUser *models.User

	SendErr error
}

func (f *fakeNotifier) SendVerificationEmail(user *models.User, code int) error {
	f.LastVerificationUser, f.LastVerificationCode = user, code
	return f.SendErr
}

func (f *fakeNotifier) SendPasswordResetEmail(user *models.User, token string) error {
	f.LastResetUser, f.LastResetToken = user, token
	return f.SendErr
}

func (f *fakeNotifier) SendApprovalEmail(user *models.User) error {
	f.LastApprovalUser = user
	return f.SendErr
}

// fakeActivities считает записи аудита.
type fakeActivities struct {
	Entries []string
}

func (f *fakeActivities) Log(userID *int, activityType, description string, metadata map[string]string) {
	f.Entries = append(f.Entries, activityType)
}

func (f *fakeActivities) List(limit, offset int) ([]*models.Activity, error) { return nil, nil }
func (f *fakeActivities) DeleteAll() error                                   { return nil }
