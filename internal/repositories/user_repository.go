package repositories

import (
	"database/sql"
	"time"

	"github.com/King-Austin/ATTENDIFY-BACKEND/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List(limit, offset int) ([]*models.User, error)
	EmailTaken(email string, excludeID int) (bool, error)
	UpdateProfile(id int, fullName, email string) error
	UpdatePassword(id int, passwordHash string) error
	UpdateRole(id int, role string) error
	UpdateAccess(id int, access string) error
	SetActive(id int, active bool) error

	// verification code: ровно одна актуальная пара (code, expires) на пользователя
	SetVerificationCode(id int, code int, expiresAt time.Time) error
	ConsumeVerificationCode(id int, code int, now time.Time) (bool, error)

	// password reset: храним bcrypt-хэш токена + срок
	SetResetToken(id int, tokenHash string, expiresAt time.Time) error
	ListPendingResets(now time.Time) ([]*models.User, error)
	ConsumeResetToken(id int, tokenHash, newPasswordHash string) (bool, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `
	id, full_name, email, password_hash, role, access,
	email_verified, email_verification_code, email_verification_code_expires,
	password_reset_token, password_reset_token_expires,
	active, created_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	var (
		code        sql.NullInt64
		codeExpires sql.NullTime
		resetToken  sql.NullString
		resetExp    sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.Role, &u.Access,
		&u.EmailVerified, &code, &codeExpires,
		&resetToken, &resetExp,
		&u.Active, &u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if code.Valid {
		c := int(code.Int64)
		u.EmailVerificationCode = &c
	}
	if codeExpires.Valid {
		t := codeExpires.Time
		u.EmailVerificationCodeExpires = &t
	}
	if resetToken.Valid {
		s := resetToken.String
		u.PasswordResetToken = &s
	}
	if resetExp.Valid {
		t := resetExp.Time
		u.PasswordResetTokenExpires = &t
	}
	return u, nil
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (full_name, email, password_hash, role, access, email_verified, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.Access,
		user.EmailVerified,
		user.Active,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	u, err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	u, err := scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return u, err
}

func (r *userRepository) List(limit, offset int) ([]*models.User, error) {
	rows, err := r.DB.Query(`SELECT `+userColumns+` FROM users ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

func (r *userRepository) EmailTaken(email string, excludeID int) (bool, error) {
	var c int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM users WHERE email = $1 AND id <> $2`, email, excludeID,
	).Scan(&c)
	return c > 0, err
}

func (r *userRepository) UpdateProfile(id int, fullName, email string) error {
	_, err := r.DB.Exec(`UPDATE users SET full_name=$1, email=$2 WHERE id=$3`, fullName, email, id)
	return err
}

func (r *userRepository) UpdatePassword(id int, passwordHash string) error {
	_, err := r.DB.Exec(`UPDATE users SET password_hash=$1 WHERE id=$2`, passwordHash, id)
	return err
}

func (r *userRepository) UpdateRole(id int, role string) error {
	_, err := r.DB.Exec(`UPDATE users SET role=$1 WHERE id=$2`, role, id)
	return err
}

func (r *userRepository) UpdateAccess(id int, access string) error {
	_, err := r.DB.Exec(`UPDATE users SET access=$1 WHERE id=$2`, access, id)
	return err
}

func (r *userRepository) SetActive(id int, active bool) error {
	_, err := r.DB.Exec(`UPDATE users SET active=$1 WHERE id=$2`, active, id)
	return err
}

// ===== verification code =====

func (r *userRepository) SetVerificationCode(id int, code int, expiresAt time.Time) error {
	// новая выдача затирает предыдущую пару
	_, err := r.DB.Exec(`
		UPDATE users
		SET email_verification_code=$1, email_verification_code_expires=$2
		WHERE id=$3
	`, code, expiresAt, id)
	return err
}

// ConsumeVerificationCode — атомарно: отметить email подтверждённым и
// очистить пару (code, expires), только пока код совпадает и не истёк.
// Возвращает false, если ничего не обновили (код неверен, истёк или уже
// израсходован конкурентным запросом).
func (r *userRepository) ConsumeVerificationCode(id int, code int, now time.Time) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE users
		SET email_verified=TRUE, email_verification_code=NULL, email_verification_code_expires=NULL
		WHERE id=$1 AND email_verification_code=$2 AND email_verification_code_expires > $3
	`, id, code, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// ===== password reset =====

func (r *userRepository) SetResetToken(id int, tokenHash string, expiresAt time.Time) error {
	_, err := r.DB.Exec(`
		UPDATE users
		SET password_reset_token=$1, password_reset_token_expires=$2
		WHERE id=$3
	`, tokenHash, expiresAt, id)
	return err
}

// ListPendingResets — кандидаты на погашение токена. Владельца находим
// перебором bcrypt-сравнением, т.к. в БД только хэш.
func (r *userRepository) ListPendingResets(now time.Time) ([]*models.User, error) {
	rows, err := r.DB.Query(`
		SELECT `+userColumns+`
		FROM users
		WHERE password_reset_token IS NOT NULL AND password_reset_token_expires > $1
	`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, u)
	}
	return res, rows.Err()
}

// ConsumeResetToken — атомарная смена пароля с очисткой токена; условие по
// хранимому хэшу гарантирует, что два конкурентных сброса не пройдут оба.
func (r *userRepository) ConsumeResetToken(id int, tokenHash, newPasswordHash string) (bool, error) {
	res, err := r.DB.Exec(`
		UPDATE users
		SET password_hash=$1, password_reset_token=NULL, password_reset_token_expires=NULL
		WHERE id=$2 AND password_reset_token=$3
	`, newPasswordHash, id, tokenHash)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
