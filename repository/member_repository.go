package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"MemberHub/model"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrDuplicateUsername 表示用户名已被占用
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateEmail 表示电子邮件已被其他会员使用
	ErrDuplicateEmail = errors.New("email already in use")
)

const mysqlDupEntry = 1062

// MemberRepository defines the interface for member data operations.
type MemberRepository interface {
	CreateMember(m *model.Member) (int64, error)
	GetMemberByID(id int64) (*model.Member, error)
	GetMemberByUsername(username string) (*model.Member, error)
	GetMemberByEmailAndPassword(email, password string) (*model.Member, error)
	UpdateMember(id int64, email, password, phone, birthdate string) error
	DeleteMember(id int64) error
}

// mysqlMemberRepository implements MemberRepository for MySQL.
type mysqlMemberRepository struct {
	db *sql.DB
}

// NewMySQLMemberRepository creates a new mysqlMemberRepository.
func NewMySQLMemberRepository(db *sql.DB) MemberRepository {
	return &mysqlMemberRepository{db: db}
}

const memberColumns = "id, username, email, password, phone, birthdate, created_at, updated_at"

func scanMember(row *sql.Row) (*model.Member, error) {
	m := &model.Member{}
	err := row.Scan(&m.ID, &m.Username, &m.Email, &m.Password, &m.Phone, &m.Birthdate, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Member not found
		}
		return nil, err
	}
	return m, nil
}

// CreateMember adds a new member. The username and email existence checks
// and the insert run in a single transaction so a concurrent registration
// cannot slip between check and write.
func (r *mysqlMemberRepository) CreateMember(m *model.Member) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin create member transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID int64
	err = tx.QueryRow("SELECT id FROM members WHERE username = ?", m.Username).Scan(&existingID)
	if err == nil {
		return 0, ErrDuplicateUsername
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to check username %s: %w", m.Username, err)
	}

	err = tx.QueryRow("SELECT id FROM members WHERE email = ?", m.Email).Scan(&existingID)
	if err == nil {
		return 0, ErrDuplicateEmail
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("failed to check email %s: %w", m.Email, err)
	}

	res, err := tx.Exec(
		"INSERT INTO members (username, email, password, phone, birthdate) VALUES (?, ?, ?, ?, ?)",
		m.Username, m.Email, m.Password, m.Phone, m.Birthdate)
	if err != nil {
		return 0, mapDuplicateErr(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID for member: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit create member transaction: %w", err)
	}
	return id, nil
}

// GetMemberByID retrieves a member by their ID. Returns (nil, nil) when absent.
func (r *mysqlMemberRepository) GetMemberByID(id int64) (*model.Member, error) {
	row := r.db.QueryRow("SELECT "+memberColumns+" FROM members WHERE id = ?", id)
	m, err := scanMember(row)
	if err != nil {
		return nil, fmt.Errorf("failed to scan member row for ID %d: %w", id, err)
	}
	return m, nil
}

// GetMemberByUsername retrieves a member by their username.
func (r *mysqlMemberRepository) GetMemberByUsername(username string) (*model.Member, error) {
	row := r.db.QueryRow("SELECT "+memberColumns+" FROM members WHERE username = ?", username)
	m, err := scanMember(row)
	if err != nil {
		return nil, fmt.Errorf("failed to scan member row for username %s: %w", username, err)
	}
	return m, nil
}

// GetMemberByEmailAndPassword retrieves the member whose stored email and
// password both match the inputs exactly.
func (r *mysqlMemberRepository) GetMemberByEmailAndPassword(email, password string) (*model.Member, error) {
	row := r.db.QueryRow("SELECT "+memberColumns+" FROM members WHERE email = ? AND password = ?", email, password)
	m, err := scanMember(row)
	if err != nil {
		return nil, fmt.Errorf("failed to scan member row for email %s: %w", email, err)
	}
	return m, nil
}

// UpdateMember overwrites email, password, phone and birthdate for the given
// id. The email ownership check excludes the member being updated, so keeping
// one's own email is always allowed. Updating a nonexistent id affects zero
// rows and is not an error.
func (r *mysqlMemberRepository) UpdateMember(id int64, email, password, phone, birthdate string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin update member transaction: %w", err)
	}
	defer tx.Rollback()

	var ownerID int64
	err = tx.QueryRow("SELECT id FROM members WHERE email = ? AND id != ?", email, id).Scan(&ownerID)
	if err == nil {
		return ErrDuplicateEmail
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check email %s: %w", email, err)
	}

	_, err = tx.Exec(
		"UPDATE members SET email = ?, password = ?, phone = ?, birthdate = ? WHERE id = ?",
		email, password, phone, birthdate, id)
	if err != nil {
		return mapDuplicateErr(err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit update member transaction: %w", err)
	}
	return nil
}

// DeleteMember removes the member with the given id. Deleting a missing id
// is a no-op, matching the idempotent delete semantics of the public flow.
func (r *mysqlMemberRepository) DeleteMember(id int64) error {
	_, err := r.db.Exec("DELETE FROM members WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete member %d: %w", id, err)
	}
	return nil
}

// mapDuplicateErr translates a MySQL duplicate-key error (the UNIQUE
// constraints act as a backstop behind the in-transaction checks) into the
// matching sentinel.
func mapDuplicateErr(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDupEntry {
		if strings.Contains(myErr.Message, "username") {
			return ErrDuplicateUsername
		}
		return ErrDuplicateEmail
	}
	return fmt.Errorf("failed to execute member statement: %w", err)
}
