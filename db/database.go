package db

import (
	"database/sql"
	"fmt"
	"log"

	"MemberHub/config"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
)

var DB *sql.DB

// ConnectDB establishes a connection to the database.
func ConnectDB(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)

	var err error
	DB, err = sql.Open("mysql", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = DB.Ping(); err != nil {
		DB.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Successfully connected to the database.")
	return nil
}

// InitDB initializes the database schema. It is idempotent: the members
// table is created only if absent, and the example member only if missing.
func InitDB() error {
	if err := createMembersTable(); err != nil {
		return err
	}
	if err := seedDefaultMember(); err != nil {
		// 种子数据失败不阻止启动，已有部署的表里通常已经有数据
		log.Printf("Seeding default member failed (non-fatal): %v", err)
	}
	log.Println("Database initialization completed.")
	return nil
}

// membersSchema 中用户名、邮箱与密码使用二进制排序规则：
// 登录比较和唯一性检查都必须区分大小写，默认的 ai_ci 排序规则会把
// 'secret' 和 'SECRET' 当成相同值
const membersSchema = `
	CREATE TABLE IF NOT EXISTS members (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(100) COLLATE utf8mb4_bin NOT NULL UNIQUE,
		email VARCHAR(255) COLLATE utf8mb4_bin NOT NULL UNIQUE,
		password VARCHAR(255) COLLATE utf8mb4_bin NOT NULL,
		phone VARCHAR(20) NOT NULL DEFAULT '',
		birthdate VARCHAR(32) NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
	`

func createMembersTable() error {
	if _, err := DB.Exec(membersSchema); err != nil {
		return fmt.Errorf("failed to create members table: %w", err)
	}
	log.Println("Members table initialized successfully (or already exists).")
	return nil
}

// seedDefaultMember creates the example 'admin' member on first startup.
func seedDefaultMember() error {
	var existingID int64
	err := DB.QueryRow("SELECT id FROM members WHERE username = ?", "admin").Scan(&existingID)
	if err == nil {
		log.Printf("Default member 'admin' already exists with ID: %d. Skipping creation.", existingID)
		return nil
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check for default member: %w", err)
	}

	res, err := DB.Exec(
		"INSERT INTO members (username, email, password, phone, birthdate) VALUES (?, ?, ?, ?, ?)",
		"admin", "admin@example.com", "admin123", "0912345678", "1990-01-01")
	if err != nil {
		return fmt.Errorf("failed to insert default member: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get ID of default member: %w", err)
	}
	log.Printf("Default member 'admin' created with ID: %d", id)
	return nil
}
