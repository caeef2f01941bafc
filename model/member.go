package model

import "time"

// Member represents a registered member of the system.
// Password is stored as plain text and compared verbatim; the original
// system the data was migrated from worked this way and existing rows
// cannot be rehashed without breaking their logins.
// 用户名、邮箱与密码列使用 utf8mb4_bin，保证比较区分大小写，
// 列类型与 db 包的原生 DDL 保持一致，两条建表路径互不改写
type Member struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"type:varchar(100) COLLATE utf8mb4_bin;uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"type:varchar(255) COLLATE utf8mb4_bin;uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255) COLLATE utf8mb4_bin;not null"`
	Phone     string    `json:"phone,omitempty" gorm:"type:varchar(20);not null;default:''"`
	Birthdate string    `json:"birthdate,omitempty" gorm:"type:varchar(32);not null;default:''"`
	CreatedAt time.Time `json:"createdAt" gorm:"type:timestamp;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"type:timestamp;default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP"`
}

// TableName keeps the GORM migration path on the same table the raw SQL
// layer uses.
func (Member) TableName() string {
	return "members"
}
