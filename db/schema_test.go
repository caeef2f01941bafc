package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// 凭证与唯一性列必须使用二进制排序规则，否则 MySQL 默认的 ai_ci
// 排序会让 'secret' 与 'SECRET' 匹配同一行
func TestMembersSchemaUsesBinaryCollation(t *testing.T) {
	assert.Contains(t, membersSchema, "username VARCHAR(100) COLLATE utf8mb4_bin NOT NULL UNIQUE")
	assert.Contains(t, membersSchema, "email VARCHAR(255) COLLATE utf8mb4_bin NOT NULL UNIQUE")
	assert.Contains(t, membersSchema, "password VARCHAR(255) COLLATE utf8mb4_bin NOT NULL")
}

// 原生 DDL 与 GORM 迁移路径的列类型保持一致，避免两条路径互相改表
func TestMembersSchemaMatchesModelTypes(t *testing.T) {
	assert.Contains(t, membersSchema, "id BIGINT AUTO_INCREMENT PRIMARY KEY")
	assert.Contains(t, membersSchema, "created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP")
	assert.Contains(t, membersSchema, "updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP")
}
