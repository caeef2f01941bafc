package model

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GORM 迁移路径也必须给凭证与唯一性列声明二进制排序规则，
// 与 db 包原生 DDL 的精确比较语义一致
func TestMemberCredentialColumnsUseBinaryCollation(t *testing.T) {
	typ := reflect.TypeOf(Member{})

	for _, name := range []string{"Username", "Email", "Password"} {
		field, ok := typ.FieldByName(name)
		require.True(t, ok, "field %s missing", name)
		assert.Contains(t, field.Tag.Get("gorm"), "COLLATE utf8mb4_bin", "field %s", name)
	}
}

func TestMemberTableName(t *testing.T) {
	assert.Equal(t, "members", Member{}.TableName())
}
