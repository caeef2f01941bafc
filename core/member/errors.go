package member

import "errors"

// Error taxonomy of the membership store. Handlers translate these into the
// user-facing messages shown on the error page.
var (
	// ErrFieldsRequired 必填字段（去除首尾空白后）为空
	ErrFieldsRequired = errors.New("member: required fields are empty")
	// ErrUsernameTaken 用户名已存在
	ErrUsernameTaken = errors.New("member: username already exists")
	// ErrEmailTaken 电子邮件已被其他会员使用
	ErrEmailTaken = errors.New("member: email already in use")
	// ErrInvalidCredentials 电子邮件或密码不匹配
	ErrInvalidCredentials = errors.New("member: invalid email or password")
	// ErrNotFound 找不到对应的会员
	ErrNotFound = errors.New("member: not found")
)
