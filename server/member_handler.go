package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"MemberHub/core/member"
	"MemberHub/logger"

	"github.com/gorilla/mux"
)

// 用户可见的错误讯息，与原系统的提示文字保持一致
const (
	msgFieldsRequired        = "請輸入用戶名、電子郵件和密碼"
	msgUsernameTaken         = "用戶名已存在"
	msgEmailPasswordRequired = "請輸入電子郵件和密碼"
	msgBadCredentials        = "電子郵件或密碼錯誤"
	msgEmailTaken            = "電子郵件已被使用"
	msgMemberNotFound        = "找不到該用戶"
	msgUnknownError          = "發生未知錯誤"
)

// MemberHandler 会员页面处理器
type MemberHandler struct {
	store *member.Store
}

// NewMemberHandler 创建会员页面处理器
func NewMemberHandler(store *member.Store) *MemberHandler {
	return &MemberHandler{store: store}
}

// redirectError 跳转到错误页并携带讯息
func redirectError(w http.ResponseWriter, r *http.Request, message string) {
	http.Redirect(w, r, "/error?message="+url.QueryEscape(message), http.StatusFound)
}

func redirectWelcome(w http.ResponseWriter, r *http.Request, username string) {
	http.Redirect(w, r, "/welcome?username="+url.QueryEscape(username), http.StatusFound)
}

// IndexHandler 首页
func (h *MemberHandler) IndexHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "index.html", nil)
}

// RegisterFormHandler 注册表单页
func (h *MemberHandler) RegisterFormHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "register.html", nil)
}

// RegisterHandler 处理注册表单提交
func (h *MemberHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, msgUnknownError)
		return
	}

	_, err := h.store.Register(
		r.FormValue("username"),
		r.FormValue("email"),
		r.FormValue("password"),
		r.FormValue("phone"),
		r.FormValue("birthdate"),
	)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrFieldsRequired):
			redirectError(w, r, msgFieldsRequired)
		case errors.Is(err, member.ErrUsernameTaken):
			redirectError(w, r, msgUsernameTaken)
		case errors.Is(err, member.ErrEmailTaken):
			redirectError(w, r, msgEmailTaken)
		default:
			logger.Error("register failed", logger.ErrorField(err))
			redirectError(w, r, msgUnknownError)
		}
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginFormHandler 登录表单页
func (h *MemberHandler) LoginFormHandler(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "login.html", nil)
}

// LoginHandler 处理登录表单提交
func (h *MemberHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r, msgUnknownError)
		return
	}

	m, err := h.store.Authenticate(r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		switch {
		case errors.Is(err, member.ErrFieldsRequired):
			redirectError(w, r, msgEmailPasswordRequired)
		case errors.Is(err, member.ErrInvalidCredentials):
			redirectError(w, r, msgBadCredentials)
		default:
			logger.Error("login failed", logger.ErrorField(err))
			redirectError(w, r, msgUnknownError)
		}
		return
	}

	redirectWelcome(w, r, m.Username)
}

// ErrorHandler 错误讯息页
func (h *MemberHandler) ErrorHandler(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	if message == "" {
		message = msgUnknownError
	}
	renderPage(w, "error.html", struct{ Message string }{Message: message})
}

// WelcomeHandler 登录成功后的欢迎页，按用户名解析会员编号
func (h *MemberHandler) WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	username := r.URL.Query().Get("username")

	m, err := h.store.Lookup(username)
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			redirectError(w, r, msgMemberNotFound)
			return
		}
		logger.Error("welcome lookup failed", logger.String("username", username), logger.ErrorField(err))
		redirectError(w, r, msgUnknownError)
		return
	}

	renderPage(w, "welcome.html", struct {
		Banner string
		ID     int64
	}{
		Banner: fmt.Sprintf("歡迎，★%s★！", m.Username),
		ID:     m.ID,
	})
}

// EditProfileFormHandler 编辑资料页，密码不回显
func (h *MemberHandler) EditProfileFormHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["iid"], 10, 64)
	if err != nil {
		redirectError(w, r, msgMemberNotFound)
		return
	}

	m, err := h.store.GetByID(id)
	if err != nil {
		if errors.Is(err, member.ErrNotFound) {
			redirectError(w, r, msgMemberNotFound)
			return
		}
		logger.Error("load member for edit failed", logger.Int64("id", id), logger.ErrorField(err))
		redirectError(w, r, msgUnknownError)
		return
	}

	renderPage(w, "edit_profile.html", struct {
		ID        int64
		Username  string
		Email     string
		Phone     string
		Birthdate string
	}{
		ID:        m.ID,
		Username:  m.Username,
		Email:     m.Email,
		Phone:     m.Phone,
		Birthdate: m.Birthdate,
	})
}

// EditProfileHandler 处理资料编辑提交
func (h *MemberHandler) EditProfileHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["iid"], 10, 64)
	if err != nil {
		redirectError(w, r, msgMemberNotFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		redirectError(w, r, msgUnknownError)
		return
	}

	m, err := h.store.Update(id,
		r.FormValue("email"),
		r.FormValue("password"),
		r.FormValue("phone"),
		r.FormValue("birthdate"),
	)
	if err != nil {
		switch {
		case errors.Is(err, member.ErrFieldsRequired):
			redirectError(w, r, msgEmailPasswordRequired)
		case errors.Is(err, member.ErrEmailTaken):
			redirectError(w, r, msgEmailTaken)
		case errors.Is(err, member.ErrNotFound):
			redirectError(w, r, msgMemberNotFound)
		default:
			logger.Error("update member failed", logger.Int64("id", id), logger.ErrorField(err))
			redirectError(w, r, msgUnknownError)
		}
		return
	}

	redirectWelcome(w, r, m.Username)
}

// DeleteMemberHandler 删除会员后回到首页，重复删除同样回首页
func (h *MemberHandler) DeleteMemberHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["iid"], 10, 64)
	if err == nil {
		if err := h.store.Delete(id); err != nil {
			logger.Error("delete member failed", logger.Int64("id", id), logger.ErrorField(err))
		}
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// HealthHandler 健康检查
func (h *MemberHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "memberhub",
		"time":    time.Now().Format(time.RFC3339),
	})
}
