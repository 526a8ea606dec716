package validator

import (
	"net/mail"
	"regexp"
	"strings"

	"app/internal/usecase"
)

// 英数字とアンダースコアのみ。数字・アンダースコア始まりは不可。
var usernamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// 会員登録の入力を検証
func (v *authValidator) ValidateRegister(username string, email string, password string) error {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	// username必須・長さ（3〜50）
	if username == "" {
		return usecase.NewValidationError("username: Username is required")
	}
	if len(username) < 3 || len(username) > 50 {
		return usecase.NewValidationError("username: Username must be between 3 and 50 characters")
	}

	// username形式
	if !usernamePattern.MatchString(username) {
		return usecase.NewValidationError("username: Username can only contain alphanumeric characters and underscores, and cannot start with an underscore or number.")
	}

	// email必須・形式
	if email == "" {
		return usecase.NewValidationError("email: Email is required")
	}
	if !isEmailLike(email) {
		return usecase.NewValidationError("email: Email should be valid")
	}

	// パスワード最低文字数（6）
	if password == "" {
		return usecase.NewValidationError("password: Password is required")
	}
	if len(password) < 6 {
		return usecase.NewValidationError("password: Password must be at least 6 characters")
	}

	return nil
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(username string, password string) error {
	// 必須チェックのみ。形式エラーでユーザーの存在を推測させない。
	if strings.TrimSpace(username) == "" {
		return usecase.NewValidationError("username: Username is required")
	}
	if password == "" {
		return usecase.NewValidationError("password: Password is required")
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	// "Name <a@b>" のような形は弾く
	return addr.Address == s
}
