package usecase

import (
	"errors"
	"fmt"
)

var (
	//401 認証失敗（ユーザー不在とパスワード違いは区別しない）
	ErrInvalidCredentials = errors.New("Invalid username or password")
	//400 refresh tokenの期限切れ・不正
	ErrTokenExpired = errors.New("Refresh token has been expired!")
	//401 トークンなし・無効
	ErrUnauthenticated = errors.New("user not authenticated")
	//429 レート制限
	ErrRateLimited = errors.New("too many requests")
	//500 外部依存（DBなど）の失敗
	ErrInternal = errors.New("internal error")
)

// 入力検証エラー。メッセージは「field: 理由」の形。
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// username/emailの一意制約違反。どちらが衝突したかをメッセージに含める。
type AlreadyExistsError struct {
	Value string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("User '%s' already exists.", e.Value)
}

// 所有していない・存在しないノート。両方とも同じ見え方にする。
type NoteNotFoundError struct {
	NoteID int64
}

func (e *NoteNotFoundError) Error() string {
	return fmt.Sprintf("Note not found with ID=%d.", e.NoteID)
}

// 期限の切れたノートへのread/update。
type NoteExpiredError struct {
	NoteID int64
}

func (e *NoteExpiredError) Error() string {
	return fmt.Sprintf("Note '%d' has already expired.", e.NoteID)
}
