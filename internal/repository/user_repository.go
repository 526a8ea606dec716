package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

// ユーザーが見つかりませんを統一
var ErrUserNotFound = errors.New("user not found")

// 保存・取得を約束
type UserRepository interface {
	//新規ユーザー作成
	Create(ctx context.Context, user *model.User) error
	// usernameからユーザーを1件取得する。
	FindByUsername(ctx context.Context, username string) (*model.User, error)
	//username重複チェック
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	//email重複チェック
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
