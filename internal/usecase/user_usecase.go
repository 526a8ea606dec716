package usecase

import (
	"context"
	"errors"
	"log/slog"

	"app/internal/repository"
)

// UserUsecaseはログイン中ユーザーの照会。
type UserUsecase struct {
	users  repository.UserRepository
	logger *slog.Logger
}

// DI
func NewUserUsecase(users repository.UserRepository, logger *slog.Logger) *UserUsecase {
	return &UserUsecase{users: users, logger: logger}
}

// usernameでユーザー詳細を返す。
// usernameはミドルウェアが検証済みトークンから解決したもの。
func (u *UserUsecase) Get(ctx context.Context, username string) (*UserDTO, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// トークンは有効だがユーザーが消えている
			return nil, ErrUnauthenticated
		}
		return nil, ErrInternal
	}

	u.logger.InfoContext(ctx, "fetched user details", "username", username)

	return &UserDTO{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}
