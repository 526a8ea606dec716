package usecase

import (
	"context"
	"errors"
	"log/slog"

	"app/internal/domain/model"
	"app/internal/repository"
	"app/internal/token"
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateRegister(username string, email string, password string) error
	ValidateLogin(username string, password string) error
}

// 会員登録の入力
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// 登録・ユーザー照会のレスポンス（passwordは返さない）
type UserDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ログイン・refreshのレスポンス
type AuthDTO struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	Username     string `json:"username"`
	Email        string `json:"email"`
}

// トークン発行・検証の約束（internal/tokenが実装）
type TokenService interface {
	IssueAccess(subject string) (string, error)
	IssueRefresh(subject string) (string, error)
	Decode(tokenString string) (token.Claims, error)
	IsExpired(tokenString string) bool
}

// AuthUsecaseはregister/login/refreshを束ねる。
// セッションはサーバー側に持たない。トークンの中身から毎回復元する。
type AuthUsecase struct {
	users     repository.UserRepository
	tokens    TokenService
	hasher    PasswordHasher
	verifier  PasswordVerifier
	validator AuthValidator
	logger    *slog.Logger
}

// DI
func NewAuthUsecase(
	users repository.UserRepository,
	tokens TokenService,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	validator AuthValidator,
	logger *slog.Logger,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		tokens:    tokens,
		hasher:    hasher,
		verifier:  verifier,
		validator: validator,
		logger:    logger,
	}
}

// 会員登録実行
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(in.Username, in.Email, in.Password); err != nil {
		return nil, err
	}

	// username重複チェック（emailとは別々に見て、どちらが衝突したか返す）
	taken, err := u.users.ExistsByUsername(ctx, in.Username)
	if err != nil {
		return nil, ErrInternal
	}
	if taken {
		return nil, &AlreadyExistsError{Value: in.Username}
	}

	// email重複チェック
	taken, err = u.users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, ErrInternal
	}
	if taken {
		return nil, &AlreadyExistsError{Value: in.Email}
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return nil, ErrInternal
	}

	user := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hashed,
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, ErrInternal
	}

	u.logger.InfoContext(ctx, "registered user", "username", user.Username)

	return &UserDTO{
		Username: user.Username,
		Email:    user.Email,
	}, nil
}

// ログイン処理を実行する
func (u *AuthUsecase) Login(ctx context.Context, username string, password string) (*AuthDTO, error) {
	if err := u.validator.ValidateLogin(username, password); err != nil {
		return nil, err
	}

	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// ユーザー不在もパスワード違いと同じエラー（列挙攻撃対策）
			return nil, ErrInvalidCredentials
		}
		return nil, ErrInternal
	}

	//パスワード照合
	if ok := u.verifier.Verify(password, user.PasswordHash); !ok {
		return nil, ErrInvalidCredentials
	}

	//accesstoken + refreshtoken発行
	accessToken, err := u.tokens.IssueAccess(user.Username)
	if err != nil {
		return nil, ErrInternal
	}

	refreshToken, err := u.tokens.IssueRefresh(user.Username)
	if err != nil {
		return nil, ErrInternal
	}

	u.logger.InfoContext(ctx, "user logged in", "username", user.Username)

	return &AuthDTO{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Username:     user.Username,
		Email:        user.Email,
	}, nil
}

// refreshtokenでaccesstokenを再発行する。
// refreshtokenはローテーションせず同じものを返す（期限まで再利用できる）。
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*AuthDTO, error) {
	// デコード不能も期限切れ扱い（fail-closed）
	if u.tokens.IsExpired(refreshToken) {
		return nil, ErrTokenExpired
	}

	claims, err := u.tokens.Decode(refreshToken)
	if err != nil {
		return nil, ErrTokenExpired
	}

	user, err := u.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// ユーザーが消えたトークンも列挙を避けて同じ扱い
			return nil, ErrTokenExpired
		}
		return nil, ErrInternal
	}

	accessToken, err := u.tokens.IssueAccess(user.Username)
	if err != nil {
		return nil, ErrInternal
	}

	u.logger.InfoContext(ctx, "refreshed access token", "username", user.Username)

	return &AuthDTO{
		Token:        accessToken,
		RefreshToken: refreshToken,
		Username:     user.Username,
		Email:        user.Email,
	}, nil
}
