package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// 署名が検証できない
	ErrInvalidSignature = errors.New("invalid token signature")
	// トークンの形が壊れている
	ErrMalformed = errors.New("malformed token")
)

// デコード結果。expの判定は呼び出し側が行う。
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ServiceはHS256で署名したaccess/refreshトークンを発行・検証する。
// 署名キーはプロセス起動時に1回だけ読み込む（ローテーションなし。
// キーを替えると発行済みトークンは全て無効になる）。
type Service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// DI
func NewService(secret string, accessTTL time.Duration, refreshTTL time.Duration) *Service {
	return &Service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

// accesstoken発行（短命）
func (s *Service) IssueAccess(subject string) (string, error) {
	return s.issue(subject, s.accessTTL)
}

// refreshtoken発行（長命）
func (s *Service) IssueRefresh(subject string) (string, error) {
	return s.issue(subject, s.refreshTTL)
}

// claimsは {sub, iat, exp} のみ。TTLは起動時設定で固定。
func (s *Service) issue(subject string, ttl time.Duration) (string, error) {
	now := s.now()

	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Decodeは署名を検証してclaimsを取り出す。
// 期限切れはここでは失敗にしない（署名エラーと期限切れを区別するため）。
func (s *Service) Decode(tokenString string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	parsed, err := parser.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return Claims{}, ErrInvalidSignature
		}
		return Claims{}, ErrMalformed
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrMalformed
	}

	//subを取り出す
	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return Claims{}, ErrMalformed
	}

	//expを取り出す
	exp, err := mapClaims.GetExpirationTime()
	if err != nil || exp == nil {
		return Claims{}, ErrMalformed
	}

	//iatは無くてもよい
	var issuedAt time.Time
	if iat, err := mapClaims.GetIssuedAt(); err == nil && iat != nil {
		issuedAt = iat.Time
	}

	return Claims{
		Subject:   sub,
		IssuedAt:  issuedAt,
		ExpiresAt: exp.Time,
	}, nil
}

// IsExpiredは期限切れならtrue。
// デコードできないトークンも期限切れ扱い（fail-closed）。
func (s *Service) IsExpired(tokenString string) bool {
	claims, err := s.Decode(tokenString)
	if err != nil {
		return true
	}

	return !claims.ExpiresAt.After(s.now())
}
