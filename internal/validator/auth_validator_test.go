package validator_test

import (
	"strings"
	"testing"

	"app/internal/usecase"
	"app/internal/validator"

	"github.com/stretchr/testify/assert"
)

func TestValidateRegister(t *testing.T) {
	v := validator.NewAuthValidator()

	//正常系
	assert.NoError(t, v.ValidateRegister("alice", "alice@example.com", "secret123"))
	assert.NoError(t, v.ValidateRegister("a_1", "a@b.co", "123456"))

	cases := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"username空", "", "a@example.com", "secret123"},
		{"username短い", "ab", "a@example.com", "secret123"},
		{"username長い", strings.Repeat("a", 51), "a@example.com", "secret123"},
		{"数字始まり", "1alice", "a@example.com", "secret123"},
		{"アンダースコア始まり", "_alice", "a@example.com", "secret123"},
		{"記号入り", "ali-ce", "a@example.com", "secret123"},
		{"email空", "alice", "", "secret123"},
		{"email不正", "alice", "not-an-email", "secret123"},
		{"email表示名付き", "alice", "Alice <a@example.com>", "secret123"},
		{"password空", "alice", "a@example.com", ""},
		{"password短い", "alice", "a@example.com", "12345"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateRegister(tc.username, tc.email, tc.password)

			var validationErr *usecase.ValidationError
			assert.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateLogin(t *testing.T) {
	v := validator.NewAuthValidator()

	assert.NoError(t, v.ValidateLogin("alice", "whatever"))

	// 形式チェックはしない（存在を推測させない）。必須チェックだけ。
	assert.NoError(t, v.ValidateLogin("1_not_a_valid_handle", "pw"))

	var validationErr *usecase.ValidationError
	assert.ErrorAs(t, v.ValidateLogin("", "pw"), &validationErr)
	assert.ErrorAs(t, v.ValidateLogin("alice", ""), &validationErr)
}
