package auth

import (
	"context"
	"errors"
	"strings"

	"stock-insight/internal/domain/auth"
)

// UserRepository 存取使用者。
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (auth.User, error)
}

// PasswordHasher 驗證密碼。
type PasswordHasher interface {
	Compare(hashed, plain string) bool
}

// TokenIssuer 簽發 access token。
type TokenIssuer interface {
	Issue(user auth.User) (auth.Token, error)
}

// Permission 表示功能權限。
type Permission string

const (
	PermRegistryReload Permission = "registry.reload"
)

// RolePermissions 簡化權限表：僅管理操作需要權限，查詢端點開放。
var RolePermissions = map[auth.Role][]Permission{
	auth.RoleAdmin:  {PermRegistryReload},
	auth.RoleViewer: {},
}

// HasPermission 檢查角色是否具備指定權限。
func HasPermission(role auth.Role, required Permission) bool {
	for _, p := range RolePermissions[role] {
		if p == required {
			return true
		}
	}
	return false
}

// LoginUseCase 驗證帳密並簽發 token。
type LoginUseCase struct {
	users  UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewLoginUseCase 建立登入 usecase。
func NewLoginUseCase(users UserRepository, hasher PasswordHasher, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{users: users, hasher: hasher, tokens: tokens}
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	User  auth.User
	Token auth.Token
}

// Execute 驗證帳密；任何失敗都回傳同樣粗粒度的錯誤，避免洩漏帳號是否存在。
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (LoginResult, error) {
	var out LoginResult
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || input.Password == "" {
		return out, errors.New("email and password required")
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return out, errors.New("invalid credentials")
	}
	if !user.IsActive() {
		return out, errors.New("account disabled")
	}
	if !uc.hasher.Compare(user.Password, input.Password) {
		return out, errors.New("invalid credentials")
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return out, err
	}
	out.User = user
	out.Token = token
	return out, nil
}
