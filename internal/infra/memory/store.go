package memory

import (
	"context"
	"fmt"
	"sync"

	authDomain "stock-insight/internal/domain/auth"
	authinfra "stock-insight/internal/infrastructure/auth"
)

// Store 為管理帳號的記憶體存放區；服務不落地使用者資料，
// 僅在啟動時 seed 供管理端點登入。
type Store struct {
	mu    sync.RWMutex
	users map[string]authDomain.User
	idSeq int64
}

// NewStore 建立新的記憶體 Store 實例。
func NewStore() *Store {
	return &Store{users: make(map[string]authDomain.User)}
}

func (s *Store) nextID() string {
	s.idSeq++
	return fmt.Sprintf("id-%d", s.idSeq)
}

// SeedUsers 建立預設帳號供登入測試。
func (s *Store) SeedUsers() {
	hash := func(p string) string {
		h, err := authinfra.HashPassword(p)
		if err != nil {
			return p
		}
		return h
	}
	s.AddUser("admin@example.com", hash("password123"), "Admin", authDomain.RoleAdmin)
	s.AddUser("viewer@example.com", hash("password123"), "Viewer", authDomain.RoleViewer)
}

// AddUser 新增使用者（password 須為雜湊後字串）。
func (s *Store) AddUser(email, password, name string, role authDomain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID()
	s.users[id] = authDomain.User{
		ID:       id,
		Email:    email,
		Name:     name,
		Role:     role,
		Status:   authDomain.StatusActive,
		Password: password,
	}
}

// FindByEmail 依 email 查詢使用者。
func (s *Store) FindByEmail(ctx context.Context, email string) (authDomain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return authDomain.User{}, fmt.Errorf("user not found")
}
