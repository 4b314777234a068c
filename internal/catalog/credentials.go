package catalog

import (
	"context"
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/madinatul-uloom/madrasah-admin-api/internal/models"
)

// StaticCredentials is an in-memory credential store for development and
// seeding. It satisfies the same contract as the database-backed user
// repository, so the auth service does not care which one it talks to.
type StaticCredentials struct {
	users map[string]staticUser
}

type staticUser struct {
	passwordHash []byte
	user         models.User
}

// NewStaticCredentials builds the fixed development accounts, one per role.
func NewStaticCredentials() *StaticCredentials {
	s := &StaticCredentials{users: make(map[string]staticUser)}
	seed := []struct {
		username string
		password string
		fullName string
		role     models.Role
	}{
		{"superadmin", "super123", "Super Administrator", models.RoleSuperAdmin},
		{"content", "content123", "Content Manager", models.RoleContentManager},
		{"finance", "finance123", "Finance Manager", models.RoleFinanceManager},
		{"teacher", "teacher123", "Teacher", models.RoleTeacher},
	}
	now := time.Now().UTC()
	for _, entry := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(entry.password), bcrypt.MinCost)
		if err != nil {
			continue
		}
		s.users[entry.username] = staticUser{
			passwordHash: hash,
			user: models.User{
				ID:           entry.username,
				Username:     entry.username,
				PasswordHash: string(hash),
				FullName:     entry.fullName,
				Role:         entry.role,
				Active:       true,
				CreatedAt:    now,
				UpdatedAt:    now,
			},
		}
	}
	return s
}

// FindByUsername returns the seeded user. A miss reports sql.ErrNoRows so the
// auth service treats both credential stores identically.
func (s *StaticCredentials) FindByUsername(_ context.Context, username string) (*models.User, error) {
	entry, ok := s.users[username]
	if !ok {
		return nil, sql.ErrNoRows
	}
	user := entry.user
	return &user, nil
}

// UpdateLastLogin is a no-op for the static store.
func (s *StaticCredentials) UpdateLastLogin(context.Context, string, time.Time) error {
	return nil
}
