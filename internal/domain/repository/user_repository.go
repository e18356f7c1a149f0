package repository

import (
	"context"

	"github.com/vitalseg/corretora-api/internal/domain/entity"
)

// UserRepository porta de persistência para usuários do portal.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
