package repository

import "github.com/mesharis-cell/platform-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email, platformID string) (*entity.User, error)
	GetByID(id, platformID string) (*entity.User, error)
}
