package postgres

import (
	"context"
	"fmt"

	"github.com/mesharis-cell/platform-api/internal/domain/entity"
	"github.com/mesharis-cell/platform-api/internal/domain/repository"
)

// Asegura que UserRepo implementa repository.UserRepository.
var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, platform_id, company_id, email, password_hash, name, role, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.PlatformID, nullIfEmpty(user.CompanyID), user.Email,
		user.PasswordHash, user.Name, user.Role, user.Status,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// FindByEmail busca un usuario por email dentro de la plataforma.
func (r *UserRepo) FindByEmail(email, platformID string) (*entity.User, error) {
	query := `
		SELECT id, platform_id, company_id, email, password_hash, name, role, status, created_at, updated_at
		FROM users WHERE email = $1 AND platform_id = $2`
	return r.scanOne(query, email, platformID)
}

// GetByID obtiene un usuario por ID dentro de la plataforma.
func (r *UserRepo) GetByID(id, platformID string) (*entity.User, error) {
	query := `
		SELECT id, platform_id, company_id, email, password_hash, name, role, status, created_at, updated_at
		FROM users WHERE id = $1 AND platform_id = $2`
	return r.scanOne(query, id, platformID)
}

func (r *UserRepo) scanOne(query string, args ...any) (*entity.User, error) {
	var u entity.User
	var companyID *string
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&u.ID, &u.PlatformID, &companyID, &u.Email, &u.PasswordHash,
		&u.Name, &u.Role, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.CompanyID = derefStr(companyID)
	return &u, nil
}
