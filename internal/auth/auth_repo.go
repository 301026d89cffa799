package auth

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock

type Repository interface {
	// FindForLoginByEmail loads the account with its roles. email must already be normalized.
	FindForLoginByEmail(ctx context.Context, email string) (*UserAccount, error)
	FindByID(ctx context.Context, id int64) (*UserAccount, error)
	Create(ctx context.Context, account *UserAccount) error
	FindOrCreateRoles(ctx context.Context, names []string) ([]Role, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindForLoginByEmail(ctx context.Context, email string) (*UserAccount, error) {
	var account UserAccount
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("email = ?", email).
		First(&account).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*UserAccount, error) {
	var account UserAccount
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&account, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *repository) Create(ctx context.Context, account *UserAccount) error {
	return r.db.WithContext(ctx).Create(account).Error
}

func (r *repository) FindOrCreateRoles(ctx context.Context, names []string) ([]Role, error) {
	roles := make([]Role, 0, len(names))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, name := range names {
			var role Role
			if err := tx.Where(Role{Name: name}).FirstOrCreate(&role).Error; err != nil {
				return err
			}
			roles = append(roles, role)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return roles, nil
}
