package employee

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStaleVersion is returned when a version-conditioned write matched no row.
var ErrStaleVersion = errors.New("employee: version changed or row removed")

// SortableProperties maps wire property names to columns.
var SortableProperties = map[string]string{
	"id":        "id",
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"version":   "version",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id int64) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee, expectedVersion int64) error
	Delete(ctx context.Context, id int64, expectedVersion int64) error
	Search(ctx context.Context, filter Filter, page Pageable) ([]Employee, int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("email = ?", normalizeEmail(email)).
		First(&empl).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", normalizeEmail(email)).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

// Update writes the mutable fields only when the stored version still equals
// expectedVersion, then bumps the version.
func (r *repository) Update(ctx context.Context, empl *Employee, expectedVersion int64) error {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ? AND version = ?", empl.ID, expectedVersion).
		Updates(map[string]any{
			"first_name": empl.FirstName,
			"last_name":  empl.LastName,
			"email":      empl.Email,
			"version":    gorm.Expr("version + 1"),
			"updated_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleVersion
	}

	empl.Version = expectedVersion + 1
	empl.UpdatedAt = now
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64, expectedVersion int64) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", id, expectedVersion).
		Delete(&Employee{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStaleVersion
	}
	return nil
}

func (r *repository) Search(ctx context.Context, filter Filter, page Pageable) ([]Employee, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(filterScope(filter)).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(filterScope(filter), sortScope(page.Sort)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&empls).Error
	return empls, total, err
}

func filterScope(f Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = containsIgnoreCase(db, "first_name", f.FirstName)
		db = containsIgnoreCase(db, "last_name", f.LastName)
		return containsIgnoreCase(db, "email", f.Email)
	}
}

func containsIgnoreCase(db *gorm.DB, column, value string) *gorm.DB {
	value = strings.TrimSpace(value)
	if value == "" {
		return db
	}
	return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(value))+"%")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func sortScope(orders []SortOrder) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		byID := false
		for _, o := range orders {
			col, ok := SortableProperties[o.Property]
			if !ok {
				continue
			}
			byID = byID || col == "id"
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: o.Desc})
		}
		// stable paging
		if !byID {
			db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
		}
		return db
	}
}
