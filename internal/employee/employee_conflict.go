package employee

import (
	"context"
	"errors"

	employeeerrors "go-employee/internal/employee/errors"

	"gorm.io/gorm"
)

func checkVersion(requested, actual int64) error {
	if requested != actual {
		return employeeerrors.VersionMismatch(requested, actual)
	}
	return nil
}

// checkEmailUnique fails when email belongs to an employee other than
// excludingID. A nil excludingID means any owner conflicts.
func checkEmailUnique(ctx context.Context, repo Repository, email string, excludingID *int64) error {
	email = normalizeEmail(email)
	if excludingID == nil {
		exists, err := repo.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return employeeerrors.EmailAlreadyInUse(email)
		}
		return nil
	}

	existing, err := repo.FindByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != *excludingID {
		return employeeerrors.EmailAlreadyInUse(email)
	}
	return nil
}
