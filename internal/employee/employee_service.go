package employee

import (
	"context"
	"errors"
	"strconv"

	"go-employee/internal/bootstrap"
	employeeerrors "go-employee/internal/employee/errors"
	"go-employee/internal/shared/contextutil"
	"go-employee/internal/shared/response"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, filter Filter, page Pageable) (response.Page[EmployeeResponse], error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Patch(ctx context.Context, id int64, req PatchEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64, version int64) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	audit  bootstrap.AuditLogger
	logger *zap.Logger
}

// NewService builds the employee command handlers. audit may be nil.
func NewService(db *gorm.DB, repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		audit:  audit,
		logger: l,
	}
}

// inTx runs fn against a repository bound to one transaction.
func (s *service) inTx(ctx context.Context, fn func(qtx Repository) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.repo.WithTx(tx))
	})
}

func (s *service) List(ctx context.Context, filter Filter, page Pageable) (response.Page[EmployeeResponse], error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("list employees requested",
		zap.Int("page", page.Page),
		zap.Int("size", page.Size),
	)

	empls, total, err := s.repo.Search(ctx, filter, page)
	if err != nil {
		log.Error("list employees failed", zap.Error(err))
		return response.Page[EmployeeResponse]{}, mapRepositoryError(err, 0, "")
	}

	return response.NewPage(toListResponse(empls), page.Page, page.Size, total), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("get employee by id requested", zap.Int64("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.Warn("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err, id, "")
	}

	return toResponse(*empl), nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	empl := toEntity(req)
	log.Debug("create employee requested", zap.String("email", empl.Email))

	err := s.inTx(ctx, func(qtx Repository) error {
		if err := checkEmailUnique(ctx, qtx, empl.Email, nil); err != nil {
			return err
		}
		if err := qtx.Create(ctx, empl); err != nil {
			return mapRepositoryError(err, 0, empl.Email)
		}
		return nil
	})
	if err != nil {
		log.Warn("create employee failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("create employee success", zap.Int64("employee_id", empl.ID))
	return toResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if req.Version == nil {
		return EmployeeResponse{}, employeeerrors.ErrVersionRequired
	}
	log.Debug("update employee requested",
		zap.Int64("employee_id", id),
		zap.Int64("version", *req.Version),
	)

	var empl *Employee
	err := s.inTx(ctx, func(qtx Repository) error {
		var err error
		empl, err = qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err, id, "")
		}
		if err := checkVersion(*req.Version, empl.Version); err != nil {
			return err
		}
		if err := checkEmailUnique(ctx, qtx, req.Email, &id); err != nil {
			return err
		}

		applyUpdate(empl, req)
		return s.save(ctx, qtx, empl, *req.Version)
	})
	if err != nil {
		log.Warn("update employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("update employee success", zap.Int64("employee_id", id), zap.Int64("version", empl.Version))
	return toResponse(*empl), nil
}

func (s *service) Patch(ctx context.Context, id int64, req PatchEmployeeRequest) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if req.Version == nil {
		return EmployeeResponse{}, employeeerrors.ErrVersionRequired
	}
	log.Debug("patch employee requested",
		zap.Int64("employee_id", id),
		zap.Int64("version", *req.Version),
	)

	var empl *Employee
	err := s.inTx(ctx, func(qtx Repository) error {
		var err error
		empl, err = qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err, id, "")
		}
		if err := checkVersion(*req.Version, empl.Version); err != nil {
			return err
		}
		if req.Email != nil {
			if err := checkEmailUnique(ctx, qtx, *req.Email, &id); err != nil {
				return err
			}
		}

		applyPatch(empl, req)
		return s.save(ctx, qtx, empl, *req.Version)
	})
	if err != nil {
		log.Warn("patch employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, err
	}

	log.Info("patch employee success", zap.Int64("employee_id", id), zap.Int64("version", empl.Version))
	return toResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int64, version int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("delete employee requested",
		zap.Int64("employee_id", id),
		zap.Int64("version", version),
	)

	err := s.inTx(ctx, func(qtx Repository) error {
		empl, err := qtx.FindByID(ctx, id)
		if err != nil {
			return mapRepositoryError(err, id, "")
		}
		if err := checkVersion(version, empl.Version); err != nil {
			return err
		}

		if err := qtx.Delete(ctx, id, version); err != nil {
			if errors.Is(err, ErrStaleVersion) {
				return s.staleVersion(ctx, qtx, id, version)
			}
			return mapRepositoryError(err, id, "")
		}
		return nil
	})
	if err != nil {
		log.Warn("delete employee failed", zap.Int64("employee_id", id), zap.Error(err))
		return err
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "EMPLOYEE_DELETED",
			Message: "Employee " + strconv.FormatInt(id, 10) + " deleted",
			Meta:    map[string]any{"employee_id": id, "version": version},
		})
	}
	log.Info("delete employee success", zap.Int64("employee_id", id))
	return nil
}

// save performs the version-conditioned write. A zero-row write is reported
// the same way as a failed pre-check.
func (s *service) save(ctx context.Context, qtx Repository, empl *Employee, expectedVersion int64) error {
	err := qtx.Update(ctx, empl, expectedVersion)
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStaleVersion) {
		return s.staleVersion(ctx, qtx, empl.ID, expectedVersion)
	}
	return mapRepositoryError(err, empl.ID, empl.Email)
}

func (s *service) staleVersion(ctx context.Context, qtx Repository, id, expectedVersion int64) error {
	log := contextutil.GetLogger(ctx, s.logger)
	current, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err, id, "")
	}
	log.Warn("concurrent modification detected",
		zap.Int64("employee_id", id),
		zap.Int64("expected_version", expectedVersion),
		zap.Int64("actual_version", current.Version),
	)
	return employeeerrors.VersionMismatch(expectedVersion, current.Version)
}
