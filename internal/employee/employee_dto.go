package employee

import "time"

type CreateEmployeeRequest struct {
	FirstName string `json:"firstName" binding:"notblank"`
	LastName  string `json:"lastName" binding:"notblank"`
	Email     string `json:"email" binding:"notblank,email"`
}

// UpdateEmployeeRequest replaces every mutable field.
type UpdateEmployeeRequest struct {
	FirstName string `json:"firstName" binding:"notblank"`
	LastName  string `json:"lastName" binding:"notblank"`
	Email     string `json:"email" binding:"notblank,email"`
	Version   *int64 `json:"version" binding:"required"`
}

// PatchEmployeeRequest leaves nil fields untouched.
type PatchEmployeeRequest struct {
	FirstName *string `json:"firstName" binding:"omitnil,nullornotblank"`
	LastName  *string `json:"lastName" binding:"omitnil,nullornotblank"`
	Email     *string `json:"email" binding:"omitnil,nullornotblank,email"`
	Version   *int64  `json:"version" binding:"required"`
}

type EmployeeResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Filter holds the optional case-insensitive substring filters of a listing.
type Filter struct {
	FirstName string
	LastName  string
	Email     string
}

type SortOrder struct {
	Property string
	Desc     bool
}

type Pageable struct {
	Page int
	Size int
	Sort []SortOrder
}

func (p Pageable) Offset() int {
	return p.Page * p.Size
}
