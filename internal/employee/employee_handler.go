package employee

import (
	"net/http"
	"strconv"
	"strings"

	employeeerrors "go-employee/internal/employee/errors"
	"go-employee/internal/shared/apperror"
	"go-employee/internal/shared/contextutil"
	"go-employee/internal/shared/request"
	"go-employee/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

// log returns the request scoped logger set by middleware.ContextLogger.
func (h *Handler) log(c *gin.Context) *zap.Logger {
	return contextutil.GetLogger(c.Request.Context(), h.logger)
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	problem := response.Error(c, err)
	fields := []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", problem.Status),
		zap.String("title", problem.Title),
		zap.String("detail", problem.Detail),
	}
	if problem.Status >= http.StatusInternalServerError {
		h.log(c).Error("employee request failed", append(fields, zap.Error(err))...)
		return
	}
	h.log(c).Warn("employee request failed", fields...)
}

func (h *Handler) List(c *gin.Context) {
	filter := Filter{
		FirstName: c.Query("firstName"),
		LastName:  c.Query("lastName"),
		Email:     c.Query("email"),
	}
	page, err := parsePageable(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.log(c).Debug("http list employees", zap.Int("page", page.Page), zap.Int("size", page.Size))

	resp, err := h.service.List(c.Request.Context(), filter, page)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.log(c).Debug("http get employee by id", zap.Int64("employee_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := request.BindJSON(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.log(c).Debug("http create employee")

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+strconv.FormatInt(resp.ID, 10))
	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	var req UpdateEmployeeRequest
	if err := request.BindJSON(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.log(c).Debug("http update employee", zap.Int64("employee_id", id))

	resp, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Patch(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	var req PatchEmployeeRequest
	if err := request.BindJSON(c, &req); err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.log(c).Debug("http patch employee", zap.Int64("employee_id", id))

	resp, err := h.service.Patch(c.Request.Context(), id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	version, err := parseVersion(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.log(c).Debug("http delete employee", zap.Int64("employee_id", id), zap.Int64("version", version))

	if err := h.service.Delete(c.Request.Context(), id, version); err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, employeeerrors.ErrInvalidEmployeeID
	}
	return id, nil
}

func parseVersion(c *gin.Context) (int64, error) {
	raw, ok := c.GetQuery("version")
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, apperror.MissingParameter("version")
	}
	version, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, apperror.WrongFieldType("version", "integer", err)
	}
	return version, nil
}

// parsePageable reads page, size and the repeatable sort=property[,asc|desc].
func parsePageable(c *gin.Context) (Pageable, error) {
	p := Pageable{Page: 0, Size: DefaultPageSize}
	var errs []apperror.FieldError

	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		page, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, invalid("page", "must be an integer"))
		case page < 0:
			errs = append(errs, invalid("page", "must be greater than or equal to 0"))
		default:
			p.Page = page
		}
	}

	if raw := strings.TrimSpace(c.Query("size")); raw != "" {
		size, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			errs = append(errs, invalid("size", "must be an integer"))
		case size < 1:
			errs = append(errs, invalid("size", "must be greater than or equal to 1"))
		case size > MaxPageSize:
			p.Size = MaxPageSize
		default:
			p.Size = size
		}
	}

	for _, raw := range c.QueryArray("sort") {
		order, ok := parseSort(raw)
		if !ok {
			errs = append(errs, invalid("sort", "unsupported sort '"+raw+"'"))
			continue
		}
		p.Sort = append(p.Sort, order)
	}

	if len(errs) > 0 {
		return Pageable{}, apperror.Validation(errs...)
	}
	return p, nil
}

func parseSort(raw string) (SortOrder, bool) {
	prop, dir, _ := strings.Cut(raw, ",")
	prop = strings.TrimSpace(prop)
	if _, ok := SortableProperties[prop]; !ok {
		return SortOrder{}, false
	}

	switch strings.ToLower(strings.TrimSpace(dir)) {
	case "", "asc":
		return SortOrder{Property: prop}, true
	case "desc":
		return SortOrder{Property: prop, Desc: true}, true
	default:
		return SortOrder{}, false
	}
}

func invalid(field, message string) apperror.FieldError {
	return apperror.FieldError{Field: field, Message: message, Kind: apperror.KindInvalidFieldFormat}
}
