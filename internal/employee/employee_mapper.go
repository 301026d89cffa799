package employee

import "strings"

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toEntity(req CreateEmployeeRequest) *Employee {
	return &Employee{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     normalizeEmail(req.Email),
		Version:   InitialVersion,
	}
}

func applyUpdate(empl *Employee, req UpdateEmployeeRequest) {
	empl.FirstName = strings.TrimSpace(req.FirstName)
	empl.LastName = strings.TrimSpace(req.LastName)
	empl.Email = normalizeEmail(req.Email)
	if req.Version != nil {
		empl.Version = *req.Version
	}
}

// applyPatch copies only the fields present in req.
func applyPatch(empl *Employee, req PatchEmployeeRequest) {
	if req.FirstName != nil {
		empl.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		empl.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		empl.Email = normalizeEmail(*req.Email)
	}
}

func toResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        empl.ID,
		FirstName: empl.FirstName,
		LastName:  empl.LastName,
		Email:     empl.Email,
		Version:   empl.Version,
		CreatedAt: empl.CreatedAt,
		UpdatedAt: empl.UpdatedAt,
	}
}

func toListResponse(empls []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, 0, len(empls))
	for _, e := range empls {
		resp = append(resp, toResponse(e))
	}
	return resp
}
