package response

import (
	"net/http"

	"go-employee/internal/shared/apperror"

	"github.com/gin-gonic/gin/render"
)

// problemJSON renders like render.JSON but keeps the problem content type.
type problemJSON struct {
	problem apperror.Problem
}

func (r problemJSON) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return render.JSON{Data: r.problem}.Render(w)
}

func (r problemJSON) WriteContentType(w http.ResponseWriter) {
	w.Header()["Content-Type"] = []string{apperror.ProblemContentType}
}
