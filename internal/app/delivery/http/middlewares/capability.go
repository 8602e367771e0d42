package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/rbac"
	"finddoctor-service/internal/pkg/utils"
)

// ResourceCapability checks the capability table for the {resource} URL
// parameter: reads need the read capability, creates the create capability,
// every other write needs manage.
func (m *Middlewares) ResourceCapability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := utils.SessionFromContext(r.Context())
		if !ok {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
			return
		}

		resource := chi.URLParam(r, "resource")
		action := rbac.ActionManage
		switch r.Method {
		case constvars.MethodGet:
			action = rbac.ActionRead
		case constvars.MethodPost:
			action = rbac.ActionCreate
		}

		if !rbac.Allowed(session.Role, resource, action) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Capability guards a fixed resource and action pair.
func (m *Middlewares) Capability(resource, action string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := utils.SessionFromContext(r.Context())
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(nil))
				return
			}
			if !rbac.Allowed(session.Role, resource, action) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRoleNotAllowed(nil))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
