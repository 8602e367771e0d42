package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/exceptions"
)

const handlerTimeout = 10

func pathID(r *http.Request, param string) (int64, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest,
			fmt.Sprintf("path parameter %s must be a positive integer, got %q", param, raw))
	}
	return id, nil
}
