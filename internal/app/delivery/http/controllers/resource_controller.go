package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/services/resources"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

// ResourceController serves every managed entity collection with one set of
// handlers. The {resource} URL parameter picks the descriptor.
type ResourceController struct {
	Log             *zap.Logger
	ResourceUsecase contracts.ResourceUsecase
}

func NewResourceController(logger *zap.Logger, resourceUsecase contracts.ResourceUsecase) *ResourceController {
	return &ResourceController{
		Log:             logger,
		ResourceUsecase: resourceUsecase,
	}
}

func (ctrl *ResourceController) List(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")

	filterParam := ""
	if descriptor, ok := resources.Lookup(resource); ok {
		filterParam = descriptor.FilterParam
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout*time.Second)
	defer cancel()

	rows, pagination, err := ctrl.ResourceUsecase.List(ctx, resource, requests.ParseListQuery(r.URL.Query(), filterParam))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, fmt.Sprintf(constvars.ResourceListSuccess, resource), pagination, rows)
}

func (ctrl *ResourceController) Get(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id, err := pathID(r, "id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout*time.Second)
	defer cancel()

	row, err := ctrl.ResourceUsecase.Get(ctx, resource, id)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ResourceListSuccess, resource), row)
}

func (ctrl *ResourceController) Create(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")

	payload := map[string]interface{}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout*time.Second)
	defer cancel()

	row, err := ctrl.ResourceUsecase.Create(ctx, resource, payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, fmt.Sprintf(constvars.ResourceCreateSuccess, resource), row)
}

func (ctrl *ResourceController) Update(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id, err := pathID(r, "id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	payload := map[string]interface{}{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout*time.Second)
	defer cancel()

	row, err := ctrl.ResourceUsecase.Update(ctx, resource, id, payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ResourceUpdateSuccess, resource), row)
}

func (ctrl *ResourceController) Delete(w http.ResponseWriter, r *http.Request) {
	resource := chi.URLParam(r, "resource")
	id, err := pathID(r, "id")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout*time.Second)
	defer cancel()

	if err := ctrl.ResourceUsecase.Delete(ctx, resource, id); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.ResourceDeleteSuccess, resource), nil)
}
