package resources

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

var (
	resourceUsecaseInstance contracts.ResourceUsecase
	onceResourceUsecase     sync.Once
)

type resourceUsecase struct {
	Resources contracts.ResourceCoreClient
	Log       *zap.Logger
}

func NewResourceUsecase(resourceClient contracts.ResourceCoreClient, logger *zap.Logger) contracts.ResourceUsecase {
	onceResourceUsecase.Do(func() {
		resourceUsecaseInstance = &resourceUsecase{
			Resources: resourceClient,
			Log:       logger,
		}
	})
	return resourceUsecaseInstance
}

func (u *resourceUsecase) descriptor(resource string) (Descriptor, error) {
	descriptor, ok := Lookup(resource)
	if !ok {
		return Descriptor{}, exceptions.ErrCoreAPIResourceNotFound(nil, resource)
	}
	return descriptor, nil
}

func (u *resourceUsecase) writable(descriptor Descriptor) error {
	if descriptor.ReadOnly {
		return exceptions.WrapWithoutError(constvars.StatusForbidden, constvars.ErrClientNotAuthorized,
			fmt.Sprintf("resource %s is read only", descriptor.Name))
	}
	return nil
}

// requireFields rejects a payload missing any of the descriptor's required
// fields before anything goes over the wire.
func requireFields(descriptor Descriptor, payload map[string]interface{}) error {
	for _, field := range descriptor.RequiredFields {
		value, present := payload[field]
		if !present || value == nil || value == "" {
			return exceptions.WrapWithoutError(constvars.StatusBadRequest,
				fmt.Sprintf(constvars.ErrClientRequiredField, field),
				fmt.Sprintf("payload for %s is missing required field %s", descriptor.Name, field))
		}
	}
	return nil
}

// List fetches one page, stepping back once when a stale page index lands
// past the last page.
func (u *resourceUsecase) List(ctx context.Context, resource string, query requests.ListQuery) ([]json.RawMessage, *responses.Pagination, error) {
	descriptor, err := u.descriptor(resource)
	if err != nil {
		return nil, nil, err
	}

	page, err := u.Resources.List(ctx, descriptor.Path, descriptor.FilterParam, query)
	if err != nil {
		return nil, nil, err
	}
	if len(page.Content) == 0 && query.Page > 0 {
		query.Page--
		page, err = u.Resources.List(ctx, descriptor.Path, descriptor.FilterParam, query)
		if err != nil {
			return nil, nil, err
		}
	}

	pagination := &responses.Pagination{
		Page:          page.Page.Number,
		PageSize:      page.Page.Size,
		TotalPages:    page.Page.TotalPages,
		TotalElements: page.Page.TotalElements,
	}
	return page.Content, pagination, nil
}

func (u *resourceUsecase) Get(ctx context.Context, resource string, id int64) (json.RawMessage, error) {
	descriptor, err := u.descriptor(resource)
	if err != nil {
		return nil, err
	}
	return u.Resources.Get(ctx, descriptor.Path, id)
}

func (u *resourceUsecase) Create(ctx context.Context, resource string, payload map[string]interface{}) (json.RawMessage, error) {
	requestID := utils.RequestIDFromContext(ctx)

	descriptor, err := u.descriptor(resource)
	if err != nil {
		return nil, err
	}
	if err := u.writable(descriptor); err != nil {
		return nil, err
	}
	if err := requireFields(descriptor, payload); err != nil {
		return nil, err
	}

	row, err := u.Resources.Create(ctx, descriptor.Path, payload)
	if err != nil {
		return nil, err
	}

	u.Log.Info("resourceUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource),
	)
	return row, nil
}

func (u *resourceUsecase) Update(ctx context.Context, resource string, id int64, payload map[string]interface{}) (json.RawMessage, error) {
	descriptor, err := u.descriptor(resource)
	if err != nil {
		return nil, err
	}
	if err := u.writable(descriptor); err != nil {
		return nil, err
	}
	if err := requireFields(descriptor, payload); err != nil {
		return nil, err
	}
	return u.Resources.Update(ctx, descriptor.Path, id, payload)
}

func (u *resourceUsecase) Delete(ctx context.Context, resource string, id int64) error {
	descriptor, err := u.descriptor(resource)
	if err != nil {
		return err
	}
	if err := u.writable(descriptor); err != nil {
		return err
	}
	return u.Resources.Delete(ctx, descriptor.Path, id)
}
