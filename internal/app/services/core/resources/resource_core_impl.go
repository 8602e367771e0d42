package resources

import (
	"context"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/services/shared/coreapi"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/utils"
)

var (
	resourceCoreClientInstance contracts.ResourceCoreClient
	onceResourceCoreClient     sync.Once
)

// resourceCoreClient serves every managed entity collection through one
// implementation. The entity path comes from the descriptor registry, rows
// stay opaque JSON.
type resourceCoreClient struct {
	Client *coreapi.Client
	Log    *zap.Logger
}

func NewResourceCoreClient(client *coreapi.Client, logger *zap.Logger) contracts.ResourceCoreClient {
	onceResourceCoreClient.Do(func() {
		resourceCoreClientInstance = &resourceCoreClient{
			Client: client,
			Log:    logger,
		}
	})
	return resourceCoreClientInstance
}

func (c *resourceCoreClient) List(ctx context.Context, path, filterParam string, query requests.ListQuery) (*responses.CorePagedResponse, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceCoreClient.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, path),
	)

	page := new(responses.CorePagedResponse)
	err := c.Client.Do(ctx, constvars.MethodGet, path, query.Values(filterParam), nil, page)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (c *resourceCoreClient) Get(ctx context.Context, path string, id int64) (json.RawMessage, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceCoreClient.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, path),
	)

	var row json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodGet, fmt.Sprintf("%s/%d", path, id), nil, nil, &row)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (c *resourceCoreClient) Create(ctx context.Context, path string, payload map[string]interface{}) (json.RawMessage, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceCoreClient.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, path),
	)

	var row json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPost, path, nil, payload, &row)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (c *resourceCoreClient) Update(ctx context.Context, path string, id int64, payload map[string]interface{}) (json.RawMessage, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceCoreClient.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, path),
	)

	var row json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPut, fmt.Sprintf("%s/%d", path, id), nil, payload, &row)
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (c *resourceCoreClient) Delete(ctx context.Context, path string, id int64) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("resourceCoreClient.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, path),
	)

	return c.Client.Do(ctx, constvars.MethodDelete, fmt.Sprintf("%s/%d", path, id), nil, nil, nil)
}
