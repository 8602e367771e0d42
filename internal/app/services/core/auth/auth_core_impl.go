package auth

import (
	"context"
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
	authCoreClientInstance contracts.AuthCoreClient
	onceAuthCoreClient     sync.Once
)

type authCoreClient struct {
	Client *coreapi.Client
	Log    *zap.Logger
}

func NewAuthCoreClient(client *coreapi.Client, logger *zap.Logger) contracts.AuthCoreClient {
	onceAuthCoreClient.Do(func() {
		authCoreClientInstance = &authCoreClient{
			Client: client,
			Log:    logger,
		}
	})
	return authCoreClientInstance
}

func (c *authCoreClient) Login(ctx context.Context, request *requests.Login) (*responses.CoreToken, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("authCoreClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	token := new(responses.CoreToken)
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.CoreAPIPathAuthLogin, nil, request, token)
	if err != nil {
		return nil, err
	}
	return token, nil
}

func (c *authCoreClient) Register(ctx context.Context, request *requests.Register) (json.RawMessage, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("authCoreClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var created json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPost, constvars.CoreAPIPathAuthRegister, nil, request, &created)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *authCoreClient) Me(ctx context.Context) (json.RawMessage, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("authCoreClient.Me called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var profile json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodGet, constvars.CoreAPIPathAuthMe, nil, nil, &profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (c *authCoreClient) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (json.RawMessage, error) {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("authCoreClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var profile json.RawMessage
	err := c.Client.Do(ctx, constvars.MethodPut, constvars.CoreAPIPathAuthUpdateProfile, nil, request, &profile)
	if err != nil {
		return nil, err
	}
	return profile, nil
}
