package coreapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"finddoctor-service/internal/app/config"
	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

var (
	clientInstance *Client
	onceClient     sync.Once
)

// Client is the single boundary between this service and the core REST API.
// It attaches the session's bearer token, purges sessions whose core token has
// expired, throttles outbound calls and maps the core API's error envelope
// onto CustomError values. Every typed per-domain client goes through here.
type Client struct {
	BaseUrl    string
	HttpClient *http.Client
	Limiter    *rate.Limiter
	Sessions   contracts.RedisRepository
	Log        *zap.Logger
}

func NewClient(internalConfig *config.InternalConfig, sessions contracts.RedisRepository, logger *zap.Logger) *Client {
	onceClient.Do(func() {
		clientInstance = &Client{
			BaseUrl: internalConfig.CoreAPI.BaseUrl,
			HttpClient: &http.Client{
				Timeout: time.Duration(internalConfig.CoreAPI.TimeoutInSecond) * time.Second,
			},
			Limiter:  rate.NewLimiter(rate.Limit(internalConfig.CoreAPI.MaxRequestsPerSecond), internalConfig.CoreAPI.BurstSize),
			Sessions: sessions,
			Log:      logger,
		}
	})
	return clientInstance
}

// Do sends one request to the core API. A nil out skips response decoding.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body interface{}, out interface{}) error {
	requestID := utils.RequestIDFromContext(ctx)

	if err := c.Limiter.Wait(ctx); err != nil {
		c.Log.Error("coreapi.Client.Do rate limiter wait failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.WrapWithError(err, constvars.StatusTooManyRequests, constvars.ErrClientServerLongRespond, constvars.ErrDevRateLimiterWait)
	}

	var requestBody io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			return exceptions.ErrCannotMarshalJSON(err)
		}
		requestBody = bytes.NewBuffer(requestJSON)
	}

	requestURL := c.BaseUrl + path
	if len(query) > 0 {
		requestURL = fmt.Sprintf("%s?%s", requestURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, requestBody)
	if err != nil {
		c.Log.Error("coreapi.Client.Do error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	if err := c.attachToken(ctx, req, requestID); err != nil {
		return err
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		c.Log.Error("coreapi.Client.Do error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, method),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.mapErrorResponse(resp, path, requestID)
	}

	if out == nil || resp.StatusCode == constvars.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.Log.Error("coreapi.Client.Do error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrDecodeResponse(err, path)
	}
	return nil
}

// attachToken adds the session's core token to the request. Token expiry is
// enforced here and nowhere else; an expired token purges the session so the
// next request starts logged out.
func (c *Client) attachToken(ctx context.Context, req *http.Request, requestID string) error {
	session, ok := utils.SessionFromContext(ctx)
	if !ok {
		return nil
	}

	if utils.TokenExpired(session.CoreToken) {
		c.Log.Info("coreapi.Client purging session with expired core token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.ID),
		)
		if err := c.Sessions.DeleteSession(ctx, session.ID); err != nil {
			c.Log.Error("coreapi.Client failed to purge expired session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return exceptions.ErrCoreTokenExpired(nil)
	}

	req.Header.Set(constvars.HeaderAuthorization, constvars.BearerPrefix+session.CoreToken)
	return nil
}

func (c *Client) mapErrorResponse(resp *http.Response, path, requestID string) error {
	bodyBytes, readErr := io.ReadAll(resp.Body)
	envelope := new(responses.CoreErrorEnvelope)
	if readErr == nil {
		json.Unmarshal(bodyBytes, envelope)
	}

	c.Log.Error("coreapi.Client core API returned an error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.String("core_message", envelope.Message),
	)

	switch resp.StatusCode {
	case constvars.StatusNotFound:
		return exceptions.ErrCoreAPIResourceNotFound(nil, path)
	case constvars.StatusUnauthorized:
		return exceptions.ErrTokenInvalidOrExpired(errors.New(envelope.Message))
	case constvars.StatusForbidden:
		return exceptions.ErrRoleNotAllowed(errors.New(envelope.Message))
	}

	if clientMessage, ok := recognizeConflict(envelope.Message); ok {
		return exceptions.WrapWithoutError(constvars.StatusConflict, clientMessage, envelope.Message)
	}

	devMessage := envelope.Message
	if devMessage == "" {
		devMessage = fmt.Sprintf("core API responded with status %d on %s", resp.StatusCode, path)
	}
	return exceptions.WrapWithoutError(resp.StatusCode, constvars.ErrClientCannotProcessRequest, devMessage)
}

// recognizeConflict pattern-matches the business-rule conflicts the core API
// reports only as message text, so they can surface as field-level errors.
func recognizeConflict(message string) (string, bool) {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "feedback") && strings.Contains(lower, "already"):
		return constvars.ErrClientDuplicateFeedback, true
	case strings.Contains(lower, "hospital") && (strings.Contains(lower, "exist") || strings.Contains(lower, "unique")):
		return constvars.ErrClientHospitalNameTaken, true
	}
	return "", false
}
