package auth

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/config"
	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/models"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/requests"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/exceptions"
	"finddoctor-service/internal/pkg/utils"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

type authUsecase struct {
	AuthCoreClient contracts.AuthCoreClient
	Sessions       contracts.RedisRepository
	Storage        contracts.StorageService
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	authCoreClient contracts.AuthCoreClient,
	sessions contracts.RedisRepository,
	storage contracts.StorageService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AuthCoreClient: authCoreClient,
			Sessions:       sessions,
			Storage:        storage,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

// Login exchanges credentials for a core API token, wraps it in a Redis
// session and hands the client a session JWT plus the role so routing can
// branch without decoding anything.
func (u *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.RequestIDFromContext(ctx)
	u.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	coreToken, err := u.AuthCoreClient.Login(ctx, request)
	if err != nil {
		var customErr *exceptions.CustomError
		if errors.As(err, &customErr) && customErr.StatusCode == constvars.StatusUnauthorized {
			return nil, exceptions.ErrInvalidCredentials(err)
		}
		return nil, err
	}

	role := utils.RoleFromToken(coreToken.Token)
	sessionTTL := time.Duration(u.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		ID:        utils.GenerateSessionID(),
		Email:     request.Email,
		Role:      role,
		CoreToken: coreToken.Token,
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	if err := u.Sessions.CreateSession(ctx, session, sessionTTL); err != nil {
		return nil, err
	}

	sessionToken, err := utils.GenerateSessionToken(session.ID, u.InternalConfig.JWT.Secret, sessionTTL)
	if err != nil {
		return nil, err
	}

	u.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String(constvars.LoggingRoleKey, role),
	)
	return &responses.Login{Token: sessionToken, Role: role}, nil
}

func (u *authUsecase) Register(ctx context.Context, request *requests.Register) (json.RawMessage, error) {
	requestID := utils.RequestIDFromContext(ctx)
	u.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Role == "" {
		request.Role = constvars.RolePatient
	}
	return u.AuthCoreClient.Register(ctx, request)
}

func (u *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.RequestIDFromContext(ctx)
	u.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
	)
	return u.Sessions.DeleteSession(ctx, session.ID)
}

func (u *authUsecase) Me(ctx context.Context) (json.RawMessage, error) {
	return u.AuthCoreClient.Me(ctx)
}

func (u *authUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) (json.RawMessage, error) {
	return u.AuthCoreClient.UpdateProfile(ctx, request)
}

// UploadProfilePhoto validates the upload, stores it and points the core API
// profile at the stored object.
func (u *authUsecase) UploadProfilePhoto(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*responses.ProfilePhoto, error) {
	requestID := utils.RequestIDFromContext(ctx)
	u.Log.Info("authUsecase.UploadProfilePhoto called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	maxSize := u.InternalConfig.App.ProfilePhotoMaxUploadSizeInMB * 1024 * 1024
	if header.Size > maxSize {
		return nil, exceptions.WrapWithoutError(constvars.StatusBadRequest, constvars.ErrClientImageTooLarge,
			fmt.Sprintf("upload of %d bytes exceeds the %d MB limit", header.Size, u.InternalConfig.App.ProfilePhotoMaxUploadSizeInMB))
	}

	contentType := header.Header.Get(constvars.HeaderContentType)
	extension, ok := allowedPhotoTypes[strings.ToLower(contentType)]
	if !ok {
		return nil, exceptions.ErrImageValidation(fmt.Errorf("content type %s is not allowed", contentType))
	}
	if ext := strings.ToLower(filepath.Ext(header.Filename)); ext == ".jpeg" {
		extension = ".jpg"
	}

	objectName := fmt.Sprintf("profile-photos/%s%s", utils.GenerateRequestID(), extension)
	photoURL, err := u.Storage.UploadProfilePhoto(ctx, objectName, file, header.Size, contentType)
	if err != nil {
		return nil, err
	}

	_, err = u.AuthCoreClient.UpdateProfile(ctx, &requests.UpdateProfile{PhotoURL: photoURL})
	if err != nil {
		return nil, err
	}

	u.Log.Info("authUsecase.UploadProfilePhoto succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("object_name", objectName),
	)
	return &responses.ProfilePhoto{PhotoURL: photoURL}, nil
}
