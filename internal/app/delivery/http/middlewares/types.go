package middlewares

import (
	"go.uber.org/zap"

	"finddoctor-service/internal/app/config"
	"finddoctor-service/internal/app/contracts"
)

type Middlewares struct {
	Log            *zap.Logger
	Sessions       contracts.RedisRepository
	InternalConfig *config.InternalConfig
}

func NewMiddlewares(logger *zap.Logger, sessions contracts.RedisRepository, internalConfig *config.InternalConfig) *Middlewares {
	return &Middlewares{
		Log:            logger,
		Sessions:       sessions,
		InternalConfig: internalConfig,
	}
}
