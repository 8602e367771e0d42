package dashboards

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/utils"
)

var (
	dashboardUsecaseInstance contracts.DashboardUsecase
	onceDashboardUsecase     sync.Once
)

type dashboardUsecase struct {
	Dashboards contracts.DashboardCoreClient
	Log        *zap.Logger
}

func NewDashboardUsecase(dashboards contracts.DashboardCoreClient, logger *zap.Logger) contracts.DashboardUsecase {
	onceDashboardUsecase.Do(func() {
		dashboardUsecaseInstance = &dashboardUsecase{
			Dashboards: dashboards,
			Log:        logger,
		}
	})
	return dashboardUsecaseInstance
}

// Admin aggregates the six admin dashboard feeds into one payload so the page
// renders off a single request.
func (u *dashboardUsecase) Admin(ctx context.Context) (*responses.AdminDashboard, error) {
	requestID := utils.RequestIDFromContext(ctx)
	u.Log.Info("dashboardUsecase.Admin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	counts, err := u.Dashboards.Counts(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := u.Dashboards.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := u.Dashboards.Stats(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, err := u.Dashboards.UpcomingAppointments(ctx)
	if err != nil {
		return nil, err
	}
	weekly, err := u.Dashboards.WeeklyAppointments(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := u.Dashboards.RecentActivity(ctx)
	if err != nil {
		return nil, err
	}

	return &responses.AdminDashboard{
		Counts:           *counts,
		Revenue:          revenue,
		Stats:            stats,
		Upcoming:         upcoming,
		Weekly:           weekly,
		RecentActivities: recent,
	}, nil
}

func (u *dashboardUsecase) Doctor(ctx context.Context) (*responses.DoctorDashboard, error) {
	return u.Dashboards.DoctorDashboard(ctx)
}
