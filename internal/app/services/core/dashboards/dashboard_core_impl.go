package dashboards

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"finddoctor-service/internal/app/contracts"
	"finddoctor-service/internal/app/services/shared/coreapi"
	"finddoctor-service/internal/pkg/constvars"
	"finddoctor-service/internal/pkg/dto/responses"
	"finddoctor-service/internal/pkg/utils"
)

var (
	dashboardCoreClientInstance contracts.DashboardCoreClient
	onceDashboardCoreClient     sync.Once
)

type dashboardCoreClient struct {
	Client *coreapi.Client
	Log    *zap.Logger
}

func NewDashboardCoreClient(client *coreapi.Client, logger *zap.Logger) contracts.DashboardCoreClient {
	onceDashboardCoreClient.Do(func() {
		dashboardCoreClientInstance = &dashboardCoreClient{
			Client: client,
			Log:    logger,
		}
	})
	return dashboardCoreClientInstance
}

func (c *dashboardCoreClient) Counts(ctx context.Context) (*responses.DashboardCounts, error) {
	counts := new(responses.DashboardCounts)
	err := c.get(ctx, constvars.CoreAPIPathDashboards+"/counts", counts)
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (c *dashboardCoreClient) Revenue(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, constvars.CoreAPIPathDashboards+"/revenue")
}

func (c *dashboardCoreClient) Stats(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, constvars.CoreAPIPathDashboards+"/stats")
}

func (c *dashboardCoreClient) UpcomingAppointments(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, constvars.CoreAPIPathDashboards+"/upcoming-appointments")
}

func (c *dashboardCoreClient) WeeklyAppointments(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, constvars.CoreAPIPathDashboards+"/weekly-appointments")
}

func (c *dashboardCoreClient) RecentActivity(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, constvars.CoreAPIPathDashboards+"/recent-activities")
}

func (c *dashboardCoreClient) DoctorDashboard(ctx context.Context) (*responses.DoctorDashboard, error) {
	dashboard := new(responses.DoctorDashboard)
	err := c.get(ctx, constvars.CoreAPIPathDoctorDashboard, dashboard)
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (c *dashboardCoreClient) get(ctx context.Context, path string, out interface{}) error {
	requestID := utils.RequestIDFromContext(ctx)
	c.Log.Info("dashboardCoreClient fetching",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEndpointKey, path),
	)
	return c.Client.Do(ctx, constvars.MethodGet, path, nil, nil, out)
}

func (c *dashboardCoreClient) getRaw(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
