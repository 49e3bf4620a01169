package services

import (
	"context"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

const (
	adminManagementName       = "admin-management"
	adminManagementEnvVar     = "ADMIN_MANAGEMENT_SERVICE_URL"
	adminManagementDefaultURL = "http://admin-management-service:8000"
)

// AdminManagementClient talks to the admin management service.
type AdminManagementClient struct {
	c *svcclient.Client
}

// NewAdminManagement builds a client for the admin management service.
func NewAdminManagement(opts ...Option) (*AdminManagementClient, error) {
	c, err := newServiceClient(adminManagementEnvVar, adminManagementDefaultURL, opts)
	if err != nil {
		return nil, err
	}
	return &AdminManagementClient{c: c}, nil
}

func (a *AdminManagementClient) Name() string    { return adminManagementName }
func (a *AdminManagementClient) BaseURL() string { return a.c.BaseURL() }

// RegisterAdmin registers a new admin account.
func (a *AdminManagementClient) RegisterAdmin(ctx context.Context, admin any) (*svcclient.Response, error) {
	return a.c.Post(ctx, "/register_admin", svcclient.WithJSON(admin))
}

// GetAllNonStaff lists all non-staff accounts visible to the token holder.
func (a *AdminManagementClient) GetAllNonStaff(ctx context.Context, token string) (*svcclient.Response, error) {
	return a.c.Post(ctx, "/get_all_non_staff", svcclient.WithJSON(tokenBody(token)))
}

// ChangeAccountStatus updates the account status of the given user.
func (a *AdminManagementClient) ChangeAccountStatus(ctx context.Context, token, userEmail, newStatus string) (*svcclient.Response, error) {
	return a.c.Post(ctx, "/change_account_status",
		svcclient.WithQuery(map[string]string{
			"user_email": userEmail,
			"new_status": newStatus,
		}),
		svcclient.WithJSON(tokenBody(token)),
	)
}

// HealthCheck probes the service health endpoint.
func (a *AdminManagementClient) HealthCheck(ctx context.Context) (*svcclient.Response, error) {
	return a.c.Get(ctx, "/health")
}
