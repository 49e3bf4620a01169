package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkgrid-hq/parkgrid-service-clients/pkg/svcclient"
)

const (
	userAuthName       = "user-auth"
	userAuthEnvVar     = "USER_AUTH_SERVICE_URL"
	userAuthDefaultURL = "http://user-auth-service:8000"
)

// Credentials carries the email and password used for login.
type Credentials struct {
	Email    string
	Password string
}

// UserAuthClient talks to the user authentication service.
type UserAuthClient struct {
	c *svcclient.Client
}

// NewUserAuth builds a client for the user authentication service.
func NewUserAuth(opts ...Option) (*UserAuthClient, error) {
	c, err := newServiceClient(userAuthEnvVar, userAuthDefaultURL, opts)
	if err != nil {
		return nil, err
	}
	return &UserAuthClient{c: c}, nil
}

func (u *UserAuthClient) Name() string    { return userAuthName }
func (u *UserAuthClient) BaseURL() string { return u.c.BaseURL() }

// RegisterUser registers a new user account.
func (u *UserAuthClient) RegisterUser(ctx context.Context, user any) (*svcclient.Response, error) {
	return u.c.Post(ctx, "/register", svcclient.WithJSON(user))
}

// Login authenticates with HTTP basic auth and returns the service's
// token response.
func (u *UserAuthClient) Login(ctx context.Context, creds Credentials) (*svcclient.Response, error) {
	if creds.Email == "" || creds.Password == "" {
		return nil, errors.New("credentials must include email and password")
	}
	return u.c.Post(ctx, "/login", svcclient.WithBasicAuth(creds.Email, creds.Password))
}

// ValidateToken asks the service whether the token is still valid.
func (u *UserAuthClient) ValidateToken(ctx context.Context, token string) (*svcclient.Response, error) {
	return u.c.Post(ctx, "/validate", svcclient.WithJSON(tokenBody(token)))
}

// GetUser fetches a user by id.
func (u *UserAuthClient) GetUser(ctx context.Context, userID string) (*svcclient.Response, error) {
	return u.c.Get(ctx, fmt.Sprintf("/user/%s", userID))
}

// MakeAdmin promotes a user to admin.
func (u *UserAuthClient) MakeAdmin(ctx context.Context, userID string) (*svcclient.Response, error) {
	return u.c.Post(ctx, fmt.Sprintf("/user/%s/make_admin", userID))
}

// GetAllNonStaff lists all non-staff users visible to the token holder.
func (u *UserAuthClient) GetAllNonStaff(ctx context.Context, token string) (*svcclient.Response, error) {
	return u.c.Post(ctx, "/users/non_staff", svcclient.WithJSON(tokenBody(token)))
}

// ChangeAccountStatus updates another user's account status.
func (u *UserAuthClient) ChangeAccountStatus(ctx context.Context, token, targetUserEmail, newStatus string) (*svcclient.Response, error) {
	return u.c.Post(ctx, "/change_account_status",
		svcclient.WithQuery(map[string]string{
			"target_user_email": targetUserEmail,
			"new_status":        newStatus,
		}),
		svcclient.WithJSON(tokenBody(token)),
	)
}

// HealthCheck probes the service health endpoint.
func (u *UserAuthClient) HealthCheck(ctx context.Context) (*svcclient.Response, error) {
	return u.c.Get(ctx, "/health")
}
