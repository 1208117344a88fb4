package api

import (
	"github.com/ayxworxfr/go_admin_sdk/config"
	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/pkg/errors"
)

// Client 管理后台客户端入口，持有共享传输层与各资源客户端
type Client struct {
	http      *httpclient.Client
	indicator apiclient.Indicator

	organizations *OrganizationClient
	departments   *DepartmentClient
	categories    *CategoryClient
	employees     *EmployeeClient
	persons       *PersonClient
	users         *UserClient
	userRoles     *UserRoleClient
	apps          *AppClient
	dicts         *DictClient
	devices       *DeviceClient
	feedbacks     *FeedbackClient
	countries     *CountryClient
	provinces     *ProvinceClient
	cities        *CityClient
	districts     *DistrictClient
	streets       *StreetClient

	userAuth    *UserAuthenticateClient
	appAuth     *AppAuthenticateClient
	currentUser *CurrentUserClient
	verifyCode  *VerifyCodeClient
}

// Option 是配置客户端的函数类型
type Option func(*Client)

// WithIndicator 设置加载指示回调
func WithIndicator(indicator apiclient.Indicator) Option {
	return func(c *Client) {
		c.indicator = indicator
	}
}

// WithTransport 使用自定义传输层（测试用）
func WithTransport(transport *httpclient.Client) Option {
	return func(c *Client) {
		c.http = transport
	}
}

// New 根据配置创建客户端
func New(cfg *config.Config, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	client := &Client{indicator: apiclient.NopIndicator}
	for _, opt := range opts {
		opt(client)
	}

	if client.http == nil {
		if cfg.API.BaseURL == "" {
			return nil, errors.New("api.base_url is required")
		}
		httpOpts := []httpclient.Option{
			httpclient.WithTimeout(cfg.API.TimeoutDuration()),
			httpclient.WithRetries(cfg.API.Retries),
			httpclient.WithBackoff(cfg.API.BackoffDuration()),
		}
		if cfg.Auth.Token != "" {
			httpOpts = append(httpOpts, httpclient.WithToken(cfg.Auth.Token))
		}
		if cfg.API.RateLimit > 0 {
			burst := cfg.API.RateBurst
			if burst <= 0 {
				burst = 1
			}
			httpOpts = append(httpOpts, httpclient.WithRateLimit(cfg.API.RateLimit, burst))
		}
		client.http = httpclient.NewClient(cfg.API.BaseURL, httpOpts...)
	}

	client.initResources(cfg)

	// 配置了应用凭据与刷新周期时，自动开启令牌定时刷新
	if cfg.Auth.RefreshCron != "" && cfg.Auth.AppKey != "" && cfg.Auth.AppSecret != "" {
		if err := client.appAuth.StartAutoRefresh(cfg.Auth.RefreshCron); err != nil {
			return nil, err
		}
	}
	return client, nil
}

func (c *Client) initResources(cfg *config.Config) {
	c.organizations = newOrganizationClient(c.http, c.indicator)
	c.departments = newDepartmentClient(c.http, c.indicator)
	c.categories = newCategoryClient(c.http, c.indicator)
	c.employees = newEmployeeClient(c.http, c.indicator)
	c.persons = newPersonClient(c.http, c.indicator)
	c.users = newUserClient(c.http, c.indicator)
	c.userRoles = newUserRoleClient(c.http, c.indicator)
	c.apps = newAppClient(c.http, c.indicator)
	c.dicts = newDictClient(c.http, c.indicator)
	c.devices = newDeviceClient(c.http, c.indicator)
	c.feedbacks = newFeedbackClient(c.http, c.indicator)
	c.countries = newCountryClient(c.http, c.indicator)
	c.provinces = newProvinceClient(c.http, c.indicator)
	c.cities = newCityClient(c.http, c.indicator)
	c.districts = newDistrictClient(c.http, c.indicator)
	c.streets = newStreetClient(c.http, c.indicator)

	c.userAuth = newUserAuthenticateClient(c.http)
	c.appAuth = newAppAuthenticateClient(c.http, cfg.Auth.AppKey, cfg.Auth.AppSecret)
	c.currentUser = newCurrentUserClient(c.http)
	c.verifyCode = newVerifyCodeClient(c.http)
}

// Transport 返回共享传输层
func (c *Client) Transport() *httpclient.Client { return c.http }

func (c *Client) Organizations() *OrganizationClient      { return c.organizations }
func (c *Client) Departments() *DepartmentClient          { return c.departments }
func (c *Client) Categories() *CategoryClient             { return c.categories }
func (c *Client) Employees() *EmployeeClient              { return c.employees }
func (c *Client) Persons() *PersonClient                  { return c.persons }
func (c *Client) Users() *UserClient                      { return c.users }
func (c *Client) UserRoles() *UserRoleClient              { return c.userRoles }
func (c *Client) Apps() *AppClient                        { return c.apps }
func (c *Client) Dicts() *DictClient                      { return c.dicts }
func (c *Client) Devices() *DeviceClient                  { return c.devices }
func (c *Client) Feedbacks() *FeedbackClient              { return c.feedbacks }
func (c *Client) Countries() *CountryClient               { return c.countries }
func (c *Client) Provinces() *ProvinceClient              { return c.provinces }
func (c *Client) Cities() *CityClient                     { return c.cities }
func (c *Client) Districts() *DistrictClient              { return c.districts }
func (c *Client) Streets() *StreetClient                  { return c.streets }
func (c *Client) UserAuthenticate() *UserAuthenticateClient { return c.userAuth }
func (c *Client) AppAuthenticate() *AppAuthenticateClient   { return c.appAuth }
func (c *Client) CurrentUser() *CurrentUserClient           { return c.currentUser }
func (c *Client) VerifyCode() *VerifyCodeClient             { return c.verifyCode }

// resource 构建通用资源客户端
func resource[T any, I any](client *httpclient.Client, name, path string, schema *apiclient.CriteriaSchema, indicator apiclient.Indicator) *apiclient.Resource[T, I] {
	return apiclient.NewResource[T, I](client, apiclient.Descriptor{
		Name:   name,
		Path:   path,
		Schema: schema,
	}, indicator)
}
