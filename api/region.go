package api

import (
	"context"

	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
)

// CountryClient 国家资源客户端
type CountryClient struct {
	*apiclient.Resource[models.Country, models.CountryInfo]
}

func newCountryClient(client *httpclient.Client, indicator apiclient.Indicator) *CountryClient {
	return &CountryClient{
		Resource: resource[models.Country, models.CountryInfo](
			client, "Country", "/country", models.CountrySchema, indicator),
	}
}

// ProvinceClient 省份资源客户端
type ProvinceClient struct {
	*apiclient.Resource[models.Province, models.ProvinceInfo]
}

func newProvinceClient(client *httpclient.Client, indicator apiclient.Indicator) *ProvinceClient {
	return &ProvinceClient{
		Resource: resource[models.Province, models.ProvinceInfo](
			client, "Province", "/province", models.ProvinceSchema, indicator),
	}
}

// ListByCountry 查询某国家下的全部省份
func (c *ProvinceClient) ListByCountry(ctx context.Context, countryCode string) ([]models.Province, error) {
	return c.ListAll(ctx, apiclient.Criteria{"countryCode": countryCode})
}

// CityClient 城市资源客户端
type CityClient struct {
	*apiclient.Resource[models.City, models.CityInfo]
}

func newCityClient(client *httpclient.Client, indicator apiclient.Indicator) *CityClient {
	return &CityClient{
		Resource: resource[models.City, models.CityInfo](
			client, "City", "/city", models.CitySchema, indicator),
	}
}

// ListByProvince 查询某省份下的全部城市
func (c *CityClient) ListByProvince(ctx context.Context, provinceCode string) ([]models.City, error) {
	return c.ListAll(ctx, apiclient.Criteria{"provinceCode": provinceCode})
}

// DistrictClient 区县资源客户端
type DistrictClient struct {
	*apiclient.Resource[models.District, models.DistrictInfo]
}

func newDistrictClient(client *httpclient.Client, indicator apiclient.Indicator) *DistrictClient {
	return &DistrictClient{
		Resource: resource[models.District, models.DistrictInfo](
			client, "District", "/district", models.DistrictSchema, indicator),
	}
}

// ListByCity 查询某城市下的全部区县
func (c *DistrictClient) ListByCity(ctx context.Context, cityCode string) ([]models.District, error) {
	return c.ListAll(ctx, apiclient.Criteria{"cityCode": cityCode})
}

// StreetClient 街道资源客户端
type StreetClient struct {
	*apiclient.Resource[models.Street, models.StreetInfo]
}

func newStreetClient(client *httpclient.Client, indicator apiclient.Indicator) *StreetClient {
	return &StreetClient{
		Resource: resource[models.Street, models.StreetInfo](
			client, "Street", "/street", models.StreetSchema, indicator),
	}
}

// ListByDistrict 查询某区县下的全部街道
func (c *StreetClient) ListByDistrict(ctx context.Context, districtCode string) ([]models.Street, error) {
	return c.ListAll(ctx, apiclient.Criteria{"districtCode": districtCode})
}
