package api

import (
	"context"
	"time"

	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
	"github.com/pkg/errors"
)

// DeviceClient 设备资源客户端
type DeviceClient struct {
	*apiclient.Resource[models.Device, models.DeviceInfo]
}

func newDeviceClient(client *httpclient.Client, indicator apiclient.Indicator) *DeviceClient {
	return &DeviceClient{
		Resource: resource[models.Device, models.DeviceInfo](
			client, "Device", "/device", models.DeviceSchema, indicator),
	}
}

// UpdateHardware 更新设备硬件信息
func (c *DeviceClient) UpdateHardware(ctx context.Context, id any, hardware *models.Hardware) (time.Time, error) {
	if hardware == nil {
		return time.Time{}, errors.New("hardware cannot be nil")
	}
	return c.UpdateProperty(ctx, id, "hardware", hardware)
}

// UpdateSoftware 更新设备软件信息
func (c *DeviceClient) UpdateSoftware(ctx context.Context, id any, software *models.Software) (time.Time, error) {
	if software == nil {
		return time.Time{}, errors.New("software cannot be nil")
	}
	return c.UpdateProperty(ctx, id, "software", software)
}

// UpdateLocation 更新设备地理位置
func (c *DeviceClient) UpdateLocation(ctx context.Context, id any, location *models.Location) (time.Time, error) {
	if location == nil {
		return time.Time{}, errors.New("location cannot be nil")
	}
	return c.UpdateProperty(ctx, id, "location", location)
}

// UpdateDeployAddress 更新设备部署地址
func (c *DeviceClient) UpdateDeployAddress(ctx context.Context, id any, address *models.Address) (time.Time, error) {
	if address == nil {
		return time.Time{}, errors.New("address cannot be nil")
	}
	return c.UpdateProperty(ctx, id, "address", address)
}

// FeedbackClient 反馈资源客户端。反馈只增不改，故不暴露更新接口。
type FeedbackClient struct {
	res *apiclient.Resource[models.Feedback, models.FeedbackInfo]
}

func newFeedbackClient(client *httpclient.Client, indicator apiclient.Indicator) *FeedbackClient {
	return &FeedbackClient{
		res: resource[models.Feedback, models.FeedbackInfo](
			client, "Feedback", "/feedback", models.FeedbackSchema, indicator),
	}
}

// List 分页查询反馈
func (c *FeedbackClient) List(ctx context.Context, opts *apiclient.ListOptions) (*apiclient.Page[models.Feedback], error) {
	return c.res.List(ctx, opts)
}

// Get 根据ID查询反馈
func (c *FeedbackClient) Get(ctx context.Context, id any) (*models.Feedback, error) {
	return c.res.Get(ctx, id)
}

// Add 提交反馈
func (c *FeedbackClient) Add(ctx context.Context, feedback *models.Feedback) (*models.Feedback, error) {
	return c.res.Add(ctx, feedback)
}

// UpdateState 流转反馈状态
func (c *FeedbackClient) UpdateState(ctx context.Context, id any, state models.State) (time.Time, error) {
	if !state.IsValid() {
		return time.Time{}, errors.Errorf("invalid state %q", state)
	}
	return c.res.UpdateState(ctx, id, state.String())
}

// Delete 软删除反馈
func (c *FeedbackClient) Delete(ctx context.Context, id any) (time.Time, error) {
	return c.res.Delete(ctx, id)
}

// Restore 恢复被软删除的反馈
func (c *FeedbackClient) Restore(ctx context.Context, id any) error {
	return c.res.Restore(ctx, id)
}

// Purge 清除已软删除的反馈
func (c *FeedbackClient) Purge(ctx context.Context, id any) error {
	return c.res.Purge(ctx, id)
}
