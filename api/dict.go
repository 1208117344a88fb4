package api

import (
	"context"

	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/httpclient"
)

// DictClient 字典资源客户端
type DictClient struct {
	*apiclient.Resource[models.Dict, models.DictInfo]
	entries *apiclient.Resource[models.DictEntry, models.DictEntryInfo]
}

func newDictClient(client *httpclient.Client, indicator apiclient.Indicator) *DictClient {
	return &DictClient{
		Resource: resource[models.Dict, models.DictInfo](
			client, "Dict", "/dict", models.DictSchema, indicator),
		entries: resource[models.DictEntry, models.DictEntryInfo](
			client, "DictEntry", "/dict/{parentId}/entry", models.DictEntrySchema, indicator),
	}
}

// Entries 返回绑定到指定字典的条目子资源客户端
func (c *DictClient) Entries(dictID any) (*DictEntryClient, error) {
	sub, err := c.entries.Sub(dictID)
	if err != nil {
		return nil, err
	}
	return &DictEntryClient{Resource: sub}, nil
}

// GetEntry 根据字典ID与条目ID查询条目
func (c *DictClient) GetEntry(ctx context.Context, dictID, entryID any) (*models.DictEntry, error) {
	return c.entries.GetByParentAndKey(ctx, dictID, entryID)
}

// DictEntryClient 字典条目资源客户端，路径已绑定所属字典
type DictEntryClient struct {
	*apiclient.Resource[models.DictEntry, models.DictEntryInfo]
}
