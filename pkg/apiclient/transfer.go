package apiclient

import (
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ayxworxfr/go_admin_sdk/pkg/logger"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Format 导入导出文件格式
type Format string

const (
	FormatXML   Format = "xml"
	FormatJSON  Format = "json"
	FormatExcel Format = "excel"
	FormatCSV   Format = "csv"
)

// formatMIME 格式到MIME类型的固定映射
var formatMIME = map[Format]string{
	FormatXML:   "application/xml",
	FormatJSON:  "application/json",
	FormatExcel: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	FormatCSV:   "text/csv",
}

var ErrUnsupportedFormat = errors.New("unsupported transfer format")

// MIME 返回格式对应的MIME类型
func (f Format) MIME() (string, error) {
	m, ok := formatMIME[f]
	if !ok {
		return "", errors.Wrapf(ErrUnsupportedFormat, "%q", f)
	}
	return m, nil
}

// ExportResult 导出结果
type ExportResult struct {
	Data     []byte
	MIME     string
	Filename string
}

// ImportOptions 导入选项
type ImportOptions struct {
	// Parallel 服务端是否并行解析
	Parallel bool `json:"parallel"`
	// Threads 并行解析线程数，0表示由服务端决定
	Threads int `json:"threads"`
}

// importResponse 导入接口响应体
type importResponse struct {
	Count  int64    `json:"count"`
	Errors []string `json:"errors"`
}

// Export 按格式导出实体数据，返回内存中的文件内容
func (r *Resource[T, I]) Export(ctx context.Context, format Format, criteria Criteria, sort *SortRequest) (*ExportResult, error) {
	mimeType, err := format.MIME()
	if err != nil {
		return nil, err
	}
	params, err := r.buildCriteriaParams(criteria, sort)
	if err != nil {
		return nil, err
	}
	defer r.begin(OpExporting)()

	path := r.path("/export/{format}", map[string]any{"format": string(format)})
	payload, err := r.http.Download(ctx, path, params)
	if err != nil {
		return nil, err
	}

	result := &ExportResult{
		Data:     payload.Data,
		MIME:     payload.MIME,
		Filename: payload.Filename,
	}
	if result.MIME == "" {
		result.MIME = mimeType
	}

	logger.Info(ctx, "Exported entities",
		zap.String("entity", r.desc.Name), zap.String("format", string(format)), zap.Int("bytes", len(result.Data)))
	return result, nil
}

// ExportToFile 导出实体数据并写入本地文件，返回写入的文件路径
func (r *Resource[T, I]) ExportToFile(ctx context.Context, format Format, criteria Criteria, sort *SortRequest, path string) (string, error) {
	result, err := r.Export(ctx, format, criteria, sort)
	if err != nil {
		return "", err
	}

	// 目标是目录时使用服务端给出的文件名
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		name := result.Filename
		if name == "" {
			name = r.desc.Name + "." + string(format)
		}
		path = filepath.Join(path, name)
	}

	if err := os.WriteFile(path, result.Data, 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write export file %s", path)
	}

	logger.Info(ctx, "Exported entities to file", zap.String("entity", r.desc.Name), zap.String("path", path))
	return path, nil
}

// Import 上传文件由服务端解析导入，返回导入记录数。
// 服务端返回的逐行错误聚合为multierror，同时保留已导入数量。
func (r *Resource[T, I]) Import(ctx context.Context, format Format, file io.Reader, filename string, opts *ImportOptions) (int64, error) {
	if _, err := format.MIME(); err != nil {
		return 0, err
	}
	if file == nil {
		return 0, errors.New("file cannot be nil")
	}
	if filename == "" {
		filename = r.desc.Name + "." + string(format)
	}

	params := url.Values{}
	if opts != nil {
		params.Set("parallel", strconv.FormatBool(opts.Parallel))
		if opts.Threads > 0 {
			params.Set("threads", strconv.Itoa(opts.Threads))
		}
	}
	defer r.begin(OpImporting)()

	path := r.path("/import/{format}", map[string]any{"format": string(format)})
	var resp importResponse
	if err := r.http.UploadMultipart(ctx, path, "file", filename, file, params, &resp); err != nil {
		return 0, err
	}

	if len(resp.Errors) > 0 {
		var merr *multierror.Error
		for _, msg := range resp.Errors {
			merr = multierror.Append(merr, errors.New(msg))
		}
		logger.Warn(ctx, "Imported entities with errors",
			zap.String("entity", r.desc.Name), zap.Int64("count", resp.Count), zap.Int("errors", len(resp.Errors)))
		return resp.Count, merr.ErrorOrNil()
	}

	logger.Info(ctx, "Imported entities",
		zap.String("entity", r.desc.Name), zap.String("format", string(format)), zap.Int64("count", resp.Count))
	return resp.Count, nil
}
