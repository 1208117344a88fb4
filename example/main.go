package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ayxworxfr/go_admin_sdk/api"
	"github.com/ayxworxfr/go_admin_sdk/config"
	"github.com/ayxworxfr/go_admin_sdk/models"
	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/ayxworxfr/go_admin_sdk/pkg/logger"
	"github.com/ayxworxfr/go_admin_sdk/pkg/telemetry"
)

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx := context.Background()
	if provider, err := telemetry.Init(cfg.OpenTelemetry); err != nil {
		logger.Errorf(ctx, "failed to init telemetry: %v", err)
	} else if provider != nil {
		defer provider.Shutdown(ctx)
	}

	client, err := api.New(cfg)
	if err != nil {
		logger.Errorf(ctx, "failed to create client: %v", err)
		os.Exit(1)
	}

	// 用户登录，令牌自动注入后续请求
	if _, err := client.UserAuthenticate().Login(ctx, "admin", "changeme"); err != nil {
		logger.Errorf(ctx, "login failed: %v", err)
		os.Exit(1)
	}

	// 新增部门
	dept, err := client.Departments().Add(ctx, &models.Department{Name: "Sales"})
	if err != nil {
		logger.Errorf(ctx, "failed to add department: %v", err)
		os.Exit(1)
	}
	fmt.Printf("created department %d (%s)\n", dept.ID, dept.Name)

	// 条件分页查询员工
	page, err := client.Employees().List(ctx, &apiclient.ListOptions{
		Page:     &apiclient.PageRequest{PageIndex: 0, PageSize: 20},
		Sort:     &apiclient.SortRequest{SortField: "createTime", SortOrder: apiclient.SortDesc},
		Criteria: apiclient.Criteria{"departmentId": dept.ID, "state": models.StateNormal},
	})
	if err != nil {
		logger.Errorf(ctx, "failed to list employees: %v", err)
		os.Exit(1)
	}
	fmt.Printf("employees: %d of %d\n", len(page.Content), page.TotalCount)

	// 导出为CSV文件
	path, err := client.Employees().ExportToFile(ctx, apiclient.FormatCSV,
		apiclient.Criteria{"departmentId": dept.ID}, nil, "employees.csv")
	if err != nil {
		logger.Errorf(ctx, "failed to export employees: %v", err)
		os.Exit(1)
	}
	fmt.Printf("exported to %s\n", path)
}
