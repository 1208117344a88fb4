package models

import "time"

// Device 设备模型
type Device struct {
	ID            uint64    `json:"id,omitempty"`
	Code          string    `json:"code,omitempty"`
	Name          string    `json:"name" validate:"required"`
	Organization  Ref       `json:"organization,omitempty"`
	Hardware      *Hardware `json:"hardware,omitempty"`
	Software      *Software `json:"software,omitempty"`
	Location      *Location `json:"location,omitempty"`
	DeployAddress *Address  `json:"deploy_address,omitempty"`
	State         State     `json:"state,omitempty"`
	RegisterTime  time.Time `json:"register_time,omitempty"`
	Comment       string    `json:"comment,omitempty"`
	Audit
}

// Hardware 设备硬件信息
type Hardware struct {
	Brand        string `json:"brand,omitempty"`
	Model        string `json:"model,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	CPU          string `json:"cpu,omitempty"`
	Memory       string `json:"memory,omitempty"`
	Storage      string `json:"storage,omitempty"`
}

// Software 设备软件信息
type Software struct {
	OS       string `json:"os,omitempty"`
	Platform string `json:"platform,omitempty"`
	Version  string `json:"version,omitempty"`
}

// Location 设备地理位置
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// DeviceInfo 设备信息投影
type DeviceInfo struct {
	BaseInfo
	Organization Ref `json:"organization,omitempty"`
}

// Feedback 反馈模型，只增不改
type Feedback struct {
	ID        uint64 `json:"id,omitempty"`
	App       Ref    `json:"app,omitempty"`
	Category  string `json:"category,omitempty"`
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content,omitempty"`
	Submitter Ref    `json:"submitter,omitempty"`
	State     State  `json:"state,omitempty"`
	Audit
}

// FeedbackInfo 反馈信息投影
type FeedbackInfo struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	State State  `json:"state,omitempty"`
}
