package client

import (
	"errors"
)

const (
	OK = "Ok"
)

// 通用错误定义
var (
	ErrSendFailed       = errors.New("发送短信失败")
	ErrInvalidParameter = errors.New("参数无效")
)

// Client 短信客户端接口 (抽象)
//
//go:generate mockgen -source=./types.go -destination=./mocks/sms.mock.go -package=smsmocks Client
type Client interface {
	// Send 发送短信
	Send(req SendReq) (SendResp, error)
}

// SendReq 发送短信请求参数
type SendReq struct {
	PhoneNumbers []string
	// Content 正文。公告是自由文本，不走模板参数
	Content string
}

// SendResp 发送短信响应参数
type SendResp struct {
	RequestID    string
	PhoneNumbers map[string]SendRespStatus
}

type SendRespStatus struct {
	Code    string
	Message string
}
