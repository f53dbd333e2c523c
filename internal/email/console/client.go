package console

import (
	"context"

	"github.com/dpickhq/dpick/internal/email"
	"github.com/gotomicro/ego/core/elog"
)

var _ email.Service = (*Client)(nil)

// Client 本地开发用，只打日志不真发
type Client struct {
	logger *elog.Component
}

func NewClient() *Client {
	return &Client{
		logger: elog.DefaultLogger,
	}
}

func (c *Client) SendMail(ctx context.Context, mail email.Mail) error {
	c.logger.Info("发送邮件",
		elog.String("to", mail.To),
		elog.String("subject", mail.Subject),
		elog.Any("body", string(mail.Body)))
	return nil
}
