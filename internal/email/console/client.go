package console

import (
	"context"

	"github.com/dotting-labs/dotting/internal/email"
	"github.com/gotomicro/ego/core/elog"
)

// Client 开发环境用的降级实现, 只把邮件打到日志里
type Client struct {
	logger *elog.Component
}

func NewClient() *Client {
	return &Client{logger: elog.DefaultLogger}
}

func (c *Client) SendMail(_ context.Context, mail email.Mail) error {
	c.logger.Info("发送邮件",
		elog.String("to", mail.To),
		elog.String("subject", mail.Subject),
		elog.String("body", string(mail.Body)))
	return nil
}
