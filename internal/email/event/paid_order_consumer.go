// Copyright 2025 dotting-labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dotting-labs/dotting/internal/email"
	"github.com/dotting-labs/dotting/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const paidOrderEvents = "order_paid_events"

// PaidOrderEvent 与订单侧的事件载荷保持一致, 通过 topic 解耦
type PaidOrderEvent struct {
	OrderSN   string `json:"orderSN"`
	BuyerID   int64  `json:"buyerID"`
	SessionID int64  `json:"sessionID"`
	Package   string `json:"package"`
	Amount    int64  `json:"amount"`
}

// PaidOrderConsumer 支付完成后给买家发确认邮件。
// 发送失败只记录日志, 绝不影响订单状态
type PaidOrderConsumer struct {
	emailSvc email.Service
	userSvc  user.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewPaidOrderConsumer(emailSvc email.Service, userSvc user.Service, q mq.MQ) (*PaidOrderConsumer, error) {
	groupID := "email"
	consumer, err := q.Consumer(paidOrderEvents, groupID)
	if err != nil {
		return nil, err
	}
	return &PaidOrderConsumer{
		emailSvc: emailSvc,
		userSvc:  userSvc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *PaidOrderConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费订单支付事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *PaidOrderConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}

	var evt PaidOrderEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}

	buyer, err := c.userSvc.Profile(ctx, evt.BuyerID)
	if err != nil {
		return fmt.Errorf("查找买家失败: %w", err)
	}
	if buyer.Email == "" {
		c.logger.Warn("买家未填写邮箱, 跳过支付确认邮件",
			elog.Int64("uid", evt.BuyerID),
			elog.String("orderSN", evt.OrderSN))
		return nil
	}

	err = c.emailSvc.SendMail(ctx, email.Mail{
		From:    "点亮时光",
		To:      buyer.Email,
		Subject: "支付成功, 访谈成书已启动",
		Body:    []byte(c.buildBody(buyer, evt)),
	})
	if err != nil {
		// 邮件是尽力而为的通知, 不向上传递错误避免消息重投
		c.logger.Error("发送支付确认邮件失败",
			elog.FieldErr(err),
			elog.String("orderSN", evt.OrderSN),
			elog.Int64("uid", evt.BuyerID))
	}
	return nil
}

func (c *PaidOrderConsumer) buildBody(buyer user.User, evt PaidOrderEvent) string {
	return fmt.Sprintf(`<p>%s, 您好:</p>
<p>您的订单 %s 已支付成功, 金额 %.2f 元。</p>
<p>我们会尽快为您安排访谈成书的后续制作, 进度可以随时在订单详情中查看。</p>`,
		buyer.Nickname, evt.OrderSN, float64(evt.Amount)/100)
}
