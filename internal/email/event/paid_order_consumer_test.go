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
	"errors"
	"testing"

	"github.com/dotting-labs/dotting/internal/email"
	emailmocks "github.com/dotting-labs/dotting/internal/email/mocks"
	"github.com/dotting-labs/dotting/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUserService struct {
	user.Service

	users map[int64]user.User
}

func (f *fakeUserService) Profile(_ context.Context, id int64) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func initTestMQ(t *testing.T) mq.MQ {
	t.Helper()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), "order_paid_events", 1))
	return q
}

func produceEvent(t *testing.T, q mq.MQ, evt PaidOrderEvent) {
	t.Helper()
	producer, err := q.Producer("order_paid_events")
	require.NoError(t, err)
	value, err := json.Marshal(evt)
	require.NoError(t, err)
	_, err = producer.Produce(context.Background(), &mq.Message{Value: value})
	require.NoError(t, err)
}

func TestPaidOrderConsumer_Consume(t *testing.T) {
	evt := PaidOrderEvent{
		OrderSN:   "order-sn-1",
		BuyerID:   234,
		SessionID: 11,
		Package:   "hardcover",
		Amount:    29900,
	}

	t.Run("支付成功发送确认邮件", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := initTestMQ(t)
		emailSvc := emailmocks.NewMockService(ctrl)
		emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, mail email.Mail) error {
				assert.Equal(t, "buyer@dotting.life", mail.To)
				assert.Contains(t, string(mail.Body), "order-sn-1")
				assert.Contains(t, string(mail.Body), "299.00")
				return nil
			})
		userSvc := &fakeUserService{users: map[int64]user.User{
			234: {ID: 234, Nickname: "老王", Email: "buyer@dotting.life"},
		}}

		consumer, err := NewPaidOrderConsumer(emailSvc, userSvc, q)
		require.NoError(t, err)
		produceEvent(t, q, evt)
		require.NoError(t, consumer.Consume(context.Background()))
	})

	t.Run("买家没有邮箱则跳过", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := initTestMQ(t)
		// 不期待任何 SendMail 调用
		emailSvc := emailmocks.NewMockService(ctrl)
		userSvc := &fakeUserService{users: map[int64]user.User{
			234: {ID: 234, Nickname: "老王"},
		}}

		consumer, err := NewPaidOrderConsumer(emailSvc, userSvc, q)
		require.NoError(t, err)
		produceEvent(t, q, evt)
		require.NoError(t, consumer.Consume(context.Background()))
	})

	t.Run("买家不存在返回错误", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := initTestMQ(t)
		emailSvc := emailmocks.NewMockService(ctrl)
		userSvc := &fakeUserService{users: map[int64]user.User{}}

		consumer, err := NewPaidOrderConsumer(emailSvc, userSvc, q)
		require.NoError(t, err)
		produceEvent(t, q, evt)
		assert.ErrorIs(t, consumer.Consume(context.Background()), user.ErrUserNotFound)
	})

	t.Run("发送失败不返回错误避免重投", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := initTestMQ(t)
		emailSvc := emailmocks.NewMockService(ctrl)
		emailSvc.EXPECT().SendMail(gomock.Any(), gomock.Any()).
			Return(errors.New("mock send error"))
		userSvc := &fakeUserService{users: map[int64]user.User{
			234: {ID: 234, Nickname: "老王", Email: "buyer@dotting.life"},
		}}

		consumer, err := NewPaidOrderConsumer(emailSvc, userSvc, q)
		require.NoError(t, err)
		produceEvent(t, q, evt)
		require.NoError(t, consumer.Consume(context.Background()))
	})
}
