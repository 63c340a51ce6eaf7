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

//go:build e2e

package integration

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/dotting-labs/dotting/internal/interview"
	"github.com/dotting-labs/dotting/internal/order"
	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/errs"
	"github.com/dotting-labs/dotting/internal/order/internal/integration/startup"
	"github.com/dotting-labs/dotting/internal/order/internal/web"
	"github.com/dotting-labs/dotting/internal/test"
	testioc "github.com/dotting-labs/dotting/internal/test/ioc"
	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testUID = int64(234)

func TestOrderModule(t *testing.T) {
	suite.Run(t, new(OrderModuleTestSuite))
}

type OrderModuleTestSuite struct {
	suite.Suite
	server    *egin.Component
	db        *egorm.Component
	svc       order.Service
	sessionSN string
}

func (s *OrderModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()

	interviewModule, err := interview.InitModule(s.db)
	require.NoError(s.T(), err)
	module, err := startup.InitModule(interviewModule)
	require.NoError(s.T(), err)
	s.svc = module.Svc

	s.sessionSN = "session-sn-1"
	_, err = interviewModule.Svc.Start(context.Background(), interview.Session{
		SN:          s.sessionSN,
		UID:         testUID,
		SubjectName: "王建国",
	})
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: testUID,
		}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *OrderModuleTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `orders`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `order_status_logs`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `interview_sessions`").Error)
}

func (s *OrderModuleTestSuite) TestCreateOrder() {
	t := s.T()

	req, err := http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateOrderReq{
			RequestID: "requestID01",
			SessionSN: s.sessionSN,
			Package:   "hardcover",
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CreateOrderResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.NotZero(t, resp.Data.OrderSN)
	assert.Equal(t, int64(29900), resp.Data.Amount)

	// 同一会话的活跃订单唯一
	req, err = http.NewRequest(http.MethodPost,
		"/order/create", iox.NewJSONReader(web.CreateOrderReq{
			RequestID: "requestID02",
			SessionSN: s.sessionSN,
			Package:   "digital",
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder2 := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder2, req)
	require.Equal(t, 500, recorder2.Code)
	assert.Equal(t, errs.ActiveOrderExists.Code, recorder2.MustScan().Code)

	// 取消后可以重新创建
	created, err := s.svc.FindOrder(context.Background(), resp.Data.OrderSN, testUID)
	require.NoError(t, err)
	_, err = s.svc.Transition(context.Background(), created.ID, domain.StatusCancelled,
		domain.TransitionPayload{Reason: "换个套餐"},
		domain.Actor{ID: testUID, Role: domain.RoleMember})
	require.NoError(t, err)
}

func (s *OrderModuleTestSuite) TestCreateOrderFailed() {
	t := s.T()
	testCases := []struct {
		name     string
		req      web.CreateOrderReq
		wantCode int
		wantResp test.Result[any]
	}{
		{
			name: "请求ID为空",
			req: web.CreateOrderReq{
				SessionSN: s.sessionSN,
				Package:   "digital",
			},
			wantCode: 500,
			wantResp: test.Result[any]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
		{
			name: "套餐非法",
			req: web.CreateOrderReq{
				RequestID: "requestID-pkg",
				SessionSN: s.sessionSN,
				Package:   "gold",
			},
			wantCode: 500,
			wantResp: test.Result[any]{
				Code: errs.MissingField.Code,
				Msg:  errs.MissingField.Msg,
			},
		},
		{
			name: "会话序列号非法",
			req: web.CreateOrderReq{
				RequestID: "requestID-sn",
				SessionSN: "not-exists",
				Package:   "digital",
			},
			wantCode: 500,
			wantResp: test.Result[any]{
				Code: errs.SystemError.Code,
				Msg:  errs.SystemError.Msg,
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost,
				"/order/create", iox.NewJSONReader(tc.req))
			req.Header.Set("content-type", "application/json")
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[any]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func (s *OrderModuleTestSuite) TestCancelAndRetry() {
	t := s.T()

	created, err := s.svc.CreateOrder(context.Background(), domain.Order{
		SN:        "order-sn-retry",
		BuyerID:   testUID,
		SessionID: 2,
		Package:   domain.PackageDigital,
		Amount:    9900,
	})
	require.NoError(t, err)

	// 过期
	_, err = s.svc.Transition(context.Background(), created.ID, domain.StatusExpired,
		domain.TransitionPayload{Reason: "支付超时"}, domain.Actor{Role: "system"})
	require.NoError(t, err)

	// 重新下单回到待支付
	req, err := http.NewRequest(http.MethodPost,
		"/order/retry", iox.NewJSONReader(web.RetryOrderReq{OrderSN: created.SN}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.RetrieveOrderDetailResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, "pending_payment", recorder.MustScan().Data.Order.Status)

	// 取消
	req, err = http.NewRequest(http.MethodPost,
		"/order/cancel", iox.NewJSONReader(web.CancelOrderReq{
			OrderSN: created.SN,
			Reason:  "不想要了",
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder2 := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder2, req)
	require.Equal(t, 200, recorder2.Code)

	// 已取消是终态, 不能再重新下单
	req, err = http.NewRequest(http.MethodPost,
		"/order/retry", iox.NewJSONReader(web.RetryOrderReq{OrderSN: created.SN}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder3 := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder3, req)
	require.Equal(t, 500, recorder3.Code)
	assert.Equal(t, errs.InvalidTransition.Code, recorder3.MustScan().Code)

	logs, err := s.svc.ListStatusLogs(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, logs, 3)
}

func (s *OrderModuleTestSuite) TestListOrders() {
	t := s.T()

	for i := 0; i < 3; i++ {
		_, err := s.svc.CreateOrder(context.Background(), domain.Order{
			SN:        fmt.Sprintf("order-sn-list-%d", i),
			BuyerID:   testUID,
			SessionID: int64(100 + i),
			Package:   domain.PackageDigital,
			Amount:    9900,
		})
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost,
		"/order/list", iox.NewJSONReader(web.ListOrdersReq{Offset: 0, Limit: 2}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.ListOrdersResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.GreaterOrEqual(t, resp.Data.Total, int64(3))
	assert.Len(t, resp.Data.Orders, 2)
}
