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

package order

import (
	"sync"
	"time"

	"github.com/dotting-labs/dotting/internal/order/internal/domain"
	"github.com/dotting-labs/dotting/internal/order/internal/job"
	"github.com/dotting-labs/dotting/internal/order/internal/repository/dao"
	"github.com/dotting-labs/dotting/internal/order/internal/service"
	"github.com/dotting-labs/dotting/internal/order/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

type (
	Handler                = web.Handler
	AdminHandler           = web.AdminHandler
	Service                = service.Service
	PaymentGateService     = service.PaymentGateService
	Order                  = domain.Order
	Status                 = domain.Status
	TransitionPayload      = domain.TransitionPayload
	Actor                  = domain.Actor
	GateDecision           = domain.GateDecision
	ExpirePendingOrdersJob = job.ExpirePendingOrdersJob
)

const (
	StatusPendingPayment = domain.StatusPendingPayment
	StatusPaid           = domain.StatusPaid
	StatusInProduction   = domain.StatusInProduction
	StatusReadyToShip    = domain.StatusReadyToShip
	StatusShipped        = domain.StatusShipped
	StatusDelivered      = domain.StatusDelivered
	StatusCompleted      = domain.StatusCompleted
	StatusRefunded       = domain.StatusRefunded
	StatusCancelled      = domain.StatusCancelled
	StatusExpired        = domain.StatusExpired
)

var ErrPaymentRequired = service.ErrPaymentRequired

type Module struct {
	Hdl       *Handler
	AdminHdl  *AdminHandler
	Svc       Service
	GateSvc   PaymentGateService
	ExpireJob *ExpirePendingOrdersJob
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.OrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewOrderGORMDAO(db)
}

func initExpireJob(svc service.Service) *job.ExpirePendingOrdersJob {
	limit := econf.GetInt("order.expire.limit")
	if limit <= 0 {
		limit = 100
	}
	minute := econf.GetInt64("order.expire.minute")
	if minute <= 0 {
		minute = 30
	}
	timeout := econf.GetDuration("order.expire.timeout")
	if timeout <= 0 {
		timeout = time.Minute
	}
	return job.NewExpirePendingOrdersJob(svc, limit, minute, timeout)
}
