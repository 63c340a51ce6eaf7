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

package printorder

import (
	"sync"

	"github.com/dotting-labs/dotting/internal/printorder/internal/domain"
	"github.com/dotting-labs/dotting/internal/printorder/internal/repository/dao"
	"github.com/dotting-labs/dotting/internal/printorder/internal/service"
	"github.com/dotting-labs/dotting/internal/printorder/internal/web"
	"github.com/ego-component/egorm"
)

type (
	AdminHandler      = web.AdminHandler
	Service           = service.Service
	PrintOrder        = domain.PrintOrder
	Status            = domain.Status
	TransitionPayload = domain.TransitionPayload
	Actor             = domain.Actor
	StatusLog         = domain.StatusLog
)

const (
	StatusPending       = domain.StatusPending
	StatusPrinting      = domain.StatusPrinting
	StatusShipped       = domain.StatusShipped
	StatusDelivered     = domain.StatusDelivered
	StatusClaimOpened   = domain.StatusClaimOpened
	StatusClaimResolved = domain.StatusClaimResolved
)

var (
	ErrPrintOrderNotFound = service.ErrPrintOrderNotFound
	ErrInvalidTransition  = service.ErrInvalidTransition
)

type Module struct {
	AdminHdl *AdminHandler
	Svc      Service
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.PrintOrderDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewPrintOrderGORMDAO(db)
}
