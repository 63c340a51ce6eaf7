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

package interview

import (
	"sync"

	"github.com/dotting-labs/dotting/internal/interview/internal/domain"
	"github.com/dotting-labs/dotting/internal/interview/internal/repository/dao"
	"github.com/dotting-labs/dotting/internal/interview/internal/service"
	"github.com/dotting-labs/dotting/internal/interview/internal/web"
	"github.com/ego-component/egorm"
)

type (
	Handler       = web.Handler
	Service       = service.Service
	Session       = domain.Session
	SessionStatus = domain.SessionStatus
)

const (
	SessionStatusInProgress = domain.SessionStatusInProgress
	SessionStatusCompleted  = domain.SessionStatusCompleted
)

var ErrSessionNotFound = service.ErrSessionNotFound

type Module struct {
	Hdl *Handler
	Svc Service
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.SessionDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewSessionGORMDAO(db)
}
