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

package user

import (
	"sync"

	"github.com/dotting-labs/dotting/internal/user/internal/domain"
	"github.com/dotting-labs/dotting/internal/user/internal/repository/dao"
	"github.com/dotting-labs/dotting/internal/user/internal/service"
	"github.com/dotting-labs/dotting/internal/user/internal/web"
	"github.com/ego-component/egorm"
)

type (
	Handler = web.Handler
	Service = service.UserService
	User    = domain.User
	Role    = domain.Role
)

const (
	RoleMember   = domain.RoleMember
	RoleOperator = domain.RoleOperator
	RoleAdmin    = domain.RoleAdmin
)

var ErrUserNotFound = service.ErrUserNotFound

type Module struct {
	Hdl *Handler
	Svc Service
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.UserDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMUserDAO(db)
}
