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

//go:build wireinject

package printorder

import (
	"github.com/dotting-labs/dotting/internal/compilation"
	"github.com/dotting-labs/dotting/internal/pkg/snowflake"
	"github.com/dotting-labs/dotting/internal/printorder/internal/repository"
	"github.com/dotting-labs/dotting/internal/printorder/internal/service"
	"github.com/dotting-labs/dotting/internal/printorder/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, idGenerator snowflake.IDGenerator, compilationModule *compilation.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		service.NewService,
		web.NewAdminHandler,
		wire.FieldsOf(new(*compilation.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
