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

package ai

import (
	"github.com/dotting-labs/dotting/internal/ai/internal/repository"
	"github.com/dotting-labs/dotting/internal/ai/internal/service"
	"github.com/dotting-labs/dotting/internal/ai/internal/web"
	"github.com/dotting-labs/dotting/internal/interview"
	"github.com/dotting-labs/dotting/internal/order"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, interviewModule *interview.Module, orderModule *order.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewCallRecordRepo,
		initLLMService,
		service.NewDedicationService,
		web.NewHandler,
		wire.FieldsOf(new(*interview.Module), "Svc"),
		wire.FieldsOf(new(*order.Module), "GateSvc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
