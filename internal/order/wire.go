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

package order

import (
	"github.com/dotting-labs/dotting/internal/interview"
	"github.com/dotting-labs/dotting/internal/order/internal/event"
	"github.com/dotting-labs/dotting/internal/order/internal/repository"
	"github.com/dotting-labs/dotting/internal/order/internal/service"
	"github.com/dotting-labs/dotting/internal/order/internal/web"
	"github.com/dotting-labs/dotting/internal/pkg/sequencenumber"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, cache ecache.Cache, q mq.MQ, interviewModule *interview.Module) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewRepository,
		event.NewOrderPaidEventProducer,
		service.NewService,
		service.NewPaymentGateService,
		sequencenumber.NewGenerator,
		web.NewHandler,
		web.NewAdminHandler,
		initExpireJob,
		wire.FieldsOf(new(*interview.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
