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

package ioc

import (
	"github.com/dotting-labs/dotting/internal/email"
	"github.com/dotting-labs/dotting/internal/email/event"
	"github.com/dotting-labs/dotting/internal/user"
	"github.com/ecodeclub/mq-api"
)

func initMQConsumers(emailSvc email.Service, userModule *user.Module, q mq.MQ) []Consumer {
	return []Consumer{
		initPaidOrderConsumer(emailSvc, userModule, q),
	}
}

func initPaidOrderConsumer(emailSvc email.Service, userModule *user.Module, q mq.MQ) *event.PaidOrderConsumer {
	res, err := event.NewPaidOrderConsumer(emailSvc, userModule.Svc, q)
	if err != nil {
		panic(err)
	}
	return res
}
