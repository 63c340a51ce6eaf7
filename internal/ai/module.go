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

package ai

import (
	"sync"

	"github.com/dotting-labs/dotting/internal/ai/internal/repository"
	"github.com/dotting-labs/dotting/internal/ai/internal/repository/dao"
	"github.com/dotting-labs/dotting/internal/ai/internal/service"
	"github.com/dotting-labs/dotting/internal/ai/internal/service/llm"
	"github.com/dotting-labs/dotting/internal/ai/internal/service/llm/handler/log"
	"github.com/dotting-labs/dotting/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/dotting-labs/dotting/internal/ai/internal/service/llm/handler/record"
	"github.com/dotting-labs/dotting/internal/ai/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

type (
	Handler           = web.Handler
	DedicationService = service.DedicationService
)

var ErrPaymentRequired = service.ErrPaymentRequired

type Module struct {
	Hdl *Handler
	Svc DedicationService
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CallRecordDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMCallRecordDAO(db)
}

type zhipuConfig struct {
	APIKey string `yaml:"apikey"`
	Model  string `yaml:"model"`
}

func initZhipuConfig() zhipuConfig {
	cfg := zhipuConfig{
		Model: "glm-4-flash",
	}
	_ = econf.UnmarshalKey("zhipu", &cfg)
	return cfg
}

// initLLMService 组装调用链: 日志 -> 落库 -> 智谱出口
func initLLMService(repo repository.CallRecordRepo) (llm.Service, error) {
	cfg := initZhipuConfig()
	platformHdl, err := zhipu.NewHandler(cfg.APIKey, cfg.Model)
	if err != nil {
		return nil, err
	}
	root := log.NewHandler().Next(record.NewHandler(repo).Next(platformHdl))
	return llm.NewLLMService(root), nil
}
