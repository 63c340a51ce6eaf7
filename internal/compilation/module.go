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

package compilation

import (
	"sync"

	"github.com/dotting-labs/dotting/internal/compilation/internal/domain"
	"github.com/dotting-labs/dotting/internal/compilation/internal/repository/dao"
	"github.com/dotting-labs/dotting/internal/compilation/internal/service"
	"github.com/dotting-labs/dotting/internal/compilation/internal/web"
	"github.com/ego-component/egorm"
)

type (
	Handler      = web.Handler
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Compilation  = domain.Compilation
	ReviewStatus = domain.ReviewStatus
)

const (
	ReviewStatusDraft            = domain.ReviewStatusDraft
	ReviewStatusInReview         = domain.ReviewStatusInReview
	ReviewStatusApprovedForPDF   = domain.ReviewStatusApprovedForPDF
	ReviewStatusPDFConfirmed     = domain.ReviewStatusPDFConfirmed
	ReviewStatusApprovedForPrint = domain.ReviewStatusApprovedForPrint
	ReviewStatusPrinted          = domain.ReviewStatusPrinted
)

var (
	ErrCompilationNotFound = service.ErrCompilationNotFound
	ErrInvalidReviewStatus = service.ErrInvalidReviewStatus
)

type Module struct {
	Hdl      *Handler
	AdminHdl *AdminHandler
	Svc      Service
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CompilationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewCompilationGORMDAO(db)
}
