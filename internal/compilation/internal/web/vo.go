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

package web

import (
	"github.com/dotting-labs/dotting/internal/compilation/internal/domain"
)

type SaveCompilationReq struct {
	ID        int64  `json:"id"`
	SessionID int64  `json:"sessionId"`
	Title     string `json:"title"`
	Content   string `json:"content"`
}

type CompilationIDReq struct {
	ID int64 `json:"id"`
}

type ListCompilationsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListCompilationsResp struct {
	Total        int64         `json:"total"`
	Compilations []Compilation `json:"compilations"`
}

type Compilation struct {
	ID             int64  `json:"id"`
	SN             string `json:"sn"`
	SessionID      int64  `json:"sessionId"`
	Title          string `json:"title"`
	Content        string `json:"content,omitempty"`
	ReviewStatus   string `json:"reviewStatus"`
	PDFConfirmedAt int64  `json:"pdfConfirmedAt,omitempty"`
	Ctime          int64  `json:"ctime"`
	Utime          int64  `json:"utime"`
}

func toCompilationVO(c domain.Compilation) Compilation {
	return Compilation{
		ID:             c.ID,
		SN:             c.SN,
		SessionID:      c.SessionID,
		Title:          c.Title,
		Content:        c.Content,
		ReviewStatus:   c.ReviewStatus.String(),
		PDFConfirmedAt: c.PDFConfirmedAt,
		Ctime:          c.Ctime,
		Utime:          c.Utime,
	}
}
