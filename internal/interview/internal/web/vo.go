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
	"github.com/dotting-labs/dotting/internal/interview/internal/domain"
)

type StartSessionReq struct {
	SubjectName      string `json:"subjectName"`
	SubjectBirthYear int    `json:"subjectBirthYear"`
}

type SessionIDReq struct {
	ID int64 `json:"id"`
}

type SessionSNReq struct {
	SN string `json:"sn"`
}

type ListSessionsReq struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type ListSessionsResp struct {
	Total    int64     `json:"total"`
	Sessions []Session `json:"sessions"`
}

type Session struct {
	ID               int64  `json:"id"`
	SN               string `json:"sn"`
	SubjectName      string `json:"subjectName"`
	SubjectBirthYear int    `json:"subjectBirthYear"`
	Status           string `json:"status"`
	RoundCount       int    `json:"roundCount"`
	Ctime            int64  `json:"ctime"`
	Utime            int64  `json:"utime"`
}

func toSessionVO(s domain.Session) Session {
	return Session{
		ID:               s.ID,
		SN:               s.SN,
		SubjectName:      s.SubjectName,
		SubjectBirthYear: s.SubjectBirthYear,
		Status:           s.Status.String(),
		RoundCount:       s.RoundCount,
		Ctime:            s.Ctime,
		Utime:            s.Utime,
	}
}
