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

package domain

type ReviewStatus string

const (
	ReviewStatusDraft            ReviewStatus = "draft"
	ReviewStatusInReview         ReviewStatus = "in_review"
	ReviewStatusApprovedForPDF   ReviewStatus = "approved_for_pdf"
	ReviewStatusPDFConfirmed     ReviewStatus = "pdf_confirmed"
	ReviewStatusApprovedForPrint ReviewStatus = "approved_for_print"
	ReviewStatusPrinted          ReviewStatus = "printed"
)

// reviewTransitions 审校状态流转表, 不在表内的流转一律拒绝
var reviewTransitions = map[ReviewStatus][]ReviewStatus{
	ReviewStatusDraft:            {ReviewStatusInReview},
	ReviewStatusInReview:         {ReviewStatusApprovedForPDF, ReviewStatusDraft},
	ReviewStatusApprovedForPDF:   {ReviewStatusPDFConfirmed},
	ReviewStatusPDFConfirmed:     {ReviewStatusApprovedForPrint},
	ReviewStatusApprovedForPrint: {ReviewStatusPrinted},
	ReviewStatusPrinted:          {},
}

func (s ReviewStatus) String() string {
	return string(s)
}

func (s ReviewStatus) IsValid() bool {
	_, ok := reviewTransitions[s]
	return ok
}

func (s ReviewStatus) CanTransitionTo(to ReviewStatus) bool {
	nexts, ok := reviewTransitions[s]
	if !ok {
		return false
	}
	for _, n := range nexts {
		if n == to {
			return true
		}
	}
	return false
}

// Compilation 书稿, 由访谈会话的内容编纂而来
type Compilation struct {
	ID           int64
	SN           string
	SessionID    int64
	UID          int64
	Title        string
	Content      string
	ReviewStatus ReviewStatus
	// PDFConfirmedAt 用户确认电子版 PDF 的时间, 幂等: 只在第一次确认时写入
	PDFConfirmedAt int64
	Ctime          int64
	Utime          int64
}
