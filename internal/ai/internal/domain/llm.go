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

const BizDedication = "dedication"

type LLMRequest struct {
	Biz string
	Uid int64
	// Tid 请求ID
	Tid string
	// Input 用户的输入
	Input []string
	// Prompt 拼装后的完整提示词
	Prompt string
}

type LLMResponse struct {
	// Tokens 花费的token
	Tokens int64
	// Answer 大模型的回答
	Answer string
}

type RecordStatus uint8

func (s RecordStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	RecordStatusProcessing RecordStatus = 0
	RecordStatusSuccess    RecordStatus = 1
	RecordStatusFailed     RecordStatus = 2
)

// CallRecord 一次大模型调用的记录
type CallRecord struct {
	Id     int64
	Tid    string
	Uid    int64
	Biz    string
	Tokens int64
	Status RecordStatus
	Input  []string
	Answer string
	Ctime  int64
	Utime  int64
}
