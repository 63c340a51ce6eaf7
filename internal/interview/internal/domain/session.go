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

type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
)

func (s SessionStatus) String() string {
	return string(s)
}

// Session 访谈会话, 一个会话对应一位受访长者的一本书
type Session struct {
	ID               int64
	SN               string
	UID              int64
	SubjectName      string
	SubjectBirthYear int
	Status           SessionStatus
	// RoundCount 已完成的访谈轮次
	RoundCount int
	Ctime      int64
	Utime      int64
}
