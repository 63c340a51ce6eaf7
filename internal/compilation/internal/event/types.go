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

package event

const ArchiveRequestedEventName = "archive_requested_events"

// ArchiveRequestedEvent 用户确认 PDF 后触发归档制作, 由进程外的 worker 消费
type ArchiveRequestedEvent struct {
	CompilationSN string `json:"compilationSN"`
	UID           int64  `json:"uid"`
}
