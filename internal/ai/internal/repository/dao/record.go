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

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CallRecordDAO interface {
	Save(ctx context.Context, r CallRecord) (int64, error)
}

func NewGORMCallRecordDAO(db *egorm.Component) CallRecordDAO {
	return &GORMCallRecordDAO{db: db}
}

type GORMCallRecordDAO struct {
	db *egorm.Component
}

func (g *GORMCallRecordDAO) Save(ctx context.Context, r CallRecord) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := g.db.WithContext(ctx).Model(&CallRecord{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tid"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "tokens", "answer", "utime"}),
		}).Create(&r).Error
	return r.Id, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&CallRecord{})
}

type CallRecord struct {
	Id     int64                     `gorm:"primaryKey;autoIncrement;comment:调用记录自增ID"`
	Tid    string                    `gorm:"type:varchar(256);not null;uniqueIndex:uniq_tid;comment:一次请求的Tid只能有一次"`
	Uid    int64                     `gorm:"not null;index:idx_uid;comment:用户ID"`
	Biz    string                    `gorm:"type:varchar(256);not null;comment:业务类型名"`
	Tokens int64                     `gorm:"type:int;default:0;comment:消耗token数"`
	Status uint8                     `gorm:"type:tinyint unsigned;not null;default:0;comment:调用状态 0=进行中, 1=成功, 2=失败"`
	Input  sqlx.JsonColumn[[]string] `gorm:"type:text;comment:调用请求的参数"`
	Answer sql.NullString            `gorm:"type:text;comment:大模型的回答"`
	Ctime  int64
	Utime  int64
}

func (CallRecord) TableName() string {
	return "ai_call_records"
}
