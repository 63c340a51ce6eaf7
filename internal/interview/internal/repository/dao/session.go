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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type SessionDAO interface {
	Create(ctx context.Context, s InterviewSession) (int64, error)
	FindByID(ctx context.Context, id int64) (InterviewSession, error)
	FindBySN(ctx context.Context, sn string) (InterviewSession, error)
	Update(ctx context.Context, s InterviewSession) error
	List(ctx context.Context, offset, limit int, uid int64) ([]InterviewSession, error)
	Count(ctx context.Context, uid int64) (int64, error)
}

func NewSessionGORMDAO(db *egorm.Component) SessionDAO {
	return &SessionGORMDAO{db: db}
}

type SessionGORMDAO struct {
	db *egorm.Component
}

func (g *SessionGORMDAO) Create(ctx context.Context, s InterviewSession) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime, s.Utime = now, now
	err := g.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

func (g *SessionGORMDAO) FindByID(ctx context.Context, id int64) (InterviewSession, error) {
	var s InterviewSession
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	return s, err
}

func (g *SessionGORMDAO) FindBySN(ctx context.Context, sn string) (InterviewSession, error) {
	var s InterviewSession
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&s).Error
	return s, err
}

func (g *SessionGORMDAO) Update(ctx context.Context, s InterviewSession) error {
	s.Utime = time.Now().UnixMilli()
	return g.db.WithContext(ctx).Model(&InterviewSession{}).
		Where("id = ?", s.Id).Updates(&s).Error
}

func (g *SessionGORMDAO) List(ctx context.Context, offset, limit int, uid int64) ([]InterviewSession, error) {
	var ss []InterviewSession
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").Offset(offset).Limit(limit).Find(&ss).Error
	return ss, err
}

func (g *SessionGORMDAO) Count(ctx context.Context, uid int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&InterviewSession{}).Where("uid = ?", uid).Count(&count).Error
	return count, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&InterviewSession{})
}

type InterviewSession struct {
	Id               int64  `gorm:"primaryKey;autoIncrement;comment:会话自增ID"`
	SN               string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_session_sn;comment:会话序列号"`
	Uid              int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	SubjectName      string `gorm:"type:varchar(128);not null;comment:受访者姓名"`
	SubjectBirthYear int    `gorm:"comment:受访者出生年份"`
	Status           string `gorm:"type:varchar(32);not null;default:'in_progress';comment:会话状态 in_progress/completed"`
	RoundCount       int    `gorm:"not null;default:0;comment:已完成访谈轮次"`
	Ctime            int64
	Utime            int64
}
