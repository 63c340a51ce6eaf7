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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrReviewStatusConflict 条件更新未命中, 说明审校状态已被并发修改
	ErrReviewStatusConflict = errors.New("书稿审校状态已变更")
)

type CompilationDAO interface {
	Create(ctx context.Context, c Compilation) (int64, error)
	FindByID(ctx context.Context, id int64) (Compilation, error)
	FindBySN(ctx context.Context, sn string) (Compilation, error)
	FindBySessionID(ctx context.Context, sessionID int64) (Compilation, error)
	UpdateDraft(ctx context.Context, c Compilation) error
	// UpdateReviewStatus 带前置状态的条件更新, 未命中返回 ErrReviewStatusConflict
	UpdateReviewStatus(ctx context.Context, id int64, from string, fields map[string]any) error
	List(ctx context.Context, offset, limit int) ([]Compilation, error)
	Count(ctx context.Context) (int64, error)
}

func NewCompilationGORMDAO(db *egorm.Component) CompilationDAO {
	return &CompilationGORMDAO{db: db}
}

type CompilationGORMDAO struct {
	db *egorm.Component
}

func (g *CompilationGORMDAO) Create(ctx context.Context, c Compilation) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime, c.Utime = now, now
	err := g.db.WithContext(ctx).Create(&c).Error
	return c.Id, err
}

func (g *CompilationGORMDAO) FindByID(ctx context.Context, id int64) (Compilation, error) {
	var c Compilation
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	return c, err
}

func (g *CompilationGORMDAO) FindBySN(ctx context.Context, sn string) (Compilation, error) {
	var c Compilation
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&c).Error
	return c, err
}

func (g *CompilationGORMDAO) FindBySessionID(ctx context.Context, sessionID int64) (Compilation, error) {
	var c Compilation
	err := g.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&c).Error
	return c, err
}

func (g *CompilationGORMDAO) UpdateDraft(ctx context.Context, c Compilation) error {
	return g.db.WithContext(ctx).Model(&Compilation{}).
		Where("id = ?", c.Id).
		Updates(map[string]any{
			"title":   c.Title,
			"content": c.Content,
			"utime":   time.Now().UnixMilli(),
		}).Error
}

func (g *CompilationGORMDAO) UpdateReviewStatus(ctx context.Context, id int64, from string, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Compilation{}).
		Where("id = ? AND review_status = ?", id, from).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrReviewStatusConflict
	}
	return nil
}

func (g *CompilationGORMDAO) List(ctx context.Context, offset, limit int) ([]Compilation, error) {
	var cs []Compilation
	err := g.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&cs).Error
	return cs, err
}

func (g *CompilationGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Compilation{}).Count(&count).Error
	return count, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&Compilation{})
}

type Compilation struct {
	Id             int64  `gorm:"primaryKey;autoIncrement;comment:书稿自增ID"`
	SN             string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_compilation_sn;comment:书稿序列号"`
	SessionId      int64  `gorm:"not null;uniqueIndex:uniq_session_id;comment:访谈会话ID"`
	Uid            int64  `gorm:"not null;index:idx_uid;comment:用户ID"`
	Title          string `gorm:"type:varchar(255);not null;comment:书名"`
	Content        string `gorm:"type:longtext;comment:书稿正文"`
	ReviewStatus   string `gorm:"type:varchar(32);not null;default:'draft';index:idx_review_status;comment:审校状态"`
	PDFConfirmedAt int64  `gorm:"comment:PDF确认时间, 只写一次"`
	Ctime          int64
	Utime          int64
}
