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
	// ErrStatusConflict 条件更新未命中, 说明状态已被并发修改
	ErrStatusConflict = errors.New("印刷单状态已变更")
)

type PrintOrderDAO interface {
	Create(ctx context.Context, po PrintOrder) (int64, error)
	FindByID(ctx context.Context, id int64) (PrintOrder, error)
	FindBySN(ctx context.Context, sn string) (PrintOrder, error)
	// UpdateStatus 带前置状态的条件更新, 未命中返回 ErrStatusConflict
	UpdateStatus(ctx context.Context, id int64, from string, fields map[string]any) error
	List(ctx context.Context, offset, limit int) ([]PrintOrder, error)
	Count(ctx context.Context) (int64, error)
	InsertStatusLog(ctx context.Context, l PrintOrderStatusLog) error
	ListStatusLogs(ctx context.Context, printOrderID int64) ([]PrintOrderStatusLog, error)
}

func NewPrintOrderGORMDAO(db *egorm.Component) PrintOrderDAO {
	return &PrintOrderGORMDAO{db: db}
}

type PrintOrderGORMDAO struct {
	db *egorm.Component
}

func (g *PrintOrderGORMDAO) Create(ctx context.Context, po PrintOrder) (int64, error) {
	now := time.Now().UnixMilli()
	po.Ctime, po.Utime = now, now
	err := g.db.WithContext(ctx).Create(&po).Error
	return po.Id, err
}

func (g *PrintOrderGORMDAO) FindByID(ctx context.Context, id int64) (PrintOrder, error) {
	var po PrintOrder
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&po).Error
	return po, err
}

func (g *PrintOrderGORMDAO) FindBySN(ctx context.Context, sn string) (PrintOrder, error) {
	var po PrintOrder
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&po).Error
	return po, err
}

func (g *PrintOrderGORMDAO) UpdateStatus(ctx context.Context, id int64, from string, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&PrintOrder{}).
		Where("id = ? AND status = ?", id, from).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (g *PrintOrderGORMDAO) List(ctx context.Context, offset, limit int) ([]PrintOrder, error) {
	var pos []PrintOrder
	err := g.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&pos).Error
	return pos, err
}

func (g *PrintOrderGORMDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&PrintOrder{}).Count(&count).Error
	return count, err
}

func (g *PrintOrderGORMDAO) InsertStatusLog(ctx context.Context, l PrintOrderStatusLog) error {
	l.Ctime = time.Now().UnixMilli()
	return g.db.WithContext(ctx).Create(&l).Error
}

func (g *PrintOrderGORMDAO) ListStatusLogs(ctx context.Context, printOrderID int64) ([]PrintOrderStatusLog, error) {
	var ls []PrintOrderStatusLog
	err := g.db.WithContext(ctx).
		Where("print_order_id = ?", printOrderID).
		Order("id ASC").Find(&ls).Error
	return ls, err
}

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&PrintOrder{}, &PrintOrderStatusLog{})
}

type PrintOrder struct {
	Id            int64  `gorm:"primaryKey;autoIncrement;comment:印刷单自增ID"`
	SN            string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_print_order_sn;comment:印刷单序列号"`
	CompilationId int64  `gorm:"not null;index:idx_compilation_id;comment:书稿ID"`
	Status        string `gorm:"type:varchar(32);not null;default:'pending';index:idx_status;comment:印刷单状态"`

	PrintingAt      int64 `gorm:"comment:开始印刷时间"`
	ShippedAt       int64 `gorm:"comment:发货时间"`
	DeliveredAt     int64 `gorm:"comment:送达时间"`
	ClaimOpenedAt   int64 `gorm:"comment:理赔开启时间"`
	ClaimResolvedAt int64 `gorm:"comment:理赔关闭时间"`

	TrackingCarrier string `gorm:"type:varchar(64);comment:承运商, 可空"`
	TrackingNumber  string `gorm:"type:varchar(128);comment:运单号"`
	ClaimReason     string `gorm:"type:varchar(512);comment:理赔原因"`
	ClaimResolution string `gorm:"type:varchar(512);comment:理赔处理结论"`
	ProcessedBy     int64  `gorm:"comment:理赔处理人的用户ID"`

	Ctime int64
	Utime int64
}

// PrintOrderStatusLog 只追加的状态流转日志
type PrintOrderStatusLog struct {
	Id           int64  `gorm:"primaryKey;autoIncrement"`
	PrintOrderId int64  `gorm:"not null;index:idx_print_order_id;comment:印刷单ID"`
	FromStatus   string `gorm:"type:varchar(32);not null;comment:流转前状态"`
	ToStatus     string `gorm:"type:varchar(32);not null;comment:流转后状态"`
	ActorId      int64  `gorm:"comment:操作者ID, 系统操作为0"`
	ActorRole    string `gorm:"type:varchar(32);comment:操作者角色"`
	Reason       string `gorm:"type:varchar(512);comment:流转原因"`
	Metadata     string `gorm:"type:varchar(2048);comment:流转携带字段的JSON快照"`
	Ctime        int64
}
