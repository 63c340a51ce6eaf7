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
	"gorm.io/gorm/clause"
)

var (
	// ErrRecordNotFound 通用的数据没找到
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrActiveOrderExists 同一会话只允许存在一个活跃订单
	ErrActiveOrderExists = errors.New("会话已存在活跃订单")
	// ErrStatusConflict 条件更新没有命中行, 说明状态已被并发修改
	ErrStatusConflict = errors.New("订单状态已被并发修改")
)

type OrderDAO interface {
	Create(ctx context.Context, o Order) (int64, error)
	FindByID(ctx context.Context, id int64) (Order, error)
	FindBySN(ctx context.Context, sn string) (Order, error)
	FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error)
	FindLatestBySessionID(ctx context.Context, sessionID int64) (Order, error)
	// UpdateStatus 以 from 状态作为条件做读改写, 防止并发流转互相覆盖
	UpdateStatus(ctx context.Context, id int64, from string, fields map[string]any) error
	List(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error)
	Count(ctx context.Context, buyerID int64) (int64, error)
	ListAll(ctx context.Context, offset, limit int) ([]Order, error)
	CountAll(ctx context.Context) (int64, error)
	ListPendingBefore(ctx context.Context, offset, limit int, utime int64) ([]Order, int64, error)
	InsertStatusLog(ctx context.Context, l OrderStatusLog) (int64, error)
	ListStatusLogs(ctx context.Context, orderID int64) ([]OrderStatusLog, error)
}

func NewOrderGORMDAO(db *egorm.Component) OrderDAO {
	return &OrderGORMDAO{db: db}
}

type OrderGORMDAO struct {
	db *egorm.Component
}

func (g *OrderGORMDAO) Create(ctx context.Context, o Order) (int64, error) {
	now := time.Now().UnixMilli()
	o.Ctime, o.Utime = now, now
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var active Order
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("session_id = ? AND is_active = ?", o.SessionId, true).
			First(&active).Error
		if err == nil {
			return ErrActiveOrderExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&o).Error
	})
	return o.Id, err
}

func (g *OrderGORMDAO) FindByID(ctx context.Context, id int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&o).Error
	return o, err
}

func (g *OrderGORMDAO) FindBySN(ctx context.Context, sn string) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("sn = ?", sn).First(&o).Error
	return o, err
}

func (g *OrderGORMDAO) FindBySNAndBuyerID(ctx context.Context, sn string, buyerID int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("sn = ? AND buyer_id = ?", sn, buyerID).First(&o).Error
	return o, err
}

func (g *OrderGORMDAO) FindLatestBySessionID(ctx context.Context, sessionID int64) (Order, error) {
	var o Order
	err := g.db.WithContext(ctx).Where("session_id = ?", sessionID).
		Order("id DESC").First(&o).Error
	return o, err
}

func (g *OrderGORMDAO) UpdateStatus(ctx context.Context, id int64, from string, fields map[string]any) error {
	fields["utime"] = time.Now().UnixMilli()
	res := g.db.WithContext(ctx).Model(&Order{}).
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

func (g *OrderGORMDAO) List(ctx context.Context, offset, limit int, buyerID int64) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).Where("buyer_id = ?", buyerID).
		Order("id DESC").Offset(offset).Limit(limit).Find(&os).Error
	return os, err
}

func (g *OrderGORMDAO) Count(ctx context.Context, buyerID int64) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Where("buyer_id = ?", buyerID).Count(&count).Error
	return count, err
}

func (g *OrderGORMDAO) ListAll(ctx context.Context, offset, limit int) ([]Order, error) {
	var os []Order
	err := g.db.WithContext(ctx).Order("id DESC").Offset(offset).Limit(limit).Find(&os).Error
	return os, err
}

func (g *OrderGORMDAO) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := g.db.WithContext(ctx).Model(&Order{}).Count(&count).Error
	return count, err
}

func (g *OrderGORMDAO) ListPendingBefore(ctx context.Context, offset, limit int, utime int64) ([]Order, int64, error) {
	var (
		os    []Order
		total int64
	)
	query := g.db.WithContext(ctx).Model(&Order{}).
		Where("status = ? AND utime < ?", "pending_payment", utime)
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	err = query.Order("id ASC").Offset(offset).Limit(limit).Find(&os).Error
	return os, total, err
}

func (g *OrderGORMDAO) InsertStatusLog(ctx context.Context, l OrderStatusLog) (int64, error) {
	l.Ctime = time.Now().UnixMilli()
	err := g.db.WithContext(ctx).Create(&l).Error
	return l.Id, err
}

func (g *OrderGORMDAO) ListStatusLogs(ctx context.Context, orderID int64) ([]OrderStatusLog, error) {
	var ls []OrderStatusLog
	err := g.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&ls).Error
	return ls, err
}

type Order struct {
	Id        int64  `gorm:"primaryKey;autoIncrement;comment:订单自增ID"`
	SN        string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_order_sn;comment:订单序列号"`
	BuyerId   int64  `gorm:"not null;index:idx_buyer_id;comment:购买者ID"`
	SessionId int64  `gorm:"not null;index:idx_session_id;comment:访谈会话ID"`
	Package   string `gorm:"type:varchar(32);not null;comment:套餐 digital/hardcover/premium"`
	Amount    int64  `gorm:"not null;comment:订单金额;单位为分, 999表示9.99元"`
	Status    string `gorm:"type:varchar(32);not null;default:'pending_payment';index:idx_status;comment:订单状态"`
	IsActive  bool   `gorm:"not null;default:true;comment:是否为会话的活跃订单"`

	PaidAt      int64 `gorm:"comment:支付时间"`
	ShippedAt   int64 `gorm:"comment:发货时间"`
	DeliveredAt int64 `gorm:"comment:签收时间"`
	CompletedAt int64 `gorm:"comment:完成时间"`
	CancelledAt int64 `gorm:"comment:取消时间"`
	RefundedAt  int64 `gorm:"comment:退款时间"`

	ShippingCarrier string `gorm:"type:varchar(64);comment:承运商"`
	TrackingNumber  string `gorm:"type:varchar(128);comment:运单号"`
	CancelReason    string `gorm:"type:varchar(512);comment:取消原因"`
	RefundAmount    int64  `gorm:"comment:退款金额;单位为分"`
	RefundReason    string `gorm:"type:varchar(512);comment:退款原因"`
	AdminNote       string `gorm:"type:varchar(512);comment:运营备注"`

	Ctime int64
	Utime int64
}

// OrderStatusLog 状态流转审计日志, 只追加
type OrderStatusLog struct {
	Id         int64  `gorm:"primaryKey;autoIncrement"`
	OrderId    int64  `gorm:"not null;index:idx_order_id;comment:订单自增ID"`
	FromStatus string `gorm:"type:varchar(32);not null;comment:流转前状态"`
	ToStatus   string `gorm:"type:varchar(32);not null;comment:流转后状态"`
	ActorId    int64  `gorm:"not null;comment:操作者ID"`
	ActorRole  string `gorm:"type:varchar(32);comment:操作者角色"`
	Reason     string `gorm:"type:varchar(512);comment:流转原因"`
	Metadata   string `gorm:"type:text;comment:流转附带字段"`
	Ctime      int64
}
