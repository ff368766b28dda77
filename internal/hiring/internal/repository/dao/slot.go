// Copyright 2023 ecodeclub
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
	"gorm.io/gorm/clause"
)

var lockForUpdate = clause.Locking{Strength: "UPDATE"}

type SlotDAO interface {
	// Save 更新时会锁住时间段，容量不能低于已预约人数
	Save(ctx context.Context, slot Slot) (int64, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	FindById(ctx context.Context, id int64) (Slot, error)
	List(ctx context.Context, offset, limit int) ([]Slot, error)
	Count(ctx context.Context) (int64, error)
	ListEnabledSince(ctx context.Context, date string) ([]Slot, error)
	CountBookings(ctx context.Context, slotIds []int64) ([]SlotBooking, error)
	// Reserve 在锁住时间段的事务里统计已预约人数并占座。
	// requireEmpty 为 true 时，申请当前必须没有预约。
	Reserve(ctx context.Context, slotId int64, app Application, expectedVersion int64, requireEmpty bool) error
	// Release 释放申请的预约，没有预约时什么也不做
	Release(ctx context.Context, aid int64) error
}

type GORMSlotDAO struct {
	db *egorm.Component
}

func NewGORMSlotDAO(db *egorm.Component) SlotDAO {
	return &GORMSlotDAO{db: db}
}

func (g *GORMSlotDAO) Save(ctx context.Context, slot Slot) (int64, error) {
	now := time.Now().UnixMilli()
	slot.Utime = now
	if slot.Id == 0 {
		slot.Ctime = now
		err := g.db.WithContext(ctx).Create(&slot).Error
		return slot.Id, err
	}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old Slot
		err := tx.Clauses(lockForUpdate).Where("id = ?", slot.Id).First(&old).Error
		if err != nil {
			return err
		}
		cnt, err := g.bookings(tx, slot.Id)
		if err != nil {
			return err
		}
		if int64(slot.MaxCapacity) < cnt {
			return ErrCapacityBelowBookings
		}
		return tx.Model(&Slot{}).Where("id = ?", slot.Id).
			Updates(map[string]any{
				"date":         slot.Date,
				"start_time":   slot.StartTime,
				"end_time":     slot.EndTime,
				"max_capacity": slot.MaxCapacity,
				"enabled":      slot.Enabled,
				"utime":        now,
			}).Error
	})
	return slot.Id, err
}

func (g *GORMSlotDAO) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	res := g.db.WithContext(ctx).Model(&Slot{}).Where("id = ?", id).
		Updates(map[string]any{
			"enabled": enabled,
			"utime":   time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *GORMSlotDAO) FindById(ctx context.Context, id int64) (Slot, error) {
	var res Slot
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMSlotDAO) List(ctx context.Context, offset, limit int) ([]Slot, error) {
	var res []Slot
	err := g.db.WithContext(ctx).
		Order("date DESC, start_time ASC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMSlotDAO) Count(ctx context.Context) (int64, error) {
	var res int64
	err := g.db.WithContext(ctx).Model(&Slot{}).Count(&res).Error
	return res, err
}

func (g *GORMSlotDAO) ListEnabledSince(ctx context.Context, date string) ([]Slot, error) {
	var res []Slot
	err := g.db.WithContext(ctx).
		Where("enabled = ? AND date >= ?", true, date).
		Order("date ASC, start_time ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMSlotDAO) CountBookings(ctx context.Context, slotIds []int64) ([]SlotBooking, error) {
	var res []SlotBooking
	if len(slotIds) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Model(&Application{}).
		Select("slot_id, COUNT(*) AS cnt").
		Where("slot_id IN ?", slotIds).
		Group("slot_id").
		Scan(&res).Error
	return res, err
}

func (g *GORMSlotDAO) Reserve(ctx context.Context, slotId int64, app Application, expectedVersion int64, requireEmpty bool) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 同一个时间段的预约在这把行锁上串行
		var slot Slot
		err := tx.Clauses(lockForUpdate).Where("id = ?", slotId).First(&slot).Error
		if err != nil {
			return err
		}
		if !slot.Enabled {
			return ErrSlotDisabled
		}
		cnt, err := g.bookings(tx, slotId)
		if err != nil {
			return err
		}
		if cnt >= int64(slot.MaxCapacity) {
			return ErrSlotFull
		}
		query := tx.Model(&Application{}).
			Where("id = ? AND version = ?", app.Id, expectedVersion)
		if requireEmpty {
			query = query.Where("slot_id IS NULL")
		}
		res := query.Updates(map[string]any{
			"slot_id": slotId,
			"status":  app.Status,
			"version": gorm.Expr("`version` + 1"),
			"utime":   time.Now().UnixMilli(),
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return g.reserveConflict(tx, app.Id, expectedVersion)
		}
		return nil
	})
}

// reserveConflict 区分已经预约和版本冲突
func (g *GORMSlotDAO) reserveConflict(tx *gorm.DB, aid, expectedVersion int64) error {
	var cur Application
	err := tx.Where("id = ?", aid).First(&cur).Error
	if err != nil {
		return err
	}
	if cur.Version == expectedVersion && cur.SlotId.Valid {
		return ErrSlotTaken
	}
	return ErrVersionConflict
}

// bookings 必须在持有时间段行锁之后调用
func (g *GORMSlotDAO) bookings(tx *gorm.DB, slotId int64) (int64, error) {
	var cnt int64
	err := tx.Model(&Application{}).Where("slot_id = ?", slotId).Count(&cnt).Error
	return cnt, err
}

func (g *GORMSlotDAO) Release(ctx context.Context, aid int64) error {
	return g.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND slot_id IS NOT NULL", aid).
		Updates(map[string]any{
			"slot_id": nil,
			"version": gorm.Expr("`version` + 1"),
			"utime":   time.Now().UnixMilli(),
		}).Error
}
