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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type JobDAO interface {
	Save(ctx context.Context, job Job, rounds []JobRound) (int64, error)
	Find(ctx context.Context, id int64) (Job, []JobRound, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]Job, error)
	Count(ctx context.Context, activeOnly bool) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (g *GORMJobDAO) Save(ctx context.Context, job Job, rounds []JobRound) (int64, error) {
	now := time.Now().UnixMilli()
	job.Utime = now
	if job.Id == 0 {
		job.Ctime = now
	}
	for i := range rounds {
		rounds[i].Ctime, rounds[i].Utime = now, now
	}
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title",
				"description",
				"total_rounds",
				"active",
				"utime",
			}),
		}).Create(&job).Error; err != nil {
			return err
		}
		// 不在本次保存里的轮次一律删除
		numbers := slice.Map(rounds, func(idx int, src JobRound) int {
			return src.RoundNumber
		})
		del := tx.Where("jid = ?", job.Id)
		if len(numbers) > 0 {
			del = del.Where("round_number NOT IN ?", numbers)
		}
		if err := del.Delete(&JobRound{}).Error; err != nil {
			return err
		}
		if len(rounds) == 0 {
			return nil
		}
		for i := range rounds {
			rounds[i].Jid = job.Id
		}
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "jid"}, {Name: "round_number"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name",
				"mode",
				"instructions",
				"duration_minutes",
				"passing_marks",
				"utime",
			}),
		}).Create(&rounds).Error
	})
	return job.Id, err
}

func (g *GORMJobDAO) Find(ctx context.Context, id int64) (Job, []JobRound, error) {
	var (
		job    Job
		rounds []JobRound
	)
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&job).Error; err != nil {
			return err
		}
		return tx.Where("jid = ?", id).Order("round_number ASC").Find(&rounds).Error
	})
	return job, rounds, err
}

func (g *GORMJobDAO) List(ctx context.Context, activeOnly bool, offset, limit int) ([]Job, error) {
	var res []Job
	err := g.where(ctx, activeOnly).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMJobDAO) Count(ctx context.Context, activeOnly bool) (int64, error) {
	var res int64
	err := g.where(ctx, activeOnly).Model(&Job{}).Count(&res).Error
	return res, err
}

func (g *GORMJobDAO) where(ctx context.Context, activeOnly bool) *gorm.DB {
	db := g.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("active = ?", true)
	}
	return db
}

// Delete 只下线职位，保留职位和轮次，已有的申请仍然能查到轮次配置
func (g *GORMJobDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Model(&Job{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"active": false,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

type Job struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	TotalRounds int    `gorm:"not null;default:1"`
	Active      bool   `gorm:"not null;default:true;index:idx_active"`
	Ctime       int64
	Utime       int64
}

type JobRound struct {
	Id              int64  `gorm:"primaryKey,autoIncrement"`
	Jid             int64  `gorm:"not null;uniqueIndex:uniq_jid_round,priority:1;comment:职位ID"`
	RoundNumber     int    `gorm:"not null;uniqueIndex:uniq_jid_round,priority:2"`
	Name            string `gorm:"type:varchar(128)"`
	Mode            string `gorm:"type:varchar(32);not null"`
	Instructions    string `gorm:"type:text"`
	DurationMinutes int
	PassingMarks    int
	Ctime           int64
	Utime           int64
}
