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
)

type ApplicationDAO interface {
	Create(ctx context.Context, app Application) (int64, error)
	FindById(ctx context.Context, id int64) (Application, error)
	FindByUid(ctx context.Context, uid int64) ([]Application, error)
	List(ctx context.Context, jobId int64, status string, offset, limit int) ([]Application, error)
	Count(ctx context.Context, jobId int64, status string) (int64, error)
	// UpdateState 按版本号更新状态相关的字段，版本不一致返回 ErrVersionConflict
	UpdateState(ctx context.Context, app Application, expectedVersion int64) error
	// Delete 释放预约并删除申请以及它名下的考试和评估
	Delete(ctx context.Context, id int64) error
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (g *GORMApplicationDAO) Create(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime, app.Utime = now, now
	app.Version = 1
	err := g.db.WithContext(ctx).Create(&app).Error
	if isDuplicate(err) {
		return 0, ErrDuplicate
	}
	return app.Id, err
}

func (g *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var app Application
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&app).Error
	return app, err
}

func (g *GORMApplicationDAO) FindByUid(ctx context.Context, uid int64) ([]Application, error) {
	var res []Application
	err := g.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id DESC").Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) List(ctx context.Context, jobId int64, status string, offset, limit int) ([]Application, error) {
	var res []Application
	err := g.filter(ctx, jobId, status).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) Count(ctx context.Context, jobId int64, status string) (int64, error) {
	var res int64
	err := g.filter(ctx, jobId, status).Count(&res).Error
	return res, err
}

func (g *GORMApplicationDAO) filter(ctx context.Context, jobId int64, status string) *gorm.DB {
	db := g.db.WithContext(ctx).Model(&Application{})
	if jobId > 0 {
		db = db.Where("job_id = ?", jobId)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}
	return db
}

func (g *GORMApplicationDAO) UpdateState(ctx context.Context, app Application, expectedVersion int64) error {
	res := g.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND version = ?", app.Id, expectedVersion).
		Updates(map[string]any{
			"job_id":         app.JobId,
			"slot_id":        app.SlotId,
			"current_round":  app.CurrentRound,
			"admin_approved": app.AdminApproved,
			"test_enabled":   app.TestEnabled,
			"status":         app.Status,
			"version":        gorm.Expr("`version` + 1"),
			"utime":          time.Now().UnixMilli(),
		})
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return ErrDuplicate
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (g *GORMApplicationDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app Application
		err := tx.Clauses(lockForUpdate).Where("id = ?", id).First(&app).Error
		if err != nil {
			return err
		}
		// 先释放预约
		err = tx.Model(&Application{}).Where("id = ?", id).
			Update("slot_id", nil).Error
		if err != nil {
			return err
		}
		var attemptIds []int64
		err = tx.Model(&TestAttempt{}).Where("application_id = ?", id).
			Pluck("id", &attemptIds).Error
		if err != nil {
			return err
		}
		if len(attemptIds) > 0 {
			if err = tx.Where("attempt_id IN ?", attemptIds).Delete(&Answer{}).Error; err != nil {
				return err
			}
			if err = tx.Where("attempt_id IN ?", attemptIds).Delete(&Violation{}).Error; err != nil {
				return err
			}
			if err = tx.Where("id IN ?", attemptIds).Delete(&TestAttempt{}).Error; err != nil {
				return err
			}
		}
		var evalIds []int64
		err = tx.Model(&Evaluation{}).Where("application_id = ?", id).
			Pluck("id", &evalIds).Error
		if err != nil {
			return err
		}
		if len(evalIds) > 0 {
			if err = tx.Where("evaluation_id IN ?", evalIds).Delete(&EvaluationScore{}).Error; err != nil {
				return err
			}
			if err = tx.Where("id IN ?", evalIds).Delete(&Evaluation{}).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&Application{}).Error
	})
}
