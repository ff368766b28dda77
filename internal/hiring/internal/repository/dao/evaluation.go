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

type EvaluationDAO interface {
	SaveParameter(ctx context.Context, p EvaluationParameter) (int64, error)
	ListParameters(ctx context.Context, activeOnly bool) ([]EvaluationParameter, error)
	FindParametersByIds(ctx context.Context, ids []int64) ([]EvaluationParameter, error)
	// Create 评估和评分在同一个事务里写入
	Create(ctx context.Context, e Evaluation, scores []EvaluationScore) (int64, error)
	FindByApplication(ctx context.Context, aid int64, visibleOnly bool) ([]Evaluation, error)
	FindScores(ctx context.Context, evalIds []int64) ([]EvaluationScore, error)
}

type GORMEvaluationDAO struct {
	db *egorm.Component
}

func NewGORMEvaluationDAO(db *egorm.Component) EvaluationDAO {
	return &GORMEvaluationDAO{db: db}
}

func (g *GORMEvaluationDAO) SaveParameter(ctx context.Context, p EvaluationParameter) (int64, error) {
	now := time.Now().UnixMilli()
	p.Utime = now
	var err error
	if p.Id == 0 {
		p.Ctime = now
		err = g.db.WithContext(ctx).Create(&p).Error
	} else {
		res := g.db.WithContext(ctx).Model(&EvaluationParameter{}).
			Where("id = ?", p.Id).
			Updates(map[string]any{
				"name":        p.Name,
				"description": p.Description,
				"max_score":   p.MaxScore,
				"active":      p.Active,
				"utime":       now,
			})
		err = res.Error
		if err == nil && res.RowsAffected == 0 {
			err = gorm.ErrRecordNotFound
		}
	}
	if isDuplicate(err) {
		return 0, ErrDuplicate
	}
	return p.Id, err
}

func (g *GORMEvaluationDAO) ListParameters(ctx context.Context, activeOnly bool) ([]EvaluationParameter, error) {
	var res []EvaluationParameter
	db := g.db.WithContext(ctx)
	if activeOnly {
		db = db.Where("active = ?", true)
	}
	err := db.Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMEvaluationDAO) FindParametersByIds(ctx context.Context, ids []int64) ([]EvaluationParameter, error) {
	var res []EvaluationParameter
	if len(ids) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

func (g *GORMEvaluationDAO) Create(ctx context.Context, e Evaluation, scores []EvaluationScore) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UnixMilli()
		e.Ctime, e.Utime = now, now
		if err := tx.Create(&e).Error; err != nil {
			return err
		}
		if len(scores) == 0 {
			return nil
		}
		for i := range scores {
			scores[i].EvaluationId = e.Id
			scores[i].Ctime, scores[i].Utime = now, now
		}
		err := tx.Create(&scores).Error
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	})
	return e.Id, err
}

func (g *GORMEvaluationDAO) FindByApplication(ctx context.Context, aid int64, visibleOnly bool) ([]Evaluation, error) {
	var res []Evaluation
	db := g.db.WithContext(ctx).Where("application_id = ?", aid)
	if visibleOnly {
		db = db.Where("visible = ?", true)
	}
	err := db.Order("round_number ASC, id ASC").Find(&res).Error
	return res, err
}

func (g *GORMEvaluationDAO) FindScores(ctx context.Context, evalIds []int64) ([]EvaluationScore, error) {
	var res []EvaluationScore
	if len(evalIds) == 0 {
		return res, nil
	}
	err := g.db.WithContext(ctx).Where("evaluation_id IN ?", evalIds).
		Order("id ASC").Find(&res).Error
	return res, err
}
