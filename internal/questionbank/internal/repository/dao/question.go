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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type QuestionDAO interface {
	Save(ctx context.Context, q Question) (int64, error)
	FindById(ctx context.Context, id int64) (Question, error)
	FindByRound(ctx context.Context, jobId int64, round int) ([]Question, error)
	Delete(ctx context.Context, id int64) error
}

type GORMQuestionDAO struct {
	db *egorm.Component
}

func NewGORMQuestionDAO(db *egorm.Component) QuestionDAO {
	return &GORMQuestionDAO{db: db}
}

func (g *GORMQuestionDAO) Save(ctx context.Context, q Question) (int64, error) {
	now := time.Now().UnixMilli()
	q.Ctime, q.Utime = now, now
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"job_id",
			"round_number",
			"content",
			"options",
			"correct_answer",
			"marks",
			"utime",
		}),
	}).Create(&q).Error
	return q.Id, err
}

func (g *GORMQuestionDAO) FindById(ctx context.Context, id int64) (Question, error) {
	var res Question
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) FindByRound(ctx context.Context, jobId int64, round int) ([]Question, error) {
	var res []Question
	err := g.db.WithContext(ctx).
		Where("job_id = ? AND round_number = ?", jobId, round).
		Order("id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMQuestionDAO) Delete(ctx context.Context, id int64) error {
	return g.db.WithContext(ctx).Where("id = ?", id).Delete(&Question{}).Error
}

type Question struct {
	Id            int64                     `gorm:"primaryKey,autoIncrement"`
	JobId         int64                     `gorm:"not null;index:idx_job_round,priority:1"`
	RoundNumber   int                       `gorm:"not null;index:idx_job_round,priority:2"`
	Content       string                    `gorm:"type:text;not null"`
	Options       sqlx.JsonColumn[[]string] `gorm:"type:json;comment:选项，填空题为空"`
	CorrectAnswer string                    `gorm:"type:varchar(1024);not null"`
	Marks         int                       `gorm:"not null;default:0"`
	Ctime         int64
	Utime         int64
}
