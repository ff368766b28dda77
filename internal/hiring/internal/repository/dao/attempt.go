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

type AttemptDAO interface {
	// Start 锁住申请，确认版本没有变化并且这一轮没有未提交的考试，然后创建考试
	Start(ctx context.Context, at TestAttempt, expectedAppVersion int64) (int64, error)
	FindById(ctx context.Context, id int64) (TestAttempt, error)
	FindByApplication(ctx context.Context, aid int64) ([]TestAttempt, error)
	FindActive(ctx context.Context, aid int64, round int) (TestAttempt, error)
	// SaveAnswer 覆盖同一道题之前的答案
	SaveAnswer(ctx context.Context, ans Answer) error
	FindAnswers(ctx context.Context, attemptId int64) ([]Answer, error)
	// IncrViolation 返回这次考试累计的违规次数
	IncrViolation(ctx context.Context, v Violation) (int, error)
	FindViolations(ctx context.Context, attemptId int64) ([]Violation, error)
	// Finish 提交并保存判分结果，申请还停在这一轮时在同一个事务里标记为已考。
	// 返回标记之前的申请，申请没有变化时 Id 为 0。
	// 已经提交或者判分期间有新答案写入返回 ErrVersionConflict
	Finish(ctx context.Context, at TestAttempt, correctAnswerIds []int64) (Application, error)
	// ListExpired 未提交并且截止时间不晚于 deadline 的考试，按 id 升序
	ListExpired(ctx context.Context, deadline int64, minId int64, limit int) ([]TestAttempt, error)
}

type GORMAttemptDAO struct {
	db *egorm.Component
}

func NewGORMAttemptDAO(db *egorm.Component) AttemptDAO {
	return &GORMAttemptDAO{db: db}
}

func (g *GORMAttemptDAO) Start(ctx context.Context, at TestAttempt, expectedAppVersion int64) (int64, error) {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app Application
		err := tx.Clauses(lockForUpdate).Where("id = ?", at.ApplicationId).First(&app).Error
		if err != nil {
			return err
		}
		if app.Version != expectedAppVersion {
			return ErrVersionConflict
		}
		var cnt int64
		err = tx.Model(&TestAttempt{}).
			Where("application_id = ? AND round_number = ? AND is_submitted = ?", at.ApplicationId, at.RoundNumber, false).
			Count(&cnt).Error
		if err != nil {
			return err
		}
		if cnt > 0 {
			return ErrAttemptActive
		}
		now := time.Now().UnixMilli()
		at.Ctime, at.Utime = now, now
		return tx.Create(&at).Error
	})
	return at.Id, err
}

func (g *GORMAttemptDAO) FindById(ctx context.Context, id int64) (TestAttempt, error) {
	var res TestAttempt
	err := g.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (g *GORMAttemptDAO) FindByApplication(ctx context.Context, aid int64) ([]TestAttempt, error) {
	var res []TestAttempt
	err := g.db.WithContext(ctx).Where("application_id = ?", aid).
		Order("round_number ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (g *GORMAttemptDAO) FindActive(ctx context.Context, aid int64, round int) (TestAttempt, error) {
	var res TestAttempt
	err := g.db.WithContext(ctx).
		Where("application_id = ? AND round_number = ? AND is_submitted = ?", aid, round, false).
		First(&res).Error
	return res, err
}

func (g *GORMAttemptDAO) SaveAnswer(ctx context.Context, ans Answer) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var at TestAttempt
		err := tx.Clauses(lockForUpdate).Where("id = ?", ans.AttemptId).First(&at).Error
		if err != nil {
			return err
		}
		if at.IsSubmitted {
			return ErrAttemptSubmitted
		}
		now := time.Now().UnixMilli()
		ans.Ctime, ans.Utime = now, now
		err = tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "attempt_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"selected_answer", "utime"}),
		}).Create(&ans).Error
		if err != nil {
			return err
		}
		return tx.Model(&TestAttempt{}).Where("id = ?", at.Id).
			Updates(map[string]any{
				"answer_version": gorm.Expr("`answer_version` + 1"),
				"utime":          now,
			}).Error
	})
}

func (g *GORMAttemptDAO) FindAnswers(ctx context.Context, attemptId int64) ([]Answer, error) {
	var res []Answer
	err := g.db.WithContext(ctx).Where("attempt_id = ?", attemptId).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMAttemptDAO) IncrViolation(ctx context.Context, v Violation) (int, error) {
	var total int
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 不加锁，违规记录不能阻塞作答
		var at TestAttempt
		err := tx.Select("id", "is_submitted").Where("id = ?", v.AttemptId).First(&at).Error
		if err != nil {
			return err
		}
		if at.IsSubmitted {
			return ErrAttemptSubmitted
		}
		now := time.Now().UnixMilli()
		v.Cnt, v.Ctime, v.Utime = 1, now, now
		err = tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "attempt_id"}, {Name: "type"}},
			DoUpdates: clause.Assignments(map[string]any{
				"cnt":   gorm.Expr("`cnt` + 1"),
				"utime": now,
			}),
		}).Create(&v).Error
		if err != nil {
			return err
		}
		return tx.Model(&Violation{}).Select("COALESCE(SUM(cnt), 0)").
			Where("attempt_id = ?", v.AttemptId).
			Scan(&total).Error
	})
	return total, err
}

func (g *GORMAttemptDAO) FindViolations(ctx context.Context, attemptId int64) ([]Violation, error) {
	var res []Violation
	err := g.db.WithContext(ctx).Where("attempt_id = ?", attemptId).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (g *GORMAttemptDAO) Finish(ctx context.Context, at TestAttempt, correctAnswerIds []int64) (Application, error) {
	var before Application
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 和 Start 一样先锁申请
		var app Application
		err := tx.Clauses(lockForUpdate).Where("id = ?", at.ApplicationId).First(&app).Error
		if err != nil {
			return err
		}
		now := time.Now().UnixMilli()
		res := tx.Model(&TestAttempt{}).
			Where("id = ? AND is_submitted = ? AND answer_version = ?", at.Id, false, at.AnswerVersion).
			Updates(map[string]any{
				"ended_at":       at.EndedAt,
				"obtained_marks": at.ObtainedMarks,
				"is_passed":      at.IsPassed,
				"is_submitted":   true,
				"auto_submitted": at.AutoSubmitted,
				"utime":          now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}
		err = tx.Model(&Answer{}).Where("attempt_id = ?", at.Id).
			Updates(map[string]any{"is_correct": false, "utime": now}).Error
		if err != nil {
			return err
		}
		if len(correctAnswerIds) > 0 {
			err = tx.Model(&Answer{}).
				Where("attempt_id = ? AND id IN ?", at.Id, correctAnswerIds).
				Updates(map[string]any{"is_correct": true, "utime": now}).Error
			if err != nil {
				return err
			}
		}
		if app.JobId != at.JobId || app.CurrentRound != at.RoundNumber || isClosed(app.Status) {
			return nil
		}
		err = tx.Model(&Application{}).Where("id = ?", app.Id).
			Updates(map[string]any{
				"test_enabled": false,
				"status":       statusTestTaken,
				"version":      gorm.Expr("version + 1"),
				"utime":        now,
			}).Error
		if err != nil {
			return err
		}
		before = app
		return nil
	})
	if err != nil {
		return Application{}, err
	}
	return before, nil
}

func (g *GORMAttemptDAO) ListExpired(ctx context.Context, deadline int64, minId int64, limit int) ([]TestAttempt, error) {
	var res []TestAttempt
	err := g.db.WithContext(ctx).
		Where("is_submitted = ? AND deadline <= ? AND id > ?", false, deadline, minId).
		Order("id ASC").
		Limit(limit).
		Find(&res).Error
	return res, err
}
