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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/repository/cache"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/repository/dao"
)

//go:generate mockgen -source=./question.go -destination=./mocks/question.mock.go -package=repomocks -typed=true QuestionRepository
type QuestionRepository interface {
	Save(ctx context.Context, q domain.Question) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Question, error)
	FindByRound(ctx context.Context, jobID int64, round int) ([]domain.Question, error)
	Delete(ctx context.Context, q domain.Question) error
}

type CachedQuestionRepository struct {
	dao    dao.QuestionDAO
	cache  cache.QuestionCache
	logger *elog.Component
}

func NewCachedQuestionRepository(d dao.QuestionDAO, c cache.QuestionCache) QuestionRepository {
	return &CachedQuestionRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("questionbank.repository")),
	}
}

func (repo *CachedQuestionRepository) Save(ctx context.Context, q domain.Question) (int64, error) {
	if q.ID > 0 {
		// 题目可能换了轮次，旧轮次的缓存也要删
		old, err := repo.dao.FindById(ctx, q.ID)
		if err != nil {
			return 0, err
		}
		repo.evict(ctx, old.JobId, old.RoundNumber)
	}
	id, err := repo.dao.Save(ctx, dao.Question{
		Id:          q.ID,
		JobId:       q.JobID,
		RoundNumber: q.RoundNumber,
		Content:     q.Content,
		Options: sqlx.JsonColumn[[]string]{
			Valid: len(q.Options) > 0,
			Val:   q.Options,
		},
		CorrectAnswer: q.CorrectAnswer,
		Marks:         q.Marks,
	})
	if err != nil {
		return 0, err
	}
	repo.evict(ctx, q.JobID, q.RoundNumber)
	return id, nil
}

func (repo *CachedQuestionRepository) FindById(ctx context.Context, id int64) (domain.Question, error) {
	q, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(q), err
}

func (repo *CachedQuestionRepository) FindByRound(ctx context.Context, jobID int64, round int) ([]domain.Question, error) {
	qs, err := repo.cache.GetRound(ctx, jobID, round)
	if err == nil {
		return qs, nil
	}
	entities, err := repo.dao.FindByRound(ctx, jobID, round)
	if err != nil {
		return nil, err
	}
	qs = slice.Map(entities, func(idx int, src dao.Question) domain.Question {
		return repo.toDomain(src)
	})
	if er := repo.cache.SetRound(ctx, jobID, round, qs); er != nil {
		repo.logger.Error("缓存题目失败", elog.FieldErr(er),
			elog.Int64("jid", jobID), elog.Int("round", round))
	}
	return qs, nil
}

func (repo *CachedQuestionRepository) Delete(ctx context.Context, q domain.Question) error {
	if err := repo.dao.Delete(ctx, q.ID); err != nil {
		return err
	}
	repo.evict(ctx, q.JobID, q.RoundNumber)
	return nil
}

func (repo *CachedQuestionRepository) evict(ctx context.Context, jobID int64, round int) {
	if err := repo.cache.DelRound(ctx, jobID, round); err != nil {
		repo.logger.Error("删除题目缓存失败", elog.FieldErr(err),
			elog.Int64("jid", jobID), elog.Int("round", round))
	}
}

func (repo *CachedQuestionRepository) toDomain(q dao.Question) domain.Question {
	return domain.Question{
		ID:            q.Id,
		JobID:         q.JobId,
		RoundNumber:   q.RoundNumber,
		Content:       q.Content,
		Options:       q.Options.Val,
		CorrectAnswer: q.CorrectAnswer,
		Marks:         q.Marks,
		Utime:         q.Utime,
	}
}
