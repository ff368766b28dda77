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
	"github.com/gotomicro/ego/core/elog"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/repository/cache"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/repository/dao"
)

type JobRepository interface {
	Save(ctx context.Context, job domain.Job) (int64, error)
	Detail(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Job, int64, error)
	Delete(ctx context.Context, id int64) error
}

// CachedJobRepository 职位详情读多写少，优先走缓存
type CachedJobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewCachedJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &CachedJobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger.With(elog.FieldComponent("jobpost.repository")),
	}
}

func (repo *CachedJobRepository) Save(ctx context.Context, job domain.Job) (int64, error) {
	id, err := repo.dao.Save(ctx, repo.toEntity(job), slice.Map(job.Rounds, func(idx int, src domain.Round) dao.JobRound {
		return dao.JobRound{
			RoundNumber:     src.Number,
			Name:            src.Name,
			Mode:            src.Mode.String(),
			Instructions:    src.Instructions,
			DurationMinutes: src.DurationMinutes,
			PassingMarks:    src.PassingMarks,
		}
	}))
	if err != nil {
		return 0, err
	}
	repo.evict(ctx, id)
	return id, nil
}

func (repo *CachedJobRepository) Detail(ctx context.Context, id int64) (domain.Job, error) {
	job, err := repo.cache.GetJob(ctx, id)
	if err == nil {
		return job, nil
	}
	j, rounds, err := repo.dao.Find(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	job = repo.toDomain(j)
	job.Rounds = slice.Map(rounds, func(idx int, src dao.JobRound) domain.Round {
		return domain.Round{
			Number:          src.RoundNumber,
			Name:            src.Name,
			Mode:            domain.RoundMode(src.Mode),
			Instructions:    src.Instructions,
			DurationMinutes: src.DurationMinutes,
			PassingMarks:    src.PassingMarks,
		}
	})
	if er := repo.cache.SetJob(ctx, job); er != nil {
		repo.logger.Error("缓存职位失败", elog.FieldErr(er), elog.Int64("jid", id))
	}
	return job, nil
}

func (repo *CachedJobRepository) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Job, int64, error) {
	jobs, err := repo.dao.List(ctx, activeOnly, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := repo.dao.Count(ctx, activeOnly)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return repo.toDomain(src)
	}), total, nil
}

func (repo *CachedJobRepository) Delete(ctx context.Context, id int64) error {
	if err := repo.dao.Delete(ctx, id); err != nil {
		return err
	}
	repo.evict(ctx, id)
	return nil
}

func (repo *CachedJobRepository) evict(ctx context.Context, id int64) {
	if err := repo.cache.DelJob(ctx, id); err != nil {
		repo.logger.Error("删除职位缓存失败", elog.FieldErr(err), elog.Int64("jid", id))
	}
}

func (repo *CachedJobRepository) toEntity(job domain.Job) dao.Job {
	return dao.Job{
		Id:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		TotalRounds: job.TotalRounds,
		Active:      job.Active,
	}
}

func (repo *CachedJobRepository) toDomain(job dao.Job) domain.Job {
	return domain.Job{
		ID:          job.Id,
		Title:       job.Title,
		Description: job.Description,
		TotalRounds: job.TotalRounds,
		Active:      job.Active,
		Ctime:       job.Ctime,
		Utime:       job.Utime,
	}
}
