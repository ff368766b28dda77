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
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository/dao"
)

//go:generate mockgen -source=./evaluation.go -destination=./mocks/evaluation.mock.go -package=repomocks -typed=true EvaluationRepository
type EvaluationRepository interface {
	SaveParameter(ctx context.Context, p domain.Parameter) (int64, error)
	ListParameters(ctx context.Context, activeOnly bool) ([]domain.Parameter, error)
	FindParameters(ctx context.Context, ids []int64) (map[int64]domain.Parameter, error)
	Create(ctx context.Context, e domain.Evaluation) (int64, error)
	// FindByApplication 评分带上评估项的名称和当前满分
	FindByApplication(ctx context.Context, aid int64, visibleOnly bool) ([]domain.Evaluation, error)
}

type evaluationRepository struct {
	dao dao.EvaluationDAO
}

func NewEvaluationRepository(d dao.EvaluationDAO) EvaluationRepository {
	return &evaluationRepository{dao: d}
}

func (repo *evaluationRepository) SaveParameter(ctx context.Context, p domain.Parameter) (int64, error) {
	id, err := repo.dao.SaveParameter(ctx, dao.EvaluationParameter{
		Id:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		MaxScore:    p.MaxScore,
		Active:      p.Active,
	})
	if errors.Is(err, dao.ErrDuplicate) {
		return 0, domain.ErrParameterExists
	}
	return id, translate(err, domain.ErrParameterNotFound)
}

func (repo *evaluationRepository) ListParameters(ctx context.Context, activeOnly bool) ([]domain.Parameter, error) {
	ps, err := repo.dao.ListParameters(ctx, activeOnly)
	return slice.Map(ps, func(idx int, src dao.EvaluationParameter) domain.Parameter {
		return repo.parameterToDomain(src)
	}), err
}

func (repo *evaluationRepository) FindParameters(ctx context.Context, ids []int64) (map[int64]domain.Parameter, error) {
	ps, err := repo.dao.FindParametersByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.Parameter, len(ps))
	for _, p := range ps {
		res[p.Id] = repo.parameterToDomain(p)
	}
	return res, nil
}

func (repo *evaluationRepository) Create(ctx context.Context, e domain.Evaluation) (int64, error) {
	id, err := repo.dao.Create(ctx, dao.Evaluation{
		ApplicationId:  e.ApplicationID,
		JobId:          e.JobID,
		RoundNumber:    e.RoundNumber,
		EvaluatorId:    e.EvaluatorID,
		Recommendation: string(e.Recommendation),
		OverallRemarks: e.OverallRemarks,
		InternalNotes:  e.InternalNotes,
		Visible:        e.Visible,
	}, slice.Map(e.Scores, func(idx int, src domain.Score) dao.EvaluationScore {
		return dao.EvaluationScore{
			ParameterId: src.ParameterID,
			Score:       src.Score,
			Remarks:     src.Remarks,
		}
	}))
	if errors.Is(err, dao.ErrDuplicate) {
		return 0, domain.ErrInvalidArgument
	}
	return id, err
}

func (repo *evaluationRepository) FindByApplication(ctx context.Context, aid int64, visibleOnly bool) ([]domain.Evaluation, error) {
	evals, err := repo.dao.FindByApplication(ctx, aid, visibleOnly)
	if err != nil || len(evals) == 0 {
		return nil, err
	}
	scores, err := repo.dao.FindScores(ctx, slice.Map(evals, func(idx int, src dao.Evaluation) int64 {
		return src.Id
	}))
	if err != nil {
		return nil, err
	}
	params, err := repo.FindParameters(ctx, repo.parameterIds(scores))
	if err != nil {
		return nil, err
	}
	grouped := make(map[int64][]domain.Score, len(evals))
	for _, s := range scores {
		p := params[s.ParameterId]
		grouped[s.EvaluationId] = append(grouped[s.EvaluationId], domain.Score{
			ParameterID:   s.ParameterId,
			ParameterName: p.Name,
			MaxScore:      p.MaxScore,
			Score:         s.Score,
			Remarks:       s.Remarks,
		})
	}
	return slice.Map(evals, func(idx int, src dao.Evaluation) domain.Evaluation {
		return domain.Evaluation{
			ID:             src.Id,
			ApplicationID:  src.ApplicationId,
			JobID:          src.JobId,
			RoundNumber:    src.RoundNumber,
			EvaluatorID:    src.EvaluatorId,
			Recommendation: domain.Recommendation(src.Recommendation),
			OverallRemarks: src.OverallRemarks,
			InternalNotes:  src.InternalNotes,
			Visible:        src.Visible,
			Scores:         grouped[src.Id],
			Ctime:          src.Ctime,
		}
	}), nil
}

func (repo *evaluationRepository) parameterIds(scores []dao.EvaluationScore) []int64 {
	seen := make(map[int64]struct{}, len(scores))
	res := make([]int64, 0, len(scores))
	for _, s := range scores {
		if _, ok := seen[s.ParameterId]; ok {
			continue
		}
		seen[s.ParameterId] = struct{}{}
		res = append(res, s.ParameterId)
	}
	return res
}

func (repo *evaluationRepository) parameterToDomain(p dao.EvaluationParameter) domain.Parameter {
	return domain.Parameter{
		ID:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		MaxScore:    p.MaxScore,
		Active:      p.Active,
	}
}
