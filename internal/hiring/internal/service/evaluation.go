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

package service

import (
	"context"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository"
)

//go:generate mockgen -source=./evaluation.go -destination=../../mocks/evaluation.mock.go -package=hiringmocks -typed=true EvaluationService
type EvaluationService interface {
	SaveParameter(ctx context.Context, p domain.Parameter) (int64, error)
	ListParameters(ctx context.Context, activeOnly bool) ([]domain.Parameter, error)
	// Record 校验评分并保存，不负责推进申请状态
	Record(ctx context.Context, e domain.Evaluation) (domain.Evaluation, error)
	// List 管理员视角，包含内部备注
	List(ctx context.Context, aid int64) ([]domain.Evaluation, error)
	// VisibleFeedback 候选人视角，只返回公开的评估
	VisibleFeedback(ctx context.Context, aid int64) ([]domain.Evaluation, error)
}

type evaluationService struct {
	repo repository.EvaluationRepository
}

func NewEvaluationService(repo repository.EvaluationRepository) EvaluationService {
	return &evaluationService{repo: repo}
}

func (s *evaluationService) SaveParameter(ctx context.Context, p domain.Parameter) (int64, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.MaxScore < 1 {
		return 0, domain.ErrInvalidArgument
	}
	return s.repo.SaveParameter(ctx, p)
}

func (s *evaluationService) ListParameters(ctx context.Context, activeOnly bool) ([]domain.Parameter, error) {
	return s.repo.ListParameters(ctx, activeOnly)
}

func (s *evaluationService) Record(ctx context.Context, e domain.Evaluation) (domain.Evaluation, error) {
	if !e.Recommendation.Valid() {
		return domain.Evaluation{}, domain.ErrInvalidArgument
	}
	if e.RoundNumber < 1 {
		return domain.Evaluation{}, domain.ErrInvalidRound
	}
	ids := slice.Map(e.Scores, func(idx int, src domain.Score) int64 {
		return src.ParameterID
	})
	if len(slice.ToMap(ids, func(id int64) int64 { return id })) != len(ids) {
		return domain.Evaluation{}, domain.ErrInvalidArgument
	}
	params, err := s.repo.FindParameters(ctx, ids)
	if err != nil {
		return domain.Evaluation{}, err
	}
	for i, sc := range e.Scores {
		p, ok := params[sc.ParameterID]
		if !ok || !p.Active {
			return domain.Evaluation{}, domain.ErrParameterNotFound
		}
		if sc.Score < 0 || sc.Score > p.MaxScore {
			return domain.Evaluation{}, domain.ErrScoreOutOfRange
		}
		e.Scores[i].ParameterName = p.Name
		e.Scores[i].MaxScore = p.MaxScore
	}
	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return domain.Evaluation{}, err
	}
	e.ID = id
	return e, nil
}

func (s *evaluationService) List(ctx context.Context, aid int64) ([]domain.Evaluation, error) {
	return s.repo.FindByApplication(ctx, aid, false)
}

func (s *evaluationService) VisibleFeedback(ctx context.Context, aid int64) ([]domain.Evaluation, error) {
	evals, err := s.repo.FindByApplication(ctx, aid, true)
	return slice.Map(evals, func(idx int, src domain.Evaluation) domain.Evaluation {
		return src.Feedback()
	}), err
}
