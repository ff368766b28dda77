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
	"gorm.io/gorm"
)

//go:generate mockgen -source=./attempt.go -destination=./mocks/attempt.mock.go -package=repomocks -typed=true AttemptRepository
type AttemptRepository interface {
	Start(ctx context.Context, at domain.Attempt, expectedAppVersion int64) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Attempt, error)
	FindByApplication(ctx context.Context, aid int64) ([]domain.Attempt, error)
	HasActive(ctx context.Context, aid int64, round int) (bool, error)
	SaveAnswer(ctx context.Context, ans domain.Answer) error
	FindAnswers(ctx context.Context, attemptID int64) ([]domain.Answer, error)
	IncrViolation(ctx context.Context, v domain.Violation) (int, error)
	FindViolations(ctx context.Context, attemptID int64) ([]domain.Violation, error)
	// Finish 保存判分结果，answers 中 IsCorrect 已经计算好。
	// 申请还停在这一轮时同时标记为已考，返回标记之前的申请，否则返回零值
	Finish(ctx context.Context, at domain.Attempt, answers []domain.Answer) (domain.Application, error)
	ListExpired(ctx context.Context, deadline int64, minID int64, limit int) ([]domain.Attempt, error)
}

type attemptRepository struct {
	dao dao.AttemptDAO
}

func NewAttemptRepository(d dao.AttemptDAO) AttemptRepository {
	return &attemptRepository{dao: d}
}

func (repo *attemptRepository) Start(ctx context.Context, at domain.Attempt, expectedAppVersion int64) (int64, error) {
	id, err := repo.dao.Start(ctx, repo.toEntity(at), expectedAppVersion)
	return id, translate(err, domain.ErrApplicationNotFound)
}

func (repo *attemptRepository) FindById(ctx context.Context, id int64) (domain.Attempt, error) {
	at, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Attempt{}, translate(err, domain.ErrAttemptNotFound)
	}
	return repo.toDomain(at), nil
}

func (repo *attemptRepository) FindByApplication(ctx context.Context, aid int64) ([]domain.Attempt, error) {
	ats, err := repo.dao.FindByApplication(ctx, aid)
	return slice.Map(ats, func(idx int, src dao.TestAttempt) domain.Attempt {
		return repo.toDomain(src)
	}), err
}

func (repo *attemptRepository) HasActive(ctx context.Context, aid int64, round int) (bool, error) {
	_, err := repo.dao.FindActive(ctx, aid, round)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (repo *attemptRepository) SaveAnswer(ctx context.Context, ans domain.Answer) error {
	err := repo.dao.SaveAnswer(ctx, dao.Answer{
		AttemptId:      ans.AttemptID,
		QuestionId:     ans.QuestionID,
		SelectedAnswer: ans.SelectedAnswer,
	})
	return translate(err, domain.ErrAttemptNotFound)
}

func (repo *attemptRepository) FindAnswers(ctx context.Context, attemptID int64) ([]domain.Answer, error) {
	answers, err := repo.dao.FindAnswers(ctx, attemptID)
	return slice.Map(answers, func(idx int, src dao.Answer) domain.Answer {
		return domain.Answer{
			ID:             src.Id,
			AttemptID:      src.AttemptId,
			QuestionID:     src.QuestionId,
			SelectedAnswer: src.SelectedAnswer,
			IsCorrect:      src.IsCorrect,
		}
	}), err
}

func (repo *attemptRepository) IncrViolation(ctx context.Context, v domain.Violation) (int, error) {
	total, err := repo.dao.IncrViolation(ctx, dao.Violation{
		AttemptId: v.AttemptID,
		Uid:       v.Uid,
		Type:      v.Type,
	})
	return total, translate(err, domain.ErrAttemptNotFound)
}

func (repo *attemptRepository) FindViolations(ctx context.Context, attemptID int64) ([]domain.Violation, error) {
	vs, err := repo.dao.FindViolations(ctx, attemptID)
	return slice.Map(vs, func(idx int, src dao.Violation) domain.Violation {
		return domain.Violation{
			AttemptID: src.AttemptId,
			Uid:       src.Uid,
			Type:      src.Type,
			Count:     src.Cnt,
		}
	}), err
}

func (repo *attemptRepository) Finish(ctx context.Context, at domain.Attempt, answers []domain.Answer) (domain.Application, error) {
	correct := make([]int64, 0, len(answers))
	for _, ans := range answers {
		if ans.IsCorrect {
			correct = append(correct, ans.ID)
		}
	}
	before, err := repo.dao.Finish(ctx, repo.toEntity(at), correct)
	if err != nil {
		return domain.Application{}, translate(err, domain.ErrAttemptNotFound)
	}
	if before.Id == 0 {
		return domain.Application{}, nil
	}
	return toApplication(before), nil
}

func (repo *attemptRepository) ListExpired(ctx context.Context, deadline int64, minID int64, limit int) ([]domain.Attempt, error) {
	ats, err := repo.dao.ListExpired(ctx, deadline, minID, limit)
	return slice.Map(ats, func(idx int, src dao.TestAttempt) domain.Attempt {
		return repo.toDomain(src)
	}), err
}

func (repo *attemptRepository) toEntity(at domain.Attempt) dao.TestAttempt {
	return dao.TestAttempt{
		Id:              at.ID,
		ApplicationId:   at.ApplicationID,
		JobId:           at.JobID,
		Uid:             at.Uid,
		RoundNumber:     at.RoundNumber,
		StartedAt:       at.StartedAt,
		EndedAt:         at.EndedAt,
		Deadline:        at.Deadline(),
		DurationMinutes: at.DurationMinutes,
		TotalMarks:      at.TotalMarks,
		PassingMarks:    at.PassingMarks,
		ObtainedMarks:   at.ObtainedMarks,
		IsPassed:        at.IsPassed,
		IsSubmitted:     at.IsSubmitted,
		AutoSubmitted:   at.AutoSubmitted,
		AnswerVersion:   at.AnswerVersion,
	}
}

func (repo *attemptRepository) toDomain(at dao.TestAttempt) domain.Attempt {
	return domain.Attempt{
		ID:              at.Id,
		ApplicationID:   at.ApplicationId,
		JobID:           at.JobId,
		Uid:             at.Uid,
		RoundNumber:     at.RoundNumber,
		StartedAt:       at.StartedAt,
		EndedAt:         at.EndedAt,
		DurationMinutes: at.DurationMinutes,
		TotalMarks:      at.TotalMarks,
		PassingMarks:    at.PassingMarks,
		ObtainedMarks:   at.ObtainedMarks,
		IsPassed:        at.IsPassed,
		IsSubmitted:     at.IsSubmitted,
		AutoSubmitted:   at.AutoSubmitted,
		AnswerVersion:   at.AnswerVersion,
	}
}
