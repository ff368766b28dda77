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
	"errors"
	"strings"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank"
)

// 判分期间有新答案写入或者并发提交时重新读取
const maxSubmitRetries = 3

//go:generate mockgen -source=./attempt.go -destination=../../mocks/attempt.mock.go -package=hiringmocks -typed=true AttemptService
type AttemptService interface {
	// Start 开始一次考试。app 必须处于可以考试的状态，由调用方保证
	Start(ctx context.Context, app domain.Application, round, durationMinutes, totalMarks, passingMarks int) (domain.Attempt, error)
	Detail(ctx context.Context, id int64) (domain.Attempt, error)
	ListByApplication(ctx context.Context, aid int64) ([]domain.Attempt, error)
	HasActive(ctx context.Context, aid int64, round int) (bool, error)
	// RecordAnswer 同一道题重复作答时覆盖
	RecordAnswer(ctx context.Context, at domain.Attempt, questionID int64, selected string) error
	// RecordViolation 返回本次考试累计的违规次数
	RecordViolation(ctx context.Context, at domain.Attempt, typ string) (int, error)
	Violations(ctx context.Context, id int64) ([]domain.Violation, error)
	// Submit 判分并提交。已经提交过的考试直接返回已有结果，Fresh 为 false
	Submit(ctx context.Context, id int64, auto bool) (domain.SubmitResult, error)
	// ListExpired 已经超时但是还没有提交的考试，按照 id 升序
	ListExpired(ctx context.Context, minID int64, limit int) ([]domain.Attempt, error)
}

type attemptService struct {
	repo   repository.AttemptRepository
	qbSvc  questionbank.Service
	now    func() time.Time
	logger *elog.Component
}

func NewAttemptService(repo repository.AttemptRepository, qbSvc questionbank.Service) AttemptService {
	return &attemptService{
		repo:   repo,
		qbSvc:  qbSvc,
		now:    time.Now,
		logger: elog.DefaultLogger.With(elog.FieldComponent("hiring.attempt")),
	}
}

func (s *attemptService) Start(ctx context.Context, app domain.Application,
	round, durationMinutes, totalMarks, passingMarks int) (domain.Attempt, error) {
	if durationMinutes < 1 || totalMarks < 0 || passingMarks < 0 || passingMarks > totalMarks {
		return domain.Attempt{}, domain.ErrInvalidArgument
	}
	at := domain.Attempt{
		ApplicationID:   app.ID,
		JobID:           app.JobID,
		Uid:             app.Uid,
		RoundNumber:     round,
		StartedAt:       s.now().UnixMilli(),
		DurationMinutes: durationMinutes,
		TotalMarks:      totalMarks,
		PassingMarks:    passingMarks,
	}
	id, err := s.repo.Start(ctx, at, app.Version)
	if err != nil {
		return domain.Attempt{}, err
	}
	at.ID = id
	return at, nil
}

func (s *attemptService) Detail(ctx context.Context, id int64) (domain.Attempt, error) {
	return s.repo.FindById(ctx, id)
}

func (s *attemptService) ListByApplication(ctx context.Context, aid int64) ([]domain.Attempt, error) {
	return s.repo.FindByApplication(ctx, aid)
}

func (s *attemptService) HasActive(ctx context.Context, aid int64, round int) (bool, error) {
	return s.repo.HasActive(ctx, aid, round)
}

func (s *attemptService) RecordAnswer(ctx context.Context, at domain.Attempt, questionID int64, selected string) error {
	if err := s.checkInProgress(at); err != nil {
		return err
	}
	keys, err := s.qbSvc.AnswerKeys(ctx, at.JobID, at.RoundNumber)
	if err != nil {
		return err
	}
	if _, ok := keys[questionID]; !ok {
		return domain.ErrQuestionNotFound
	}
	return s.repo.SaveAnswer(ctx, domain.Answer{
		AttemptID:      at.ID,
		QuestionID:     questionID,
		SelectedAnswer: strings.TrimSpace(selected),
	})
}

func (s *attemptService) RecordViolation(ctx context.Context, at domain.Attempt, typ string) (int, error) {
	typ = strings.TrimSpace(typ)
	if typ == "" {
		return 0, domain.ErrInvalidArgument
	}
	if at.IsSubmitted {
		return 0, domain.ErrAttemptSubmitted
	}
	total, err := s.repo.IncrViolation(ctx, domain.Violation{
		AttemptID: at.ID,
		Uid:       at.Uid,
		Type:      typ,
	})
	if err != nil {
		return 0, err
	}
	testViolations.WithLabelValues(typ).Inc()
	return total, nil
}

func (s *attemptService) Violations(ctx context.Context, id int64) ([]domain.Violation, error) {
	return s.repo.FindViolations(ctx, id)
}

func (s *attemptService) Submit(ctx context.Context, id int64, auto bool) (domain.SubmitResult, error) {
	for i := 0; i < maxSubmitRetries; i++ {
		at, err := s.repo.FindById(ctx, id)
		if err != nil {
			return domain.SubmitResult{}, err
		}
		if at.IsSubmitted {
			return domain.SubmitResult{Attempt: at}, nil
		}
		res, err := s.grade(ctx, at)
		if err != nil {
			return domain.SubmitResult{}, err
		}
		at.ObtainedMarks = res.ObtainedMarks
		at.IsPassed = res.IsPassed
		at.IsSubmitted = true
		at.AutoSubmitted = auto
		at.EndedAt = s.now().UnixMilli()
		before, err := s.repo.Finish(ctx, at, res.Answers)
		if errors.Is(err, domain.ErrStaleState) {
			continue
		}
		if err != nil {
			return domain.SubmitResult{}, err
		}
		testSubmissions.WithLabelValues(submitMode(auto), passLabel(at.IsPassed)).Inc()
		s.logger.Info("考试已提交",
			elog.Int64("attemptId", at.ID),
			elog.Int64("aid", at.ApplicationID),
			elog.Int("obtained", at.ObtainedMarks),
			elog.Int("passing", at.PassingMarks),
			elog.String("mode", submitMode(auto)))
		return domain.SubmitResult{Attempt: at, Fresh: true, Application: before}, nil
	}
	return domain.SubmitResult{}, domain.ErrStaleState
}

func (s *attemptService) grade(ctx context.Context, at domain.Attempt) (domain.GradeResult, error) {
	answers, err := s.repo.FindAnswers(ctx, at.ID)
	if err != nil {
		return domain.GradeResult{}, err
	}
	keys, err := s.qbSvc.AnswerKeys(ctx, at.JobID, at.RoundNumber)
	if err != nil {
		return domain.GradeResult{}, err
	}
	converted := make(map[int64]domain.AnswerKey, len(keys))
	for qid, k := range keys {
		converted[qid] = domain.AnswerKey{
			QuestionID:    k.QuestionID,
			CorrectAnswer: k.CorrectAnswer,
			Marks:         k.Marks,
		}
	}
	return domain.Grade(answers, converted, at.PassingMarks), nil
}

func (s *attemptService) ListExpired(ctx context.Context, minID int64, limit int) ([]domain.Attempt, error) {
	return s.repo.ListExpired(ctx, s.now().UnixMilli(), minID, limit)
}

func (s *attemptService) checkInProgress(at domain.Attempt) error {
	if at.IsSubmitted {
		return domain.ErrAttemptSubmitted
	}
	if at.Expired(s.now()) {
		return domain.ErrAttemptExpired
	}
	return nil
}
