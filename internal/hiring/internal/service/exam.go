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

	"github.com/gotomicro/ego/core/elog"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank"
)

func (s *applicationService) Questions(ctx context.Context, actor domain.Actor, aid int64) ([]questionbank.Question, error) {
	app, err := s.accessible(ctx, actor, aid)
	if err != nil {
		return nil, err
	}
	if !actor.IsAdmin() && !app.CanTakeTest(app.CurrentRound) {
		return nil, domain.ErrTestNotEnabled
	}
	return s.qbSvc.ListForRound(ctx, app.JobID, app.CurrentRound)
}

func (s *applicationService) StartTest(ctx context.Context, actor domain.Actor, aid int64) (domain.Attempt, error) {
	app, err := s.accessible(ctx, actor, aid)
	if err != nil {
		return domain.Attempt{}, err
	}
	if app.IsTerminal() {
		return domain.Attempt{}, domain.ErrApplicationClosed
	}
	job, err := s.job(ctx, app.JobID)
	if err != nil {
		return domain.Attempt{}, err
	}
	round, ok := job.Round(app.CurrentRound)
	if !ok || !round.Mode.IsOnline() {
		return domain.Attempt{}, domain.ErrNotOnlineRound
	}
	if !app.CanTakeTest(app.CurrentRound) {
		return domain.Attempt{}, domain.ErrTestNotEnabled
	}
	total, err := s.qbSvc.TotalMarks(ctx, app.JobID, app.CurrentRound)
	if err != nil {
		return domain.Attempt{}, err
	}
	at, err := s.attemptSvc.Start(ctx, app, app.CurrentRound, round.DurationMinutes, total, round.PassingMarks)
	if err != nil {
		return domain.Attempt{}, err
	}
	s.logger.Info("开始考试",
		elog.Int64("aid", app.ID),
		elog.Int64("attemptId", at.ID),
		elog.Int("round", at.RoundNumber))
	return at, nil
}

func (s *applicationService) Attempts(ctx context.Context, actor domain.Actor, aid int64) ([]domain.Attempt, error) {
	app, err := s.accessible(ctx, actor, aid)
	if err != nil {
		return nil, err
	}
	ats, err := s.attemptSvc.ListByApplication(ctx, app.ID)
	return sameJob(ats, app.JobID, func(at domain.Attempt) int64 { return at.JobID }), err
}

func (s *applicationService) RecordAnswer(ctx context.Context, actor domain.Actor, attemptID, questionID int64, selected string) error {
	at, err := s.ownAttempt(ctx, actor, attemptID)
	if err != nil {
		return err
	}
	return s.attemptSvc.RecordAnswer(ctx, at, questionID, selected)
}

func (s *applicationService) RecordViolation(ctx context.Context, actor domain.Actor, attemptID int64, typ string) (domain.ViolationResult, error) {
	at, err := s.ownAttempt(ctx, actor, attemptID)
	if err != nil {
		return domain.ViolationResult{}, err
	}
	total, err := s.attemptSvc.RecordViolation(ctx, at, typ)
	if err != nil {
		return domain.ViolationResult{}, err
	}
	res := domain.ViolationResult{Total: total, Attempt: at}
	if s.cfg.MaxViolations <= 0 || total < s.cfg.MaxViolations {
		return res, nil
	}
	s.logger.Warn("违规次数达到上限，自动交卷",
		elog.Int64("attemptId", at.ID),
		elog.Int("total", total))
	sr, err := s.AutoSubmit(ctx, at.ID)
	if err != nil {
		return domain.ViolationResult{}, err
	}
	res.Attempt = sr.Attempt
	res.AutoSubmitted = sr.Fresh
	return res, nil
}

func (s *applicationService) SubmitTest(ctx context.Context, actor domain.Actor, attemptID int64) (domain.Attempt, error) {
	at, err := s.ownAttempt(ctx, actor, attemptID)
	if err != nil {
		return domain.Attempt{}, err
	}
	res, err := s.attemptSvc.Submit(ctx, at.ID, false)
	if err != nil {
		return domain.Attempt{}, err
	}
	s.afterSubmit(ctx, res)
	return res.Attempt, nil
}

func (s *applicationService) AutoSubmit(ctx context.Context, attemptID int64) (domain.SubmitResult, error) {
	res, err := s.attemptSvc.Submit(ctx, attemptID, true)
	if err != nil {
		return domain.SubmitResult{}, err
	}
	s.afterSubmit(ctx, res)
	return res, nil
}

// afterSubmit 申请已经在交卷的事务里标记为已考，这里只发事件并推进轮次。
// 推进失败不影响提交结果，管理员可以再次登记本轮结果
func (s *applicationService) afterSubmit(ctx context.Context, res domain.SubmitResult) {
	if !res.Fresh || res.Application.ID == 0 {
		return
	}
	at := res.Attempt
	prev := res.Application
	next := prev
	if err := next.MarkTestTaken(at.RoundNumber); err != nil {
		return
	}
	next.Version++
	s.publish(ctx, prev, next)
	if !at.IsPassed {
		return
	}
	if _, err := s.recordRoundOutcome(ctx, at.ApplicationID); err != nil {
		s.logger.Error("交卷之后推进轮次失败",
			elog.FieldErr(err),
			elog.Int64("aid", at.ApplicationID),
			elog.Int64("attemptId", at.ID))
	}
}

func (s *applicationService) ownAttempt(ctx context.Context, actor domain.Actor, attemptID int64) (domain.Attempt, error) {
	at, err := s.attemptSvc.Detail(ctx, attemptID)
	if err != nil {
		return domain.Attempt{}, err
	}
	if at.Uid != actor.Uid {
		return domain.Attempt{}, domain.ErrPermissionDenied
	}
	return at, nil
}
