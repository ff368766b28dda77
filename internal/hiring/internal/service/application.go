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
	"fmt"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/event"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost"
	"github.com/webflowdev33/talent-bridge-sub000/internal/profile"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank"
	"golang.org/x/sync/errgroup"
)

// 没有携带版本号的状态变更，遇到并发修改时重试的次数
const maxTransitionRetries = 3

var errNoChange = errors.New("申请没有变化")

type Config struct {
	// MaxViolations 累计违规达到该次数自动交卷，0 表示不限制
	MaxViolations int `yaml:"maxViolations"`
}

// ApplicationService 申请的状态机。所有状态变更都通过这里完成，
// 预约、考试和评估的结果也由这里推进到申请上。
// 管理员接口的 version 为 0 表示不校验版本号。
//
//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=hiringmocks -typed=true ApplicationService
type ApplicationService interface {
	Apply(ctx context.Context, actor domain.Actor, jobID int64) (domain.Application, error)
	Detail(ctx context.Context, actor domain.Actor, aid int64) (domain.Application, error)
	ListMine(ctx context.Context, actor domain.Actor) ([]domain.Application, error)
	List(ctx context.Context, actor domain.Actor, filter domain.ApplicationFilter) ([]domain.Application, int64, error)
	// Delete 删除申请以及它的考试和评估，删除之后可以重新申请
	Delete(ctx context.Context, actor domain.Actor, aid int64) error

	SelectSlot(ctx context.Context, actor domain.Actor, aid, slotID int64) (domain.Application, error)
	ReassignSlot(ctx context.Context, actor domain.Actor, aid, slotID, version int64) (domain.Application, error)
	ReleaseSlot(ctx context.Context, actor domain.Actor, aid int64) (domain.Application, error)

	Approve(ctx context.Context, actor domain.Actor, aid, version int64) (domain.Application, error)
	Reject(ctx context.Context, actor domain.Actor, aid, version int64) (domain.Application, error)
	EnableTest(ctx context.Context, actor domain.Actor, aid int64, round int, version int64) (domain.Application, error)
	ChangeJob(ctx context.Context, actor domain.Actor, aid, jobID, version int64) (domain.Application, error)
	// RecordRoundOutcome 根据已有的评估和考试结果推进当前轮次
	RecordRoundOutcome(ctx context.Context, actor domain.Actor, aid int64) (domain.Application, error)
	Breakdown(ctx context.Context, actor domain.Actor, aid int64) ([]domain.RoundBreakdown, error)

	Questions(ctx context.Context, actor domain.Actor, aid int64) ([]questionbank.Question, error)
	StartTest(ctx context.Context, actor domain.Actor, aid int64) (domain.Attempt, error)
	Attempts(ctx context.Context, actor domain.Actor, aid int64) ([]domain.Attempt, error)
	RecordAnswer(ctx context.Context, actor domain.Actor, attemptID, questionID int64, selected string) error
	RecordViolation(ctx context.Context, actor domain.Actor, attemptID int64, typ string) (domain.ViolationResult, error)
	SubmitTest(ctx context.Context, actor domain.Actor, attemptID int64) (domain.Attempt, error)
	// AutoSubmit 超时或者违规过多时由系统提交
	AutoSubmit(ctx context.Context, attemptID int64) (domain.SubmitResult, error)

	RecordEvaluation(ctx context.Context, actor domain.Actor, e domain.Evaluation) (domain.Evaluation, error)
	// Evaluations 管理员看到全部评估，候选人只能看到公开的反馈
	Evaluations(ctx context.Context, actor domain.Actor, aid int64) ([]domain.Evaluation, error)
}

type applicationService struct {
	repo       repository.ApplicationRepository
	slotSvc    SlotService
	attemptSvc AttemptService
	evalSvc    EvaluationService
	jobSvc     jobpost.Service
	qbSvc      questionbank.Service
	profileSvc profile.Service
	producer   event.ApplicationEventProducer
	cfg        Config
	logger     *elog.Component
}

func NewApplicationService(repo repository.ApplicationRepository,
	slotSvc SlotService,
	attemptSvc AttemptService,
	evalSvc EvaluationService,
	jobSvc jobpost.Service,
	qbSvc questionbank.Service,
	profileSvc profile.Service,
	producer event.ApplicationEventProducer,
	cfg Config) ApplicationService {
	return &applicationService{
		repo:       repo,
		slotSvc:    slotSvc,
		attemptSvc: attemptSvc,
		evalSvc:    evalSvc,
		jobSvc:     jobSvc,
		qbSvc:      qbSvc,
		profileSvc: profileSvc,
		producer:   producer,
		cfg:        cfg,
		logger:     elog.DefaultLogger.With(elog.FieldComponent("hiring.application")),
	}
}

func (s *applicationService) Apply(ctx context.Context, actor domain.Actor, jobID int64) (domain.Application, error) {
	if actor.Uid <= 0 || jobID <= 0 {
		return domain.Application{}, domain.ErrInvalidArgument
	}
	if err := s.checkProfile(ctx, actor.Uid); err != nil {
		return domain.Application{}, err
	}
	job, err := s.job(ctx, jobID)
	if err != nil {
		return domain.Application{}, err
	}
	if !job.Active {
		return domain.Application{}, domain.ErrJobInactive
	}
	app := domain.NewApplication(actor.Uid, jobID)
	app.ID, err = s.repo.Create(ctx, app)
	if err != nil {
		return domain.Application{}, err
	}
	app.Version = 1
	s.publish(ctx, domain.Application{}, app)
	return app, nil
}

func (s *applicationService) Detail(ctx context.Context, actor domain.Actor, aid int64) (domain.Application, error) {
	return s.accessible(ctx, actor, aid)
}

func (s *applicationService) ListMine(ctx context.Context, actor domain.Actor) ([]domain.Application, error) {
	return s.repo.FindByUid(ctx, actor.Uid)
}

func (s *applicationService) List(ctx context.Context, actor domain.Actor,
	filter domain.ApplicationFilter) ([]domain.Application, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, domain.ErrPermissionDenied
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, 0, domain.ErrInvalidStatus
	}
	return s.repo.List(ctx, filter.JobID, filter.Status, filter.Offset, filter.Limit)
}

func (s *applicationService) Delete(ctx context.Context, actor domain.Actor, aid int64) error {
	app, err := s.accessible(ctx, actor, aid)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, app.ID); err != nil {
		return err
	}
	s.logger.Info("申请已删除",
		elog.Int64("aid", app.ID),
		elog.Int64("operator", actor.Uid))
	return nil
}

func (s *applicationService) SelectSlot(ctx context.Context, actor domain.Actor, aid, slotID int64) (domain.Application, error) {
	if err := s.checkProfile(ctx, actor.Uid); err != nil {
		return domain.Application{}, err
	}
	return s.transitionWith(ctx, aid, 0, func(ctx context.Context, app *domain.Application) error {
		if !actor.CanAccess(*app) {
			return domain.ErrPermissionDenied
		}
		return app.SelectSlot(slotID)
	}, func(ctx context.Context, next domain.Application, expected int64) error {
		return s.slotSvc.Reserve(ctx, slotID, next, expected)
	})
}

func (s *applicationService) ReassignSlot(ctx context.Context, actor domain.Actor, aid, slotID, version int64) (domain.Application, error) {
	if !actor.IsAdmin() {
		return domain.Application{}, domain.ErrPermissionDenied
	}
	return s.transitionWith(ctx, aid, version, func(ctx context.Context, app *domain.Application) error {
		return app.MoveSlot(slotID)
	}, func(ctx context.Context, next domain.Application, expected int64) error {
		return s.slotSvc.Move(ctx, slotID, next, expected)
	})
}

func (s *applicationService) ReleaseSlot(ctx context.Context, actor domain.Actor, aid int64) (domain.Application, error) {
	if !actor.IsAdmin() {
		return domain.Application{}, domain.ErrPermissionDenied
	}
	app, err := s.repo.FindById(ctx, aid)
	if err != nil || !app.HasSlot() {
		return app, err
	}
	if err = s.slotSvc.Release(ctx, aid); err != nil {
		return domain.Application{}, err
	}
	return s.repo.FindById(ctx, aid)
}

func (s *applicationService) Approve(ctx context.Context, actor domain.Actor, aid, version int64) (domain.Application, error) {
	if !actor.IsAdmin() {
		return domain.Application{}, domain.ErrPermissionDenied
	}
	return s.transition(ctx, aid, version, func(ctx context.Context, app *domain.Application) error {
		return app.Approve()
	})
}

func (s *applicationService) Reject(ctx context.Context, actor domain.Actor, aid, version int64) (domain.Application, error) {
	if !actor.IsAdmin() {
		return domain.Application{}, domain.ErrPermissionDenied
	}
	return s.transition(ctx, aid, version, func(ctx context.Context, app *domain.Application) error {
		return app.Reject()
	})
}

func (s *applicationService) EnableTest(ctx context.Context, actor domain.Actor, aid int64, round int, version int64) (domain.Application, error) {
	if !actor.IsAdmin() {
		return domain.Application{}, domain.ErrPermissionDenied
	}
	return s.transition(ctx, aid, version, func(ctx context.Context, app *domain.Application) error {
		if err := app.EnableTest(round); err != nil {
			return err
		}
		active, err := s.attemptSvc.HasActive(ctx, app.ID, round)
		if err != nil {
			return err
		}
		if active {
			return domain.ErrAttemptAlreadyActive
		}
		return nil
	})
}

func (s *applicationService) ChangeJob(ctx context.Context, actor domain.Actor, aid, jobID, version int64) (domain.Application, error) {
	if !actor.IsAdmin() {
		return domain.Application{}, domain.ErrPermissionDenied
	}
	job, err := s.job(ctx, jobID)
	if err != nil {
		return domain.Application{}, err
	}
	if !job.Active {
		return domain.Application{}, domain.ErrJobInactive
	}
	return s.transition(ctx, aid, version, func(ctx context.Context, app *domain.Application) error {
		if err := app.ChangeJob(jobID); err != nil {
			return err
		}
		ats, err := s.attemptSvc.ListByApplication(ctx, app.ID)
		if err != nil {
			return err
		}
		for _, at := range ats {
			if !at.IsSubmitted {
				return domain.ErrAttemptAlreadyActive
			}
		}
		return nil
	})
}

func (s *applicationService) RecordRoundOutcome(ctx context.Context, actor domain.Actor, aid int64) (domain.Application, error) {
	if !actor.IsAdmin() {
		return domain.Application{}, domain.ErrPermissionDenied
	}
	return s.recordRoundOutcome(ctx, aid)
}

// recordRoundOutcome 当前轮次最新的一条结果说了算，评估和考试按时间比较
func (s *applicationService) recordRoundOutcome(ctx context.Context, aid int64) (domain.Application, error) {
	return s.transition(ctx, aid, 0, func(ctx context.Context, app *domain.Application) error {
		if app.IsTerminal() {
			return domain.ErrApplicationClosed
		}
		job, err := s.job(ctx, app.JobID)
		if err != nil {
			return err
		}
		outcome, err := s.resolveOutcome(ctx, *app)
		if err != nil {
			return err
		}
		changed, err := app.ApplyOutcome(outcome, job.TotalRounds)
		if err != nil {
			return err
		}
		if !changed {
			return errNoChange
		}
		return nil
	})
}

func (s *applicationService) resolveOutcome(ctx context.Context, app domain.Application) (domain.RoundOutcome, error) {
	evals, err := s.evalSvc.List(ctx, app.ID)
	if err != nil {
		return domain.OutcomeNone, err
	}
	ats, err := s.attemptSvc.ListByApplication(ctx, app.ID)
	if err != nil {
		return domain.OutcomeNone, err
	}
	rec, ok := domain.LatestRoundRecord(
		sameJob(ats, app.JobID, func(at domain.Attempt) int64 { return at.JobID }),
		sameJob(evals, app.JobID, func(e domain.Evaluation) int64 { return e.JobID }),
		app.CurrentRound)
	if !ok {
		return domain.OutcomeNone, nil
	}
	return rec.Outcome(), nil
}

func (s *applicationService) Breakdown(ctx context.Context, actor domain.Actor, aid int64) ([]domain.RoundBreakdown, error) {
	app, err := s.accessible(ctx, actor, aid)
	if err != nil {
		return nil, err
	}
	var (
		eg       errgroup.Group
		job      jobpost.Job
		attempts []domain.Attempt
		evals    []domain.Evaluation
	)
	eg.Go(func() error {
		var err error
		job, err = s.job(ctx, app.JobID)
		return err
	})
	eg.Go(func() error {
		var err error
		attempts, err = s.attemptSvc.ListByApplication(ctx, app.ID)
		return err
	})
	eg.Go(func() error {
		var err error
		if actor.IsAdmin() {
			evals, err = s.evalSvc.List(ctx, app.ID)
		} else {
			evals, err = s.evalSvc.VisibleFeedback(ctx, app.ID)
		}
		return err
	})
	if err = eg.Wait(); err != nil {
		return nil, err
	}
	rounds := make([]domain.RoundInfo, 0, job.TotalRounds)
	for i := 1; i <= job.TotalRounds; i++ {
		name := fmt.Sprintf("第%d轮", i)
		if r, ok := job.Round(i); ok && r.Name != "" {
			name = r.Name
		}
		rounds = append(rounds, domain.RoundInfo{Number: i, Name: name})
	}
	return domain.BuildBreakdown(app, rounds,
		sameJob(attempts, app.JobID, func(at domain.Attempt) int64 { return at.JobID }),
		sameJob(evals, app.JobID, func(e domain.Evaluation) int64 { return e.JobID })), nil
}

func (s *applicationService) RecordEvaluation(ctx context.Context, actor domain.Actor, e domain.Evaluation) (domain.Evaluation, error) {
	if !actor.IsAdmin() {
		return domain.Evaluation{}, domain.ErrPermissionDenied
	}
	app, err := s.repo.FindById(ctx, e.ApplicationID)
	if err != nil {
		return domain.Evaluation{}, err
	}
	if e.RoundNumber < 1 || e.RoundNumber > app.CurrentRound {
		return domain.Evaluation{}, domain.ErrInvalidRound
	}
	e.JobID = app.JobID
	e.EvaluatorID = actor.Uid
	e.Ctime = time.Now().UnixMilli()
	saved, err := s.evalSvc.Record(ctx, e)
	if err != nil {
		return domain.Evaluation{}, err
	}
	if app.IsTerminal() || e.RoundNumber != app.CurrentRound ||
		e.Recommendation.Outcome() == domain.OutcomeNone {
		return saved, nil
	}
	if _, err = s.recordRoundOutcome(ctx, app.ID); err != nil {
		s.logger.Error("评估之后推进申请失败",
			elog.FieldErr(err),
			elog.Int64("aid", app.ID),
			elog.Int64("evaluationId", saved.ID))
	}
	return saved, nil
}

func (s *applicationService) Evaluations(ctx context.Context, actor domain.Actor, aid int64) ([]domain.Evaluation, error) {
	app, err := s.accessible(ctx, actor, aid)
	if err != nil {
		return nil, err
	}
	var evals []domain.Evaluation
	if actor.IsAdmin() {
		evals, err = s.evalSvc.List(ctx, app.ID)
	} else {
		evals, err = s.evalSvc.VisibleFeedback(ctx, app.ID)
	}
	return sameJob(evals, app.JobID, func(e domain.Evaluation) int64 { return e.JobID }), err
}

type mutation func(ctx context.Context, app *domain.Application) error

type commit func(ctx context.Context, next domain.Application, expectedVersion int64) error

func (s *applicationService) transition(ctx context.Context, aid, version int64, fn mutation) (domain.Application, error) {
	return s.transitionWith(ctx, aid, version, fn, s.repo.UpdateState)
}

// transitionWith 读取申请，执行 fn，然后用乐观锁写回。
// 调用方带了 version 时版本不一致直接返回 ErrStaleState，否则重新读取重试。
func (s *applicationService) transitionWith(ctx context.Context, aid, version int64, fn mutation, save commit) (domain.Application, error) {
	for i := 0; i < maxTransitionRetries; i++ {
		app, err := s.repo.FindById(ctx, aid)
		if err != nil {
			return domain.Application{}, err
		}
		if version > 0 && app.Version != version {
			return domain.Application{}, domain.ErrStaleState
		}
		next := app
		err = fn(ctx, &next)
		if errors.Is(err, errNoChange) {
			return app, nil
		}
		if err != nil {
			return domain.Application{}, err
		}
		err = save(ctx, next, app.Version)
		if errors.Is(err, domain.ErrStaleState) && version == 0 {
			continue
		}
		if err != nil {
			return domain.Application{}, err
		}
		next.Version = app.Version + 1
		s.publish(ctx, app, next)
		return next, nil
	}
	return domain.Application{}, domain.ErrStaleState
}

// publish 状态或者职位变化时通知下游，失败只记录日志
func (s *applicationService) publish(ctx context.Context, prev, next domain.Application) {
	if prev.Status == next.Status && prev.JobID == next.JobID {
		return
	}
	err := s.producer.Produce(ctx, event.ApplicationEvent{
		Aid:   next.ID,
		Uid:   next.Uid,
		JobId: next.JobID,
		Round: next.CurrentRound,
		From:  prev.Status.String(),
		To:    next.Status.String(),
		Ctime: time.Now().UnixMilli(),
	})
	if err != nil {
		s.logger.Error("发送申请状态变更事件失败",
			elog.FieldErr(err),
			elog.Int64("aid", next.ID),
			elog.String("to", next.Status.String()))
	}
}

func (s *applicationService) accessible(ctx context.Context, actor domain.Actor, aid int64) (domain.Application, error) {
	app, err := s.repo.FindById(ctx, aid)
	if err != nil {
		return domain.Application{}, err
	}
	if !actor.CanAccess(app) {
		return domain.Application{}, domain.ErrPermissionDenied
	}
	return app, nil
}

func (s *applicationService) checkProfile(ctx context.Context, uid int64) error {
	ok, err := s.profileSvc.IsComplete(ctx, uid)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrProfileIncomplete
	}
	return nil
}

func (s *applicationService) job(ctx context.Context, jobID int64) (jobpost.Job, error) {
	job, err := s.jobSvc.Detail(ctx, jobID)
	if errors.Is(err, jobpost.ErrJobNotFound) {
		return jobpost.Job{}, domain.ErrJobNotFound
	}
	return job, err
}

// sameJob 换岗之后旧职位的考试和评估不再参与计算
func sameJob[T any](src []T, jobID int64, jobOf func(T) int64) []T {
	res := make([]T, 0, len(src))
	for _, t := range src {
		if jobOf(t) == jobID {
			res = append(res, t)
		}
	}
	return res
}
