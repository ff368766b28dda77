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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/event"
	evtmocks "github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/event/mocks"
	repomocks "github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository/mocks"
	hiringmocks "github.com/webflowdev33/talent-bridge-sub000/internal/hiring/mocks"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost"
	jobpostmocks "github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/mocks"
	profilemocks "github.com/webflowdev33/talent-bridge-sub000/internal/profile/mocks"
	questionbankmocks "github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/mocks"
	"go.uber.org/mock/gomock"
)

var (
	admin     = domain.Actor{Uid: 99, Role: domain.RoleAdmin}
	candidate = domain.Actor{Uid: 1, Role: domain.RoleCandidate}
)

type appMocks struct {
	repo       *repomocks.MockApplicationRepository
	slotSvc    *hiringmocks.MockSlotService
	attemptSvc *hiringmocks.MockAttemptService
	evalSvc    *hiringmocks.MockEvaluationService
	jobSvc     *jobpostmocks.MockService
	qbSvc      *questionbankmocks.MockService
	profileSvc *profilemocks.MockService
	producer   *evtmocks.MockApplicationEventProducer
}

func newAppMocks(ctrl *gomock.Controller) appMocks {
	return appMocks{
		repo:       repomocks.NewMockApplicationRepository(ctrl),
		slotSvc:    hiringmocks.NewMockSlotService(ctrl),
		attemptSvc: hiringmocks.NewMockAttemptService(ctrl),
		evalSvc:    hiringmocks.NewMockEvaluationService(ctrl),
		jobSvc:     jobpostmocks.NewMockService(ctrl),
		qbSvc:      questionbankmocks.NewMockService(ctrl),
		profileSvc: profilemocks.NewMockService(ctrl),
		producer:   evtmocks.NewMockApplicationEventProducer(ctrl),
	}
}

func (m appMocks) svc(cfg Config) ApplicationService {
	return NewApplicationService(m.repo, m.slotSvc, m.attemptSvc, m.evalSvc,
		m.jobSvc, m.qbSvc, m.profileSvc, m.producer, cfg)
}

// testJob 第一轮线上笔试，之后是面试
func testJob(total int) jobpost.Job {
	rounds := []jobpost.Round{
		{Number: 1, Name: "笔试", Mode: jobpost.ModeOnlineTechnical, DurationMinutes: 60, PassingMarks: 6},
		{Number: 2, Name: "技术面", Mode: jobpost.ModeInterview},
		{Number: 3, Name: "HR面", Mode: jobpost.ModeHRRound},
	}
	return jobpost.Job{ID: 10, Title: "后端工程师", TotalRounds: total, Active: true, Rounds: rounds[:total]}
}

func testApp(status domain.ApplicationStatus, round int, version int64) domain.Application {
	return domain.Application{
		ID:           100,
		JobID:        10,
		Uid:          1,
		CurrentRound: round,
		Status:       status,
		Version:      version,
	}
}

// expectEvent 校验发出的状态变更事件
func expectEvent(t *testing.T, m appMocks, from, to domain.ApplicationStatus) {
	m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, evt event.ApplicationEvent) error {
			assert.Equal(t, from.String(), evt.From)
			assert.Equal(t, to.String(), evt.To)
			assert.Equal(t, int64(100), evt.Aid)
			return nil
		})
}

func TestApplicationService_Apply(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m appMocks)
		wantErr error
		wantRes domain.Application
	}{
		{
			name: "申请成功",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(1)).Return(true, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
				m.repo.EXPECT().Create(gomock.Any(), domain.NewApplication(1, 10)).Return(int64(100), nil)
				expectEvent(t, m, "", domain.StatusApplied)
			},
			wantRes: domain.Application{
				ID:           100,
				JobID:        10,
				Uid:          1,
				CurrentRound: 1,
				Status:       domain.StatusApplied,
				Version:      1,
			},
		},
		{
			name: "事件发送失败不影响申请",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(1)).Return(true, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(100), nil)
				m.producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(errors.New("mock mq error"))
			},
			wantRes: domain.Application{
				ID:           100,
				JobID:        10,
				Uid:          1,
				CurrentRound: 1,
				Status:       domain.StatusApplied,
				Version:      1,
			},
		},
		{
			name: "资料不完整",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(1)).Return(false, nil)
			},
			wantErr: domain.ErrProfileIncomplete,
		},
		{
			name: "职位不存在",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(1)).Return(true, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(jobpost.Job{}, jobpost.ErrJobNotFound)
			},
			wantErr: domain.ErrJobNotFound,
		},
		{
			name: "职位已下线",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(1)).Return(true, nil)
				job := testJob(2)
				job.Active = false
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(job, nil)
			},
			wantErr: domain.ErrJobInactive,
		},
		{
			name: "重复申请",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(1)).Return(true, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
				m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), domain.ErrAlreadyApplied)
			},
			wantErr: domain.ErrAlreadyApplied,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAppMocks(ctrl)
			tc.mock(m)
			app, err := m.svc(Config{}).Apply(context.Background(), candidate, 10)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, app)
		})
	}
}

func TestApplicationService_AdminTransition(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m appMocks)
		call    func(svc ApplicationService) (domain.Application, error)
		wantErr error
		wantRes domain.Application
	}{
		{
			name: "审核通过",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusSlotSelected, 1, 3), nil)
				next := testApp(domain.StatusSlotSelected, 1, 3)
				next.AdminApproved = true
				m.repo.EXPECT().UpdateState(gomock.Any(), next, int64(3)).Return(nil)
			},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.Approve(context.Background(), admin, 100, 3)
			},
			wantRes: func() domain.Application {
				app := testApp(domain.StatusSlotSelected, 1, 4)
				app.AdminApproved = true
				return app
			}(),
		},
		{
			name: "候选人不能审核",
			mock: func(m appMocks) {},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.Approve(context.Background(), candidate, 100, 3)
			},
			wantErr: domain.ErrPermissionDenied,
		},
		{
			name: "版本号过期",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusSlotSelected, 1, 4), nil)
			},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.Approve(context.Background(), admin, 100, 3)
			},
			wantErr: domain.ErrStaleState,
		},
		{
			name: "带版本号时并发修改不重试",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 1, 3), nil)
				m.repo.EXPECT().UpdateState(gomock.Any(), gomock.Any(), int64(3)).Return(domain.ErrStaleState)
			},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.Reject(context.Background(), admin, 100, 3)
			},
			wantErr: domain.ErrStaleState,
		},
		{
			name: "拒绝",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 2, 5), nil)
				m.repo.EXPECT().UpdateState(gomock.Any(), testApp(domain.StatusRejected, 2, 5), int64(5)).Return(nil)
				expectEvent(t, m, domain.StatusTestTaken, domain.StatusRejected)
			},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.Reject(context.Background(), admin, 100, 0)
			},
			wantRes: testApp(domain.StatusRejected, 2, 6),
		},
		{
			name: "终态不能再变化",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusSelected, 2, 5), nil)
			},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.Reject(context.Background(), admin, 100, 0)
			},
			wantErr: domain.ErrApplicationClosed,
		},
		{
			name: "开放考试",
			mock: func(m appMocks) {
				app := testApp(domain.StatusSlotSelected, 1, 2)
				app.AdminApproved = true
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(app, nil)
				m.attemptSvc.EXPECT().HasActive(gomock.Any(), int64(100), 1).Return(false, nil)
				next := app
				next.TestEnabled = true
				next.Status = domain.StatusTestEnabled
				m.repo.EXPECT().UpdateState(gomock.Any(), next, int64(2)).Return(nil)
				expectEvent(t, m, domain.StatusSlotSelected, domain.StatusTestEnabled)
			},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.EnableTest(context.Background(), admin, 100, 1, 2)
			},
			wantRes: domain.Application{
				ID:            100,
				JobID:         10,
				Uid:           1,
				CurrentRound:  1,
				AdminApproved: true,
				TestEnabled:   true,
				Status:        domain.StatusTestEnabled,
				Version:       3,
			},
		},
		{
			name: "还有未提交的考试",
			mock: func(m appMocks) {
				app := testApp(domain.StatusTestTaken, 1, 2)
				app.AdminApproved = true
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(app, nil)
				m.attemptSvc.EXPECT().HasActive(gomock.Any(), int64(100), 1).Return(true, nil)
			},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.EnableTest(context.Background(), admin, 100, 1, 0)
			},
			wantErr: domain.ErrAttemptAlreadyActive,
		},
		{
			name: "未审核不能开放考试",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusSlotSelected, 1, 2), nil)
			},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.EnableTest(context.Background(), admin, 100, 1, 0)
			},
			wantErr: domain.ErrNotApproved,
		},
		{
			name: "换岗",
			mock: func(m appMocks) {
				job := testJob(2)
				job.ID = 11
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(11)).Return(job, nil)
				app := testApp(domain.StatusPassed, 2, 7)
				app.SlotID = 3
				app.AdminApproved = true
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(app, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).
					Return([]domain.Attempt{{ID: 1, IsSubmitted: true}}, nil)
				next := testApp(domain.StatusApplied, 1, 7)
				next.JobID = 11
				m.repo.EXPECT().UpdateState(gomock.Any(), next, int64(7)).Return(nil)
				expectEvent(t, m, domain.StatusPassed, domain.StatusApplied)
			},
			call: func(svc ApplicationService) (domain.Application, error) {
				return svc.ChangeJob(context.Background(), admin, 100, 11, 7)
			},
			wantRes: func() domain.Application {
				app := testApp(domain.StatusApplied, 1, 8)
				app.JobID = 11
				return app
			}(),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAppMocks(ctrl)
			tc.mock(m)
			app, err := tc.call(m.svc(Config{}))
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, app)
		})
	}
}

func TestApplicationService_RecordRoundOutcome(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(m appMocks)
		wantErr error
		wantRes domain.Application
	}{
		{
			name: "最新评估通过，进入下一轮",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 2, 5), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(3), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
					{ID: 1, JobID: 10, RoundNumber: 2, Recommendation: domain.RecommendationFail, Ctime: 100},
					{ID: 2, JobID: 10, RoundNumber: 2, Recommendation: domain.RecommendationPass, Ctime: 200},
				}, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return(nil, nil)
				m.repo.EXPECT().UpdateState(gomock.Any(), testApp(domain.StatusPassed, 3, 5), int64(5)).Return(nil)
				expectEvent(t, m, domain.StatusTestTaken, domain.StatusPassed)
			},
			wantRes: testApp(domain.StatusPassed, 3, 6),
		},
		{
			name: "最后一轮通过",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusPassed, 3, 5), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(3), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
					{ID: 1, JobID: 10, RoundNumber: 3, Recommendation: domain.RecommendationPass, Ctime: 100},
				}, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return(nil, nil)
				m.repo.EXPECT().UpdateState(gomock.Any(), testApp(domain.StatusSelected, 3, 5), int64(5)).Return(nil)
				expectEvent(t, m, domain.StatusPassed, domain.StatusSelected)
			},
			wantRes: testApp(domain.StatusSelected, 3, 6),
		},
		{
			name: "评估不通过",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 1, 5), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(3), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
					{ID: 1, JobID: 10, RoundNumber: 1, Recommendation: domain.RecommendationFail, Ctime: 100},
				}, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return(nil, nil)
				m.repo.EXPECT().UpdateState(gomock.Any(), testApp(domain.StatusFailed, 1, 5), int64(5)).Return(nil)
				expectEvent(t, m, domain.StatusTestTaken, domain.StatusFailed)
			},
			wantRes: testApp(domain.StatusFailed, 1, 6),
		},
		{
			name: "待定不改变状态",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 2, 5), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(3), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
					{ID: 1, JobID: 10, RoundNumber: 2, Recommendation: domain.RecommendationPass, Ctime: 100},
					{ID: 2, JobID: 10, RoundNumber: 2, Recommendation: domain.RecommendationHold, Ctime: 200},
				}, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return(nil, nil)
			},
			wantRes: testApp(domain.StatusTestTaken, 2, 5),
		},
		{
			name: "没有评估时看考试结果",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 1, 5), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(3), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return(nil, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return([]domain.Attempt{
					{ID: 1, JobID: 10, RoundNumber: 1, IsSubmitted: true, IsPassed: false},
					{ID: 2, JobID: 10, RoundNumber: 1, IsSubmitted: true, IsPassed: true},
				}, nil)
				m.repo.EXPECT().UpdateState(gomock.Any(), testApp(domain.StatusPassed, 2, 5), int64(5)).Return(nil)
				expectEvent(t, m, domain.StatusTestTaken, domain.StatusPassed)
			},
			wantRes: testApp(domain.StatusPassed, 2, 6),
		},
		{
			name: "换岗之前的记录不算数",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusApplied, 1, 5), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(3), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
					{ID: 1, JobID: 9, RoundNumber: 1, Recommendation: domain.RecommendationPass},
				}, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return([]domain.Attempt{
					{ID: 1, JobID: 9, RoundNumber: 1, IsSubmitted: true, IsPassed: true},
				}, nil)
			},
			wantRes: testApp(domain.StatusApplied, 1, 5),
		},
		{
			name: "重考通过晚于之前不通过的评估",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 1, 5), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
					{ID: 1, JobID: 10, RoundNumber: 1, Recommendation: domain.RecommendationFail, Ctime: 1000},
				}, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return([]domain.Attempt{
					{ID: 1, JobID: 10, RoundNumber: 1, IsSubmitted: true, EndedAt: 500},
					{ID: 2, JobID: 10, RoundNumber: 1, IsSubmitted: true, IsPassed: true, EndedAt: 3000},
				}, nil)
				m.repo.EXPECT().UpdateState(gomock.Any(), testApp(domain.StatusPassed, 2, 5), int64(5)).Return(nil)
				expectEvent(t, m, domain.StatusTestTaken, domain.StatusPassed)
			},
			wantRes: testApp(domain.StatusPassed, 2, 6),
		},
		{
			name: "管理员在考试之后判定不通过",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 1, 5), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
					{ID: 1, JobID: 10, RoundNumber: 1, Recommendation: domain.RecommendationFail, Ctime: 3000},
				}, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return([]domain.Attempt{
					{ID: 2, JobID: 10, RoundNumber: 1, IsSubmitted: true, IsPassed: true, EndedAt: 1000},
				}, nil)
				m.repo.EXPECT().UpdateState(gomock.Any(), testApp(domain.StatusFailed, 1, 5), int64(5)).Return(nil)
				expectEvent(t, m, domain.StatusTestTaken, domain.StatusFailed)
			},
			wantRes: testApp(domain.StatusFailed, 1, 6),
		},
		{
			name: "终态",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusRejected, 2, 5), nil)
			},
			wantErr: domain.ErrApplicationClosed,
		},
		{
			name: "并发修改之后重试",
			mock: func(m appMocks) {
				first := m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 1, 5), nil)
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusTestTaken, 1, 6), nil).After(first.Call)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(3), nil).Times(2)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
					{ID: 1, JobID: 10, RoundNumber: 1, Recommendation: domain.RecommendationPass},
				}, nil).Times(2)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return(nil, nil).Times(2)
				m.repo.EXPECT().UpdateState(gomock.Any(), gomock.Any(), int64(5)).Return(domain.ErrStaleState)
				m.repo.EXPECT().UpdateState(gomock.Any(), testApp(domain.StatusPassed, 2, 6), int64(6)).Return(nil)
				expectEvent(t, m, domain.StatusTestTaken, domain.StatusPassed)
			},
			wantRes: testApp(domain.StatusPassed, 2, 7),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAppMocks(ctrl)
			tc.mock(m)
			app, err := m.svc(Config{}).RecordRoundOutcome(context.Background(), admin, 100)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, app)
		})
	}
}

func TestApplicationService_SelectSlot(t *testing.T) {
	selected := testApp(domain.StatusSlotSelected, 1, 1)
	selected.SlotID = 7
	testCases := []struct {
		name    string
		mock    func(m appMocks)
		actor   domain.Actor
		wantErr error
		wantRes domain.Application
	}{
		{
			name: "预约成功",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(1)).Return(true, nil)
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusApplied, 1, 1), nil)
				m.slotSvc.EXPECT().Reserve(gomock.Any(), int64(7), selected, int64(1)).Return(nil)
				expectEvent(t, m, domain.StatusApplied, domain.StatusSlotSelected)
			},
			actor: candidate,
			wantRes: func() domain.Application {
				app := selected
				app.Version = 2
				return app
			}(),
		},
		{
			name: "时间段已满",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(1)).Return(true, nil)
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusApplied, 1, 1), nil)
				m.slotSvc.EXPECT().Reserve(gomock.Any(), int64(7), gomock.Any(), int64(1)).Return(domain.ErrSlotFull)
			},
			actor:   candidate,
			wantErr: domain.ErrCapacityExceeded,
		},
		{
			name: "并发预约，另一次请求已经成功",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(1)).Return(true, nil)
				first := m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusApplied, 1, 1), nil)
				m.slotSvc.EXPECT().Reserve(gomock.Any(), int64(7), gomock.Any(), int64(1)).Return(domain.ErrStaleState)
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(func() domain.Application {
					app := selected
					app.Version = 2
					return app
				}(), nil).After(first.Call)
			},
			actor:   candidate,
			wantErr: domain.ErrAlreadyBooked,
		},
		{
			name: "不能替别人预约",
			mock: func(m appMocks) {
				m.profileSvc.EXPECT().IsComplete(gomock.Any(), int64(2)).Return(true, nil)
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusApplied, 1, 1), nil)
			},
			actor:   domain.Actor{Uid: 2, Role: domain.RoleCandidate},
			wantErr: domain.ErrPermissionDenied,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAppMocks(ctrl)
			tc.mock(m)
			app, err := m.svc(Config{}).SelectSlot(context.Background(), tc.actor, 100, 7)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, app)
		})
	}
}

func TestApplicationService_SubmitTest(t *testing.T) {
	passed := domain.Attempt{
		ID:            5,
		ApplicationID: 100,
		JobID:         10,
		Uid:           1,
		RoundNumber:   2,
		TotalMarks:    10,
		PassingMarks:  6,
		ObtainedMarks: 7,
		IsPassed:      true,
		IsSubmitted:   true,
		EndedAt:       3000,
	}
	failed := passed
	failed.ObtainedMarks, failed.IsPassed = 3, false

	enabled := testApp(domain.StatusTestEnabled, 2, 4)
	enabled.AdminApproved, enabled.TestEnabled = true, true
	// 交卷的事务里已经标记为已考
	taken := enabled
	taken.TestEnabled, taken.Status, taken.Version = false, domain.StatusTestTaken, 5

	retake := passed
	retake.RoundNumber = 1
	retakeBefore := enabled
	retakeBefore.CurrentRound = 1
	retakeTaken := taken
	retakeTaken.CurrentRound = 1

	testCases := []struct {
		name    string
		mock    func(m appMocks)
		actor   domain.Actor
		wantErr error
		wantRes domain.Attempt
	}{
		{
			name: "最后一轮考试通过直接录用",
			mock: func(m appMocks) {
				m.attemptSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(domain.Attempt{ID: 5, Uid: 1}, nil)
				m.attemptSvc.EXPECT().Submit(gomock.Any(), int64(5), false).
					Return(domain.SubmitResult{Attempt: passed, Fresh: true, Application: enabled}, nil)
				expectEvent(t, m, domain.StatusTestEnabled, domain.StatusTestTaken)

				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(taken, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return(nil, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return([]domain.Attempt{passed}, nil)
				sel := taken
				sel.Status = domain.StatusSelected
				m.repo.EXPECT().UpdateState(gomock.Any(), sel, int64(5)).Return(nil)
				expectEvent(t, m, domain.StatusTestTaken, domain.StatusSelected)
			},
			actor:   candidate,
			wantRes: passed,
		},
		{
			name: "重考通过不受之前不通过的评估影响",
			mock: func(m appMocks) {
				m.attemptSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(domain.Attempt{ID: 5, Uid: 1}, nil)
				m.attemptSvc.EXPECT().Submit(gomock.Any(), int64(5), false).
					Return(domain.SubmitResult{Attempt: retake, Fresh: true, Application: retakeBefore}, nil)
				expectEvent(t, m, domain.StatusTestEnabled, domain.StatusTestTaken)

				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(retakeTaken, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
				m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
					{ID: 1, JobID: 10, RoundNumber: 1, Recommendation: domain.RecommendationFail, Ctime: 1000},
				}, nil)
				m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return([]domain.Attempt{
					{ID: 4, JobID: 10, RoundNumber: 1, IsSubmitted: true, EndedAt: 500},
					retake,
				}, nil)
				next := retakeTaken
				next.CurrentRound, next.Status = 2, domain.StatusPassed
				m.repo.EXPECT().UpdateState(gomock.Any(), next, int64(5)).Return(nil)
				expectEvent(t, m, domain.StatusTestTaken, domain.StatusPassed)
			},
			actor:   candidate,
			wantRes: retake,
		},
		{
			name: "未通过只记录交卷",
			mock: func(m appMocks) {
				m.attemptSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(domain.Attempt{ID: 5, Uid: 1}, nil)
				m.attemptSvc.EXPECT().Submit(gomock.Any(), int64(5), false).
					Return(domain.SubmitResult{Attempt: failed, Fresh: true, Application: enabled}, nil)
				expectEvent(t, m, domain.StatusTestEnabled, domain.StatusTestTaken)
			},
			actor:   candidate,
			wantRes: failed,
		},
		{
			name: "申请已经不在这一轮",
			mock: func(m appMocks) {
				m.attemptSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(domain.Attempt{ID: 5, Uid: 1}, nil)
				m.attemptSvc.EXPECT().Submit(gomock.Any(), int64(5), false).
					Return(domain.SubmitResult{Attempt: passed, Fresh: true}, nil)
			},
			actor:   candidate,
			wantRes: passed,
		},
		{
			name: "重复交卷",
			mock: func(m appMocks) {
				m.attemptSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(domain.Attempt{ID: 5, Uid: 1}, nil)
				m.attemptSvc.EXPECT().Submit(gomock.Any(), int64(5), false).
					Return(domain.SubmitResult{Attempt: passed}, nil)
			},
			actor:   candidate,
			wantRes: passed,
		},
		{
			name: "推进轮次失败不影响交卷",
			mock: func(m appMocks) {
				m.attemptSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(domain.Attempt{ID: 5, Uid: 1}, nil)
				m.attemptSvc.EXPECT().Submit(gomock.Any(), int64(5), false).
					Return(domain.SubmitResult{Attempt: passed, Fresh: true, Application: enabled}, nil)
				expectEvent(t, m, domain.StatusTestEnabled, domain.StatusTestTaken)
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(domain.Application{}, errors.New("db 错误"))
			},
			actor:   candidate,
			wantRes: passed,
		},
		{
			name: "不能提交别人的考试",
			mock: func(m appMocks) {
				m.attemptSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(domain.Attempt{ID: 5, Uid: 2}, nil)
			},
			actor:   candidate,
			wantErr: domain.ErrPermissionDenied,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAppMocks(ctrl)
			tc.mock(m)
			at, err := m.svc(Config{}).SubmitTest(context.Background(), tc.actor, 5)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, at)
		})
	}
}

func TestApplicationService_RecordViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newAppMocks(ctrl)
	svc := m.svc(Config{MaxViolations: 3})
	at := domain.Attempt{ID: 5, ApplicationID: 100, JobID: 10, Uid: 1, RoundNumber: 1}
	auto := at
	auto.IsSubmitted, auto.AutoSubmitted = true, true

	m.attemptSvc.EXPECT().Detail(gomock.Any(), int64(5)).Return(at, nil).Times(2)
	first := m.attemptSvc.EXPECT().RecordViolation(gomock.Any(), at, "tab_switch").Return(2, nil)
	m.attemptSvc.EXPECT().RecordViolation(gomock.Any(), at, "tab_switch").Return(3, nil).After(first.Call)
	enabled := testApp(domain.StatusTestEnabled, 1, 4)
	enabled.AdminApproved, enabled.TestEnabled = true, true
	m.attemptSvc.EXPECT().Submit(gomock.Any(), int64(5), true).
		Return(domain.SubmitResult{Attempt: auto, Fresh: true, Application: enabled}, nil)
	expectEvent(t, m, domain.StatusTestEnabled, domain.StatusTestTaken)

	res, err := svc.RecordViolation(context.Background(), candidate, 5, "tab_switch")
	require.NoError(t, err)
	assert.Equal(t, domain.ViolationResult{Total: 2, Attempt: at}, res)

	res, err = svc.RecordViolation(context.Background(), candidate, 5, "tab_switch")
	require.NoError(t, err)
	assert.Equal(t, domain.ViolationResult{Total: 3, AutoSubmitted: true, Attempt: auto}, res)
}

func TestApplicationService_StartTest(t *testing.T) {
	enabled := testApp(domain.StatusTestEnabled, 1, 4)
	enabled.AdminApproved, enabled.TestEnabled = true, true
	testCases := []struct {
		name    string
		mock    func(m appMocks)
		wantErr error
	}{
		{
			name: "开始考试",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(enabled, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
				m.qbSvc.EXPECT().TotalMarks(gomock.Any(), int64(10), 1).Return(10, nil)
				m.attemptSvc.EXPECT().Start(gomock.Any(), enabled, 1, 60, 10, 6).
					Return(domain.Attempt{ID: 5}, nil)
			},
		},
		{
			name: "考试没有开放",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(testApp(domain.StatusSlotSelected, 1, 4), nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
			},
			wantErr: domain.ErrTestNotEnabled,
		},
		{
			name: "面试轮次没有线上考试",
			mock: func(m appMocks) {
				app := enabled
				app.CurrentRound = 2
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(app, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
			},
			wantErr: domain.ErrNotOnlineRound,
		},
		{
			name: "已经有进行中的考试",
			mock: func(m appMocks) {
				m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(enabled, nil)
				m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
				m.qbSvc.EXPECT().TotalMarks(gomock.Any(), int64(10), 1).Return(10, nil)
				m.attemptSvc.EXPECT().Start(gomock.Any(), enabled, 1, 60, 10, 6).
					Return(domain.Attempt{}, domain.ErrAttemptAlreadyActive)
			},
			wantErr: domain.ErrAttemptAlreadyActive,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			m := newAppMocks(ctrl)
			tc.mock(m)
			_, err := m.svc(Config{}).StartTest(context.Background(), candidate, 100)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestApplicationService_RecordEvaluation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newAppMocks(ctrl)
	svc := m.svc(Config{})
	app := testApp(domain.StatusTestTaken, 1, 3)

	_, err := svc.RecordEvaluation(context.Background(), candidate, domain.Evaluation{ApplicationID: 100})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(app, nil)
	_, err = svc.RecordEvaluation(context.Background(), admin, domain.Evaluation{
		ApplicationID:  100,
		RoundNumber:    2,
		Recommendation: domain.RecommendationPass,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRound)

	// 当前轮次的通过评估会推进申请
	first := m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(app, nil)
	m.evalSvc.EXPECT().Record(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, e domain.Evaluation) (domain.Evaluation, error) {
			assert.Equal(t, int64(10), e.JobID)
			assert.Equal(t, admin.Uid, e.EvaluatorID)
			e.ID = 8
			return e, nil
		})
	m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(app, nil).After(first.Call)
	m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(2), nil)
	m.evalSvc.EXPECT().List(gomock.Any(), int64(100)).Return([]domain.Evaluation{
		{ID: 8, JobID: 10, RoundNumber: 1, Recommendation: domain.RecommendationPass},
	}, nil)
	m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return(nil, nil)
	m.repo.EXPECT().UpdateState(gomock.Any(), testApp(domain.StatusPassed, 2, 3), int64(3)).Return(nil)
	expectEvent(t, m, domain.StatusTestTaken, domain.StatusPassed)

	e, err := svc.RecordEvaluation(context.Background(), admin, domain.Evaluation{
		ApplicationID:  100,
		RoundNumber:    1,
		Recommendation: domain.RecommendationPass,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), e.ID)
}

func TestApplicationService_Breakdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newAppMocks(ctrl)
	app := testApp(domain.StatusTestEnabled, 2, 3)
	m.repo.EXPECT().FindById(gomock.Any(), int64(100)).Return(app, nil)
	m.jobSvc.EXPECT().Detail(gomock.Any(), int64(10)).Return(testJob(3), nil)
	m.attemptSvc.EXPECT().ListByApplication(gomock.Any(), int64(100)).Return([]domain.Attempt{
		{ID: 1, JobID: 10, RoundNumber: 1, IsSubmitted: true, IsPassed: true, ObtainedMarks: 8, TotalMarks: 10},
		{ID: 2, JobID: 9, RoundNumber: 2, IsSubmitted: true, IsPassed: true, ObtainedMarks: 9, TotalMarks: 10},
	}, nil)
	m.evalSvc.EXPECT().VisibleFeedback(gomock.Any(), int64(100)).Return(nil, nil)

	res, err := m.svc(Config{}).Breakdown(context.Background(), candidate, 100)
	require.NoError(t, err)
	assert.Equal(t, []domain.RoundBreakdown{
		{Round: 1, Name: "笔试", Status: domain.RoundPassed, Score: 8, Total: 10},
		{Round: 2, Name: "技术面", Status: domain.RoundPending},
		{Round: 3, Name: "HR面", Status: domain.RoundNotReached},
	}, res)
}
