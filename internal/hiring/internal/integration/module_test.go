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

//go:build e2e

package integration

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/ego-component/egorm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost"
	"github.com/webflowdev33/talent-bridge-sub000/internal/profile"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank"
	testioc "github.com/webflowdev33/talent-bridge-sub000/internal/test/ioc"
	"golang.org/x/sync/errgroup"
)

var admin = domain.Actor{Uid: 999, Role: domain.RoleAdmin}

type ModuleTestSuite struct {
	suite.Suite
	db        *egorm.Component
	module    *hiring.Module
	jobModule *jobpost.Module
	qbModule  *questionbank.Module
	pfModule  *profile.Module
}

func TestModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	cache := testioc.InitCache()
	var err error
	s.jobModule, err = jobpost.InitModule(s.db, cache)
	require.NoError(s.T(), err)
	s.qbModule, err = questionbank.InitModule(s.db, cache)
	require.NoError(s.T(), err)
	s.pfModule = profile.InitModule(s.db)
	s.module, err = hiring.InitModule(s.db, testioc.InitMQ(), s.jobModule, s.qbModule, s.pfModule)
	require.NoError(s.T(), err)
}

func (s *ModuleTestSuite) TearDownTest() {
	for _, table := range s.tables() {
		err := s.db.Exec(fmt.Sprintf("TRUNCATE TABLE `%s`", table)).Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) TearDownSuite() {
	for _, table := range s.tables() {
		err := s.db.Exec(fmt.Sprintf("DROP TABLE `%s`", table)).Error
		s.NoError(err)
	}
}

func (s *ModuleTestSuite) tables() []string {
	return []string{"applications", "slots", "test_attempts", "answers", "violations",
		"evaluation_parameters", "evaluations", "evaluation_scores",
		"jobs", "job_rounds", "questions", "profiles"}
}

// 最后一个座位被并发抢占时只有一个申请能成功
func (s *ModuleTestSuite) TestSelectSlot_LastSeat() {
	t := s.T()
	ctx := context.Background()
	jobID := s.newJob(t, 1)
	slotID := s.newSlot(t, 1)

	const n = 8
	apps := make([]domain.Application, n)
	for i := 0; i < n; i++ {
		apps[i] = s.apply(t, int64(i+1), jobID)
	}

	var succeeded, full atomic.Int32
	var eg errgroup.Group
	for i := range apps {
		app := apps[i]
		eg.Go(func() error {
			actor := domain.Actor{Uid: app.Uid, Role: domain.RoleCandidate}
			_, err := s.module.Svc.SelectSlot(ctx, actor, app.ID, slotID)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, domain.ErrSlotFull):
				full.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
	assert.Equal(t, int32(1), succeeded.Load())
	assert.Equal(t, int32(n-1), full.Load())

	slot, err := s.module.SlotSvc.Detail(ctx, slotID)
	require.NoError(t, err)
	assert.Equal(t, 1, slot.Booked)
}

// 删除占座的申请之后座位立刻可以被别人预约
func (s *ModuleTestSuite) TestDelete_ReleasesSeat() {
	t := s.T()
	ctx := context.Background()
	jobID := s.newJob(t, 1)
	slotID := s.newSlot(t, 1)

	holder := s.apply(t, 1, jobID)
	holderActor := domain.Actor{Uid: 1, Role: domain.RoleCandidate}
	_, err := s.module.Svc.SelectSlot(ctx, holderActor, holder.ID, slotID)
	require.NoError(t, err)

	other := s.apply(t, 2, jobID)
	otherActor := domain.Actor{Uid: 2, Role: domain.RoleCandidate}
	_, err = s.module.Svc.SelectSlot(ctx, otherActor, other.ID, slotID)
	assert.ErrorIs(t, err, domain.ErrSlotFull)

	err = s.module.Svc.Delete(ctx, holderActor, holder.ID)
	require.NoError(t, err)

	app, err := s.module.Svc.SelectSlot(ctx, otherActor, other.ID, slotID)
	require.NoError(t, err)
	assert.Equal(t, slotID, app.SlotID)
	assert.Equal(t, domain.StatusSlotSelected, app.Status)

	// 删除之后可以重新申请同一个职位
	again := s.apply(t, 1, jobID)
	assert.NotEqual(t, holder.ID, again.ID)
}

// 单轮职位，线上考试通过之后直接录用
func (s *ModuleTestSuite) TestPipeline_PassLastRound() {
	t := s.T()
	ctx := context.Background()
	jobID := s.newJob(t, 1)
	slotID := s.newSlot(t, 5)
	keys := []struct {
		answer string
		marks  int
	}{{"A", 4}, {"B", 3}, {"C", 3}}
	qids := make([]int64, 0, len(keys))
	for i, k := range keys {
		id, err := s.qbModule.Svc.Save(ctx, questionbank.Question{
			JobID:         jobID,
			RoundNumber:   1,
			Content:       fmt.Sprintf("题目%d", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: k.answer,
			Marks:         k.marks,
		})
		require.NoError(t, err)
		qids = append(qids, id)
	}

	candidate := domain.Actor{Uid: 1, Role: domain.RoleCandidate}
	app := s.apply(t, candidate.Uid, jobID)
	app, err := s.module.Svc.SelectSlot(ctx, candidate, app.ID, slotID)
	require.NoError(t, err)
	app, err = s.module.Svc.Approve(ctx, admin, app.ID, app.Version)
	require.NoError(t, err)
	app, err = s.module.Svc.EnableTest(ctx, admin, app.ID, 1, app.Version)
	require.NoError(t, err)

	at, err := s.module.Svc.StartTest(ctx, candidate, app.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, at.TotalMarks)
	_, err = s.module.Svc.StartTest(ctx, candidate, app.ID)
	assert.ErrorIs(t, err, domain.ErrAttemptAlreadyActive)

	require.NoError(t, s.module.Svc.RecordAnswer(ctx, candidate, at.ID, qids[0], "A"))
	require.NoError(t, s.module.Svc.RecordAnswer(ctx, candidate, at.ID, qids[1], "B"))
	require.NoError(t, s.module.Svc.RecordAnswer(ctx, candidate, at.ID, qids[2], "D"))

	submitted, err := s.module.Svc.SubmitTest(ctx, candidate, at.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, submitted.ObtainedMarks)
	assert.True(t, submitted.IsPassed)

	// 重复提交不改变结果
	again, err := s.module.Svc.SubmitTest(ctx, candidate, at.ID)
	require.NoError(t, err)
	assert.Equal(t, submitted.ObtainedMarks, again.ObtainedMarks)
	assert.Equal(t, submitted.IsPassed, again.IsPassed)

	app, err = s.module.Svc.Detail(ctx, candidate, app.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSelected, app.Status)
	assert.Equal(t, 1, app.CurrentRound)
}

func (s *ModuleTestSuite) newJob(t *testing.T, rounds int) int64 {
	job := jobpost.Job{
		Title:       "后端工程师",
		TotalRounds: rounds,
		Active:      true,
	}
	for i := 1; i <= rounds; i++ {
		job.Rounds = append(job.Rounds, jobpost.Round{
			Number:          i,
			Name:            fmt.Sprintf("第%d轮", i),
			Mode:            jobpost.ModeOnlineAptitude,
			DurationMinutes: 60,
			PassingMarks:    6,
		})
	}
	id, err := s.jobModule.Svc.Save(context.Background(), job)
	require.NoError(t, err)
	return id
}

func (s *ModuleTestSuite) newSlot(t *testing.T, capacity int) int64 {
	id, err := s.module.SlotSvc.Save(context.Background(), domain.Slot{
		Date:        "2099-01-01",
		StartTime:   "09:00",
		EndTime:     "10:00",
		MaxCapacity: capacity,
		Enabled:     true,
	})
	require.NoError(t, err)
	return id
}

func (s *ModuleTestSuite) apply(t *testing.T, uid, jobID int64) domain.Application {
	ctx := context.Background()
	err := s.pfModule.Svc.Save(ctx, profile.Profile{
		Uid:       uid,
		Name:      fmt.Sprintf("候选人%d", uid),
		Phone:     "13800000000",
		ResumeURL: "https://cdn.example.com/resume.pdf",
	})
	require.NoError(t, err)
	app, err := s.module.Svc.Apply(ctx, domain.Actor{Uid: uid, Role: domain.RoleCandidate}, jobID)
	require.NoError(t, err)
	return app
}
