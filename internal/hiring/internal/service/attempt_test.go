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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	repomocks "github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository/mocks"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank"
	questionbankmocks "github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/mocks"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

func newTestAttemptService(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) *attemptService {
	svc := NewAttemptService(repo, qb).(*attemptService)
	svc.now = func() time.Time { return testNow }
	return svc
}

// 十道题，每题 1 分，标准答案都是 A
func tenQuestionKeys() map[int64]questionbank.AnswerKey {
	keys := make(map[int64]questionbank.AnswerKey, 10)
	for i := int64(1); i <= 10; i++ {
		keys[i] = questionbank.AnswerKey{QuestionID: i, CorrectAnswer: "A", Marks: 1}
	}
	return keys
}

func TestAttemptService_Submit(t *testing.T) {
	inProgress := domain.Attempt{
		ID:              1,
		ApplicationID:   2,
		JobID:           3,
		Uid:             4,
		RoundNumber:     1,
		StartedAt:       testNow.Add(-time.Minute * 30).UnixMilli(),
		DurationMinutes: 60,
		TotalMarks:      10,
		PassingMarks:    6,
		AnswerVersion:   10,
	}
	// 7 道答对，3 道答错
	answers := make([]domain.Answer, 0, 10)
	for i := int64(1); i <= 10; i++ {
		selected := "A"
		if i > 7 {
			selected = "B"
		}
		answers = append(answers, domain.Answer{AttemptID: 1, QuestionID: i, SelectedAnswer: selected})
	}
	submitted := inProgress
	submitted.IsSubmitted = true
	submitted.ObtainedMarks = 7
	submitted.IsPassed = true
	submitted.EndedAt = testNow.UnixMilli()

	testCases := []struct {
		name      string
		mock      func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService)
		auto      bool
		wantErr   error
		wantFresh bool
		wantAt    domain.Attempt
		wantApp   domain.Application
	}{
		{
			name: "手动交卷",
			mock: func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(inProgress, nil)
				repo.EXPECT().FindAnswers(gomock.Any(), int64(1)).Return(answers, nil)
				qb.EXPECT().AnswerKeys(gomock.Any(), int64(3), 1).Return(tenQuestionKeys(), nil)
				repo.EXPECT().Finish(gomock.Any(), submitted, gomock.Any()).
					DoAndReturn(func(ctx context.Context, at domain.Attempt, answers []domain.Answer) (domain.Application, error) {
						correct := 0
						for _, ans := range answers {
							if ans.IsCorrect {
								correct++
							}
						}
						assert.Equal(t, 7, correct)
						return domain.Application{ID: 100, Status: domain.StatusTestEnabled, TestEnabled: true}, nil
					})
			},
			wantFresh: true,
			wantAt:    submitted,
			wantApp:   domain.Application{ID: 100, Status: domain.StatusTestEnabled, TestEnabled: true},
		},
		{
			name: "已经提交过",
			mock: func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(submitted, nil)
			},
			wantAt: submitted,
		},
		{
			name: "并发提交，另一方先完成",
			mock: func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) {
				first := repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(inProgress, nil)
				repo.EXPECT().FindAnswers(gomock.Any(), int64(1)).Return(answers, nil)
				qb.EXPECT().AnswerKeys(gomock.Any(), int64(3), 1).Return(tenQuestionKeys(), nil)
				auto := submitted
				auto.AutoSubmitted = true
				repo.EXPECT().Finish(gomock.Any(), auto, gomock.Any()).Return(domain.Application{}, domain.ErrStaleState)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(submitted, nil).After(first.Call)
			},
			auto:   true,
			wantAt: submitted,
		},
		{
			name: "一直冲突",
			mock: func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(inProgress, nil).Times(maxSubmitRetries)
				repo.EXPECT().FindAnswers(gomock.Any(), int64(1)).Return(answers, nil).Times(maxSubmitRetries)
				qb.EXPECT().AnswerKeys(gomock.Any(), int64(3), 1).Return(tenQuestionKeys(), nil).Times(maxSubmitRetries)
				repo.EXPECT().Finish(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.Application{}, domain.ErrStaleState).Times(maxSubmitRetries)
			},
			wantErr: domain.ErrStaleState,
		},
		{
			name: "考试不存在",
			mock: func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) {
				repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(domain.Attempt{}, domain.ErrAttemptNotFound)
			},
			wantErr: domain.ErrAttemptNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockAttemptRepository(ctrl)
			qb := questionbankmocks.NewMockService(ctrl)
			tc.mock(repo, qb)
			svc := newTestAttemptService(repo, qb)

			res, err := svc.Submit(context.Background(), 1, tc.auto)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantFresh, res.Fresh)
			assert.Equal(t, tc.wantAt, res.Attempt)
			assert.Equal(t, tc.wantApp, res.Application)
		})
	}
}

func TestAttemptService_RecordAnswer(t *testing.T) {
	active := domain.Attempt{
		ID:              1,
		JobID:           3,
		RoundNumber:     1,
		StartedAt:       testNow.Add(-time.Minute * 10).UnixMilli(),
		DurationMinutes: 60,
	}
	expired := active
	expired.StartedAt = testNow.Add(-time.Hour).UnixMilli()
	submitted := active
	submitted.IsSubmitted = true

	testCases := []struct {
		name     string
		mock     func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService)
		at       domain.Attempt
		question int64
		wantErr  error
	}{
		{
			name: "作答",
			mock: func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) {
				qb.EXPECT().AnswerKeys(gomock.Any(), int64(3), 1).Return(tenQuestionKeys(), nil)
				repo.EXPECT().SaveAnswer(gomock.Any(), domain.Answer{
					AttemptID:      1,
					QuestionID:     2,
					SelectedAnswer: "A",
				}).Return(nil)
			},
			at:       active,
			question: 2,
		},
		{
			name: "题目不属于本轮",
			mock: func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) {
				qb.EXPECT().AnswerKeys(gomock.Any(), int64(3), 1).Return(tenQuestionKeys(), nil)
			},
			at:       active,
			question: 11,
			wantErr:  domain.ErrQuestionNotFound,
		},
		{
			name:     "已经超时",
			mock:     func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) {},
			at:       expired,
			question: 2,
			wantErr:  domain.ErrAttemptExpired,
		},
		{
			name:     "已经提交",
			mock:     func(repo *repomocks.MockAttemptRepository, qb *questionbankmocks.MockService) {},
			at:       submitted,
			question: 2,
			wantErr:  domain.ErrAttemptSubmitted,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockAttemptRepository(ctrl)
			qb := questionbankmocks.NewMockService(ctrl)
			tc.mock(repo, qb)
			svc := newTestAttemptService(repo, qb)

			err := svc.RecordAnswer(context.Background(), tc.at, tc.question, " A ")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAttemptService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockAttemptRepository(ctrl)
	svc := newTestAttemptService(repo, questionbankmocks.NewMockService(ctrl))
	app := domain.Application{ID: 2, JobID: 3, Uid: 4, CurrentRound: 1, TestEnabled: true, Version: 5}

	repo.EXPECT().Start(gomock.Any(), domain.Attempt{
		ApplicationID:   2,
		JobID:           3,
		Uid:             4,
		RoundNumber:     1,
		StartedAt:       testNow.UnixMilli(),
		DurationMinutes: 60,
		TotalMarks:      10,
		PassingMarks:    6,
	}, int64(5)).Return(int64(7), nil)
	at, err := svc.Start(context.Background(), app, 1, 60, 10, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(7), at.ID)
	assert.Equal(t, testNow.Add(time.Hour).UnixMilli(), at.Deadline())

	_, err = svc.Start(context.Background(), app, 1, 60, 10, 11)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = svc.Start(context.Background(), app, 1, 0, 10, 6)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAttemptService_RecordViolation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockAttemptRepository(ctrl)
	svc := newTestAttemptService(repo, questionbankmocks.NewMockService(ctrl))
	at := domain.Attempt{ID: 1, Uid: 4}

	repo.EXPECT().IncrViolation(gomock.Any(), domain.Violation{AttemptID: 1, Uid: 4, Type: "tab_switch"}).
		Return(2, nil)
	total, err := svc.RecordViolation(context.Background(), at, " tab_switch ")
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	_, err = svc.RecordViolation(context.Background(), at, "")
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	at.IsSubmitted = true
	_, err = svc.RecordViolation(context.Background(), at, "tab_switch")
	assert.ErrorIs(t, err, domain.ErrAttemptSubmitted)
}
