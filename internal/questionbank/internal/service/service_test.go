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
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/repository"
	repomocks "github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/repository/mocks"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestService_AnswerKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockQuestionRepository(ctrl)
	repo.EXPECT().FindByRound(gomock.Any(), int64(1), 2).Return([]domain.Question{
		{ID: 11, CorrectAnswer: "A", Marks: 4},
		{ID: 12, CorrectAnswer: "C", Marks: 3},
		{ID: 13, CorrectAnswer: "B", Marks: 3},
	}, nil).Times(3)
	svc := NewService(repo)

	keys, err := svc.AnswerKeys(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, map[int64]domain.AnswerKey{
		11: {QuestionID: 11, CorrectAnswer: "A", Marks: 4},
		12: {QuestionID: 12, CorrectAnswer: "C", Marks: 3},
		13: {QuestionID: 13, CorrectAnswer: "B", Marks: 3},
	}, keys)

	total, err := svc.TotalMarks(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, total)

	qs, err := svc.ListForRound(context.Background(), 1, 2)
	require.NoError(t, err)
	for _, q := range qs {
		assert.Empty(t, q.CorrectAnswer)
	}
}

func TestService_Save(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.QuestionRepository
		q       domain.Question
		wantID  int64
		wantErr error
	}{
		{
			name: "新建",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				repo := repomocks.NewMockQuestionRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				return repo
			},
			q:      domain.Question{JobID: 1, RoundNumber: 1, Content: "1+1", CorrectAnswer: "2", Marks: 2},
			wantID: 3,
		},
		{
			name: "题目不合法",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				return repomocks.NewMockQuestionRepository(ctrl)
			},
			q:       domain.Question{JobID: 1, RoundNumber: 1, Content: "1+1"},
			wantErr: domain.ErrInvalidQuestion,
		},
		{
			name: "更新不存在的题目",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				repo := repomocks.NewMockQuestionRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(0), gorm.ErrRecordNotFound)
				return repo
			},
			q:       domain.Question{ID: 9, JobID: 1, RoundNumber: 1, Content: "1+1", CorrectAnswer: "2"},
			wantErr: ErrQuestionNotFound,
		},
		{
			name: "数据库错误",
			mock: func(ctrl *gomock.Controller) repository.QuestionRepository {
				repo := repomocks.NewMockQuestionRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("mock db error"))
				return repo
			},
			q:       domain.Question{JobID: 1, RoundNumber: 1, Content: "1+1", CorrectAnswer: "2"},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl))
			id, err := svc.Save(context.Background(), tc.q)
			if tc.wantErr != nil {
				assert.Equal(t, tc.wantErr.Error(), err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, id)
		})
	}
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockQuestionRepository(ctrl)
	q := domain.Question{ID: 1, JobID: 2, RoundNumber: 1}
	repo.EXPECT().FindById(gomock.Any(), int64(1)).Return(q, nil)
	repo.EXPECT().Delete(gomock.Any(), q).Return(nil)
	repo.EXPECT().FindById(gomock.Any(), int64(2)).Return(domain.Question{}, gorm.ErrRecordNotFound)
	svc := NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 2), ErrQuestionNotFound)
}
