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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository"
	repomocks "github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository/mocks"
	"go.uber.org/mock/gomock"
)

func TestEvaluationService_Record(t *testing.T) {
	params := map[int64]domain.Parameter{
		1: {ID: 1, Name: "沟通", MaxScore: 10, Active: true},
		2: {ID: 2, Name: "编码", MaxScore: 10, Active: true},
		3: {ID: 3, Name: "已停用", MaxScore: 5, Active: false},
	}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.EvaluationRepository
		e       domain.Evaluation
		wantErr error
		wantRes domain.Evaluation
	}{
		{
			name: "保存成功",
			mock: func(ctrl *gomock.Controller) repository.EvaluationRepository {
				repo := repomocks.NewMockEvaluationRepository(ctrl)
				repo.EXPECT().FindParameters(gomock.Any(), []int64{1, 2}).Return(params, nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, e domain.Evaluation) (int64, error) {
						assert.Equal(t, "沟通", e.Scores[0].ParameterName)
						assert.Equal(t, 10, e.Scores[1].MaxScore)
						return 5, nil
					})
				return repo
			},
			e: domain.Evaluation{
				ApplicationID:  1,
				RoundNumber:    2,
				Recommendation: domain.RecommendationPass,
				Scores: []domain.Score{
					{ParameterID: 1, Score: 8},
					{ParameterID: 2, Score: 10},
				},
			},
			wantRes: domain.Evaluation{
				ID:             5,
				ApplicationID:  1,
				RoundNumber:    2,
				Recommendation: domain.RecommendationPass,
				Scores: []domain.Score{
					{ParameterID: 1, ParameterName: "沟通", MaxScore: 10, Score: 8},
					{ParameterID: 2, ParameterName: "编码", MaxScore: 10, Score: 10},
				},
			},
		},
		{
			name: "推荐结果不合法",
			mock: func(ctrl *gomock.Controller) repository.EvaluationRepository {
				return repomocks.NewMockEvaluationRepository(ctrl)
			},
			e:       domain.Evaluation{ApplicationID: 1, RoundNumber: 1, Recommendation: "maybe"},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name: "轮次不合法",
			mock: func(ctrl *gomock.Controller) repository.EvaluationRepository {
				return repomocks.NewMockEvaluationRepository(ctrl)
			},
			e:       domain.Evaluation{ApplicationID: 1, Recommendation: domain.RecommendationHold},
			wantErr: domain.ErrInvalidRound,
		},
		{
			name: "同一个评估项打了两次分",
			mock: func(ctrl *gomock.Controller) repository.EvaluationRepository {
				return repomocks.NewMockEvaluationRepository(ctrl)
			},
			e: domain.Evaluation{
				ApplicationID:  1,
				RoundNumber:    1,
				Recommendation: domain.RecommendationHold,
				Scores:         []domain.Score{{ParameterID: 1, Score: 1}, {ParameterID: 1, Score: 2}},
			},
			wantErr: domain.ErrInvalidArgument,
		},
		{
			name: "超过满分",
			mock: func(ctrl *gomock.Controller) repository.EvaluationRepository {
				repo := repomocks.NewMockEvaluationRepository(ctrl)
				repo.EXPECT().FindParameters(gomock.Any(), []int64{1}).Return(params, nil)
				return repo
			},
			e: domain.Evaluation{
				ApplicationID:  1,
				RoundNumber:    1,
				Recommendation: domain.RecommendationPass,
				Scores:         []domain.Score{{ParameterID: 1, Score: 11}},
			},
			wantErr: domain.ErrScoreOutOfRange,
		},
		{
			name: "负分",
			mock: func(ctrl *gomock.Controller) repository.EvaluationRepository {
				repo := repomocks.NewMockEvaluationRepository(ctrl)
				repo.EXPECT().FindParameters(gomock.Any(), []int64{2}).Return(params, nil)
				return repo
			},
			e: domain.Evaluation{
				ApplicationID:  1,
				RoundNumber:    1,
				Recommendation: domain.RecommendationFail,
				Scores:         []domain.Score{{ParameterID: 2, Score: -1}},
			},
			wantErr: domain.ErrScoreOutOfRange,
		},
		{
			name: "评估项已停用",
			mock: func(ctrl *gomock.Controller) repository.EvaluationRepository {
				repo := repomocks.NewMockEvaluationRepository(ctrl)
				repo.EXPECT().FindParameters(gomock.Any(), []int64{3}).Return(params, nil)
				return repo
			},
			e: domain.Evaluation{
				ApplicationID:  1,
				RoundNumber:    1,
				Recommendation: domain.RecommendationPass,
				Scores:         []domain.Score{{ParameterID: 3, Score: 1}},
			},
			wantErr: domain.ErrParameterNotFound,
		},
		{
			name: "评估项不存在",
			mock: func(ctrl *gomock.Controller) repository.EvaluationRepository {
				repo := repomocks.NewMockEvaluationRepository(ctrl)
				repo.EXPECT().FindParameters(gomock.Any(), []int64{9}).Return(params, nil)
				return repo
			},
			e: domain.Evaluation{
				ApplicationID:  1,
				RoundNumber:    1,
				Recommendation: domain.RecommendationPass,
				Scores:         []domain.Score{{ParameterID: 9, Score: 1}},
			},
			wantErr: domain.ErrParameterNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewEvaluationService(tc.mock(ctrl))
			res, err := svc.Record(context.Background(), tc.e)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantRes, res)
		})
	}
}

func TestEvaluationService_SaveParameter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockEvaluationRepository(ctrl)
	repo.EXPECT().SaveParameter(gomock.Any(), domain.Parameter{Name: "沟通", MaxScore: 10, Active: true}).
		Return(int64(1), nil)
	svc := NewEvaluationService(repo)

	id, err := svc.SaveParameter(context.Background(), domain.Parameter{Name: " 沟通 ", MaxScore: 10, Active: true})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = svc.SaveParameter(context.Background(), domain.Parameter{Name: "编码"})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = svc.SaveParameter(context.Background(), domain.Parameter{MaxScore: 10})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestEvaluationService_VisibleFeedback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockEvaluationRepository(ctrl)
	repo.EXPECT().FindByApplication(gomock.Any(), int64(1), true).Return([]domain.Evaluation{
		{
			ID:             1,
			ApplicationID:  1,
			RoundNumber:    1,
			EvaluatorID:    99,
			Recommendation: domain.RecommendationPass,
			OverallRemarks: "表现不错",
			InternalNotes:  "薪资预期偏高",
			Visible:        true,
			Scores:         []domain.Score{{ParameterID: 1, ParameterName: "沟通", MaxScore: 10, Score: 9, Remarks: "内部"}},
		},
	}, nil)
	svc := NewEvaluationService(repo)

	evals, err := svc.VisibleFeedback(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, evals, 1)
	assert.Zero(t, evals[0].EvaluatorID)
	assert.Empty(t, evals[0].InternalNotes)
	assert.Empty(t, evals[0].Scores[0].Remarks)
	assert.Equal(t, "表现不错", evals[0].OverallRemarks)
	assert.Equal(t, float64(90), evals[0].Percentage())
}
