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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluation_Percentage(t *testing.T) {
	testCases := []struct {
		name string
		eval Evaluation
		want float64
	}{
		{
			name: "满分",
			eval: Evaluation{Scores: []Score{{Score: 10, MaxScore: 10}, {Score: 5, MaxScore: 5}}},
			want: 100,
		},
		{
			name: "部分得分",
			eval: Evaluation{Scores: []Score{{Score: 6, MaxScore: 10}, {Score: 3, MaxScore: 10}}},
			want: 45,
		},
		{
			name: "没有评分",
			eval: Evaluation{},
			want: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.eval.Percentage(), 0.0001)
		})
	}
}

func TestEvaluation_Feedback(t *testing.T) {
	e := Evaluation{
		ID:             1,
		EvaluatorID:    99,
		Recommendation: RecommendationPass,
		OverallRemarks: "表现不错",
		InternalNotes:  "沟通一般",
		Visible:        true,
		Scores: []Score{
			{ParameterID: 1, ParameterName: "编码", MaxScore: 10, Score: 8, Remarks: "细节欠缺"},
		},
	}
	fb := e.Feedback()
	assert.Equal(t, Evaluation{
		ID:             1,
		Recommendation: RecommendationPass,
		OverallRemarks: "表现不错",
		Visible:        true,
		Scores: []Score{
			{ParameterID: 1, ParameterName: "编码", MaxScore: 10, Score: 8},
		},
	}, fb)
	// 原始数据不受影响
	assert.Equal(t, "细节欠缺", e.Scores[0].Remarks)
}

func TestLatestEvaluation(t *testing.T) {
	evals := []Evaluation{
		{ID: 1, RoundNumber: 1, Recommendation: RecommendationHold, Ctime: 100},
		{ID: 2, RoundNumber: 1, Recommendation: RecommendationPass, Ctime: 200},
		{ID: 3, RoundNumber: 2, Recommendation: RecommendationFail, Ctime: 300},
		{ID: 4, RoundNumber: 1, Recommendation: RecommendationFail, Ctime: 200},
	}
	e, ok := LatestEvaluation(evals, 1)
	assert.True(t, ok)
	assert.Equal(t, int64(4), e.ID)
	_, ok = LatestEvaluation(evals, 3)
	assert.False(t, ok)
}

func TestLatestRoundRecord(t *testing.T) {
	testCases := []struct {
		name        string
		attempts    []Attempt
		evals       []Evaluation
		wantOk      bool
		wantOutcome RoundOutcome
		wantAt      int64
	}{
		{
			name: "没有记录",
			attempts: []Attempt{
				{RoundNumber: 1, StartedAt: 100},
				{RoundNumber: 2, IsSubmitted: true, IsPassed: true, EndedAt: 200},
			},
		},
		{
			name: "重考通过晚于未通过的评估",
			attempts: []Attempt{
				{ID: 1, RoundNumber: 1, IsSubmitted: true, EndedAt: 500},
				{ID: 2, RoundNumber: 1, IsSubmitted: true, IsPassed: true, EndedAt: 3000},
			},
			evals: []Evaluation{
				{ID: 1, RoundNumber: 1, Recommendation: RecommendationFail, Ctime: 1000},
			},
			wantOk:      true,
			wantOutcome: OutcomePass,
			wantAt:      3000,
		},
		{
			name: "评估晚于通过的考试",
			attempts: []Attempt{
				{ID: 1, RoundNumber: 1, IsSubmitted: true, IsPassed: true, EndedAt: 1000},
			},
			evals: []Evaluation{
				{ID: 1, RoundNumber: 1, Recommendation: RecommendationFail, Ctime: 2000},
			},
			wantOk:      true,
			wantOutcome: OutcomeFail,
			wantAt:      2000,
		},
		{
			name: "最新的考试未通过不给结论",
			attempts: []Attempt{
				{ID: 1, RoundNumber: 1, IsSubmitted: true, EndedAt: 2000},
			},
			evals: []Evaluation{
				{ID: 1, RoundNumber: 1, Recommendation: RecommendationPass, Ctime: 1000},
			},
			wantOk:      true,
			wantOutcome: OutcomeNone,
			wantAt:      2000,
		},
		{
			name: "时间相同评估优先",
			attempts: []Attempt{
				{ID: 1, RoundNumber: 1, IsSubmitted: true, IsPassed: true, EndedAt: 1000},
			},
			evals: []Evaluation{
				{ID: 1, RoundNumber: 1, Recommendation: RecommendationFail, Ctime: 1000},
			},
			wantOk:      true,
			wantOutcome: OutcomeFail,
			wantAt:      1000,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec, ok := LatestRoundRecord(tc.attempts, tc.evals, 1)
			assert.Equal(t, tc.wantOk, ok)
			if !ok {
				return
			}
			assert.Equal(t, tc.wantOutcome, rec.Outcome())
			assert.Equal(t, tc.wantAt, rec.At)
		})
	}
}

func TestBuildBreakdown(t *testing.T) {
	rounds := []RoundInfo{{Number: 1, Name: "笔试"}, {Number: 2, Name: "技术面"}, {Number: 3, Name: "HR 面"}}
	testCases := []struct {
		name     string
		app      Application
		attempts []Attempt
		evals    []Evaluation
		want     []RoundBreakdown
	}{
		{
			name: "重考通过覆盖之前的评估",
			app:  Application{CurrentRound: 2, Status: StatusPassed},
			attempts: []Attempt{
				{ID: 1, RoundNumber: 1, IsSubmitted: true, ObtainedMarks: 3, TotalMarks: 10, EndedAt: 500},
				{ID: 2, RoundNumber: 1, IsSubmitted: true, IsPassed: true, ObtainedMarks: 7, TotalMarks: 10, EndedAt: 2000},
			},
			evals: []Evaluation{
				{RoundNumber: 1, Recommendation: RecommendationFail, Ctime: 1000, Scores: []Score{{Score: 1, MaxScore: 10}}},
			},
			want: []RoundBreakdown{
				{Round: 1, Name: "笔试", Status: RoundPassed, Score: 7, Total: 10},
				{Round: 2, Name: "技术面", Status: RoundPending},
				{Round: 3, Name: "HR 面", Status: RoundNotReached},
			},
		},
		{
			name: "更晚的评估覆盖通过的考试",
			app:  Application{CurrentRound: 1, Status: StatusFailed},
			attempts: []Attempt{
				{RoundNumber: 1, IsSubmitted: true, IsPassed: true, ObtainedMarks: 7, TotalMarks: 10, EndedAt: 1000},
			},
			evals: []Evaluation{
				{RoundNumber: 1, Recommendation: RecommendationFail, Ctime: 2000, Scores: []Score{{Score: 1, MaxScore: 10}}},
			},
			want: []RoundBreakdown{
				{Round: 1, Name: "笔试", Status: RoundFailed, Score: 1, Total: 10},
				{Round: 2, Name: "技术面", Status: RoundNotReached},
				{Round: 3, Name: "HR 面", Status: RoundNotReached},
			},
		},
		{
			name: "评估晚于未通过的考试",
			app:  Application{CurrentRound: 1, Status: StatusTestTaken},
			attempts: []Attempt{
				{RoundNumber: 1, IsSubmitted: true, ObtainedMarks: 3, TotalMarks: 10, EndedAt: 1000},
			},
			evals: []Evaluation{
				{RoundNumber: 1, Recommendation: RecommendationHold, Ctime: 2000, Scores: []Score{{Score: 6, MaxScore: 10}}},
			},
			want: []RoundBreakdown{
				{Round: 1, Name: "笔试", Status: RoundOnHold, Score: 6, Total: 10},
				{Round: 2, Name: "技术面", Status: RoundNotReached},
				{Round: 3, Name: "HR 面", Status: RoundNotReached},
			},
		},
		{
			name: "评估之后重考进行中",
			app:  Application{CurrentRound: 1, Status: StatusTestEnabled},
			attempts: []Attempt{
				{RoundNumber: 1, TotalMarks: 10, StartedAt: 3000},
			},
			evals: []Evaluation{
				{RoundNumber: 1, Recommendation: RecommendationFail, Ctime: 2000},
			},
			want: []RoundBreakdown{
				{Round: 1, Name: "笔试", Status: RoundInProgress, Total: 10},
				{Round: 2, Name: "技术面", Status: RoundNotReached},
				{Round: 3, Name: "HR 面", Status: RoundNotReached},
			},
		},
		{
			name: "未通过和进行中",
			app:  Application{CurrentRound: 2, Status: StatusTestEnabled},
			attempts: []Attempt{
				{RoundNumber: 1, IsSubmitted: true, ObtainedMarks: 3, TotalMarks: 10, EndedAt: 1000},
				{RoundNumber: 2, TotalMarks: 20, StartedAt: 3000},
			},
			want: []RoundBreakdown{
				{Round: 1, Name: "笔试", Status: RoundFailed, Score: 3, Total: 10},
				{Round: 2, Name: "技术面", Status: RoundInProgress, Total: 20},
				{Round: 3, Name: "HR 面", Status: RoundNotReached},
			},
		},
		{
			name: "录用时推断之前的轮次全部通过",
			app:  Application{CurrentRound: 3, Status: StatusSelected},
			want: []RoundBreakdown{
				{Round: 1, Name: "笔试", Status: RoundPassed, Inferred: true},
				{Round: 2, Name: "技术面", Status: RoundPassed, Inferred: true},
				{Round: 3, Name: "HR 面", Status: RoundPassed, Inferred: true},
			},
		},
		{
			name: "拒绝时只有当前轮标记为拒绝",
			app:  Application{CurrentRound: 2, Status: StatusRejected},
			want: []RoundBreakdown{
				{Round: 1, Name: "笔试", Status: RoundPassed, Inferred: true},
				{Round: 2, Name: "技术面", Status: RoundRejected, Inferred: true},
				{Round: 3, Name: "HR 面", Status: RoundNotReached},
			},
		},
		{
			name: "未通过的当前轮",
			app:  Application{CurrentRound: 1, Status: StatusFailed},
			want: []RoundBreakdown{
				{Round: 1, Name: "笔试", Status: RoundFailed, Inferred: true},
				{Round: 2, Name: "技术面", Status: RoundNotReached},
				{Round: 3, Name: "HR 面", Status: RoundNotReached},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildBreakdown(tc.app, rounds, tc.attempts, tc.evals)
			assert.Equal(t, tc.want, got)
		})
	}
}
