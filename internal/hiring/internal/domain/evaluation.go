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

type Recommendation string

const (
	RecommendationPass Recommendation = "pass"
	RecommendationFail Recommendation = "fail"
	RecommendationHold Recommendation = "hold"
)

func (r Recommendation) Valid() bool {
	return r == RecommendationPass || r == RecommendationFail || r == RecommendationHold
}

func (r Recommendation) Outcome() RoundOutcome {
	switch r {
	case RecommendationPass:
		return OutcomePass
	case RecommendationFail:
		return OutcomeFail
	default:
		return OutcomeNone
	}
}

// Parameter 全局的评估项
type Parameter struct {
	ID          int64
	Name        string
	Description string
	MaxScore    int
	Active      bool
}

type Evaluation struct {
	ID             int64
	ApplicationID  int64
	JobID          int64
	RoundNumber    int
	EvaluatorID    int64
	Recommendation Recommendation
	OverallRemarks string
	// InternalNotes 只给管理员看
	InternalNotes string
	Visible       bool
	Scores        []Score
	Ctime         int64
}

type Score struct {
	ParameterID   int64
	ParameterName string
	MaxScore      int
	Score         int
	Remarks       string
}

// Percentage 按当前评估项满分计算，结果在 0 到 100 之间
func (e Evaluation) Percentage() float64 {
	var got, total int
	for _, s := range e.Scores {
		got += s.Score
		total += s.MaxScore
	}
	if total == 0 {
		return 0
	}
	return float64(got) * 100 / float64(total)
}

// Feedback 候选人可见的版本，去掉评估人和内部备注
func (e Evaluation) Feedback() Evaluation {
	scores := make([]Score, 0, len(e.Scores))
	for _, s := range e.Scores {
		s.Remarks = ""
		scores = append(scores, s)
	}
	e.EvaluatorID = 0
	e.InternalNotes = ""
	e.Scores = scores
	return e
}

// after 判断 e 是否比 other 更新
func (e Evaluation) after(other Evaluation) bool {
	if e.Ctime != other.Ctime {
		return e.Ctime > other.Ctime
	}
	return e.ID > other.ID
}

// LatestEvaluation 某一轮最新的评估，最新的那条才算数
func LatestEvaluation(evals []Evaluation, round int) (Evaluation, bool) {
	var (
		res   Evaluation
		found bool
	)
	for _, e := range evals {
		if e.RoundNumber != round {
			continue
		}
		if !found || e.after(res) {
			res, found = e, true
		}
	}
	return res, found
}
