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

type RoundState string

const (
	RoundPassed     RoundState = "passed"
	RoundFailed     RoundState = "failed"
	RoundOnHold     RoundState = "on_hold"
	RoundInProgress RoundState = "in_progress"
	RoundPending    RoundState = "pending"
	RoundRejected   RoundState = "rejected"
	RoundNotReached RoundState = "not_reached"
)

// RoundInfo 职位某一轮的配置
type RoundInfo struct {
	Number int
	Name   string
}

type RoundBreakdown struct {
	Round  int
	Name   string
	Status RoundState
	Score  int
	Total  int
	// Inferred 为 true 表示这一轮没有任何落库的结果，状态是根据申请推断的
	Inferred bool
}

// RoundRecord 某一轮落库的一条结果，来自评估或者已提交的考试
type RoundRecord struct {
	Evaluation     Evaluation
	Attempt        Attempt
	FromEvaluation bool
	// At 评估的创建时间或者考试的交卷时间，毫秒
	At int64
}

// Outcome 未通过的考试不给结论，交给管理员评估
func (r RoundRecord) Outcome() RoundOutcome {
	if r.FromEvaluation {
		return r.Evaluation.Recommendation.Outcome()
	}
	if r.Attempt.IsPassed {
		return OutcomePass
	}
	return OutcomeNone
}

// LatestRoundRecord 评估和已提交的考试里面最晚的一条。
// 时间相同的时候评估优先
func LatestRoundRecord(attempts []Attempt, evals []Evaluation, round int) (RoundRecord, bool) {
	var (
		res   RoundRecord
		found bool
	)
	if e, ok := LatestEvaluation(evals, round); ok {
		res, found = RoundRecord{Evaluation: e, FromEvaluation: true, At: e.Ctime}, true
	}
	at, ok := latestSubmitted(attempts, round)
	if ok && (!found || at.EndedAt > res.At) {
		res, found = RoundRecord{Attempt: at, At: at.EndedAt}, true
	}
	return res, found
}

func latestSubmitted(attempts []Attempt, round int) (Attempt, bool) {
	var (
		res   Attempt
		found bool
	)
	for _, at := range attempts {
		if at.RoundNumber != round || !at.IsSubmitted {
			continue
		}
		if !found || at.EndedAt > res.EndedAt ||
			(at.EndedAt == res.EndedAt && at.ID > res.ID) {
			res, found = at, true
		}
	}
	return res, found
}

// BuildBreakdown 计算每一轮的展示状态。优先级：
//  1. 晚于最新结果开始的未提交考试
//  2. 最新的一条结果，评估和已提交的考试按时间比较
//  3. 根据 current_round 和 status 推断
func BuildBreakdown(app Application, rounds []RoundInfo, attempts []Attempt, evals []Evaluation) []RoundBreakdown {
	res := make([]RoundBreakdown, 0, len(rounds))
	for _, r := range rounds {
		res = append(res, breakdownOf(app, r, attempts, evals))
	}
	return res
}

func breakdownOf(app Application, r RoundInfo, attempts []Attempt, evals []Evaluation) RoundBreakdown {
	rb := RoundBreakdown{Round: r.Number, Name: r.Name}
	rec, ok := LatestRoundRecord(attempts, evals, r.Number)
	for _, at := range attempts {
		if at.RoundNumber == r.Number && !at.IsSubmitted && (!ok || at.StartedAt > rec.At) {
			rb.Status, rb.Total = RoundInProgress, at.TotalMarks
			return rb
		}
	}
	if !ok {
		rb.Status, rb.Inferred = inferRoundState(app, r.Number)
		return rb
	}
	if !rec.FromEvaluation {
		rb.Score, rb.Total = rec.Attempt.ObtainedMarks, rec.Attempt.TotalMarks
		rb.Status = RoundFailed
		if rec.Attempt.IsPassed {
			rb.Status = RoundPassed
		}
		return rb
	}
	rb.Score, rb.Total = evaluationScore(rec.Evaluation)
	switch rec.Evaluation.Recommendation {
	case RecommendationPass:
		rb.Status = RoundPassed
	case RecommendationFail:
		rb.Status = RoundFailed
	default:
		rb.Status = RoundOnHold
	}
	return rb
}

func evaluationScore(e Evaluation) (int, int) {
	var got, total int
	for _, s := range e.Scores {
		got += s.Score
		total += s.MaxScore
	}
	return got, total
}

// inferRoundState 没有任何记录时的兜底推断：
// 早于当前轮的视为通过，晚于当前轮的视为未到达，
// 当前轮按申请状态决定
func inferRoundState(app Application, round int) (RoundState, bool) {
	switch {
	case round < app.CurrentRound:
		return RoundPassed, true
	case round > app.CurrentRound:
		return RoundNotReached, false
	}
	switch app.Status {
	case StatusSelected:
		return RoundPassed, true
	case StatusRejected:
		return RoundRejected, true
	case StatusFailed:
		return RoundFailed, true
	default:
		return RoundPending, false
	}
}
