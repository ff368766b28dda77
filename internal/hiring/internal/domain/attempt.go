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
	"strings"
	"time"
)

type AttemptStatus string

const (
	AttemptInProgress    AttemptStatus = "in_progress"
	AttemptSubmitted     AttemptStatus = "submitted"
	AttemptAutoSubmitted AttemptStatus = "auto_submitted"
)

type Attempt struct {
	ID              int64
	ApplicationID   int64
	JobID           int64
	Uid             int64
	RoundNumber     int
	StartedAt       int64
	EndedAt         int64
	DurationMinutes int
	TotalMarks      int
	PassingMarks    int
	// ObtainedMarks 和 IsPassed 只有提交之后才有意义
	ObtainedMarks int
	IsPassed      bool
	IsSubmitted   bool
	AutoSubmitted bool
	// AnswerVersion 每次作答加一，提交时用来确认判分期间没有新答案写入
	AnswerVersion int64
}

// Deadline 毫秒
func (a Attempt) Deadline() int64 {
	return a.StartedAt + int64(a.DurationMinutes)*time.Minute.Milliseconds()
}

func (a Attempt) Expired(now time.Time) bool {
	return now.UnixMilli() >= a.Deadline()
}

func (a Attempt) Status() AttemptStatus {
	switch {
	case !a.IsSubmitted:
		return AttemptInProgress
	case a.AutoSubmitted:
		return AttemptAutoSubmitted
	default:
		return AttemptSubmitted
	}
}

type Answer struct {
	ID             int64
	AttemptID      int64
	QuestionID     int64
	SelectedAnswer string
	// IsCorrect 判分时计算
	IsCorrect bool
}

// AnswerKey 题库提供的标准答案和分值
type AnswerKey struct {
	QuestionID    int64
	CorrectAnswer string
	Marks         int
}

type Violation struct {
	AttemptID int64
	Uid       int64
	Type      string
	Count     int
}

type GradeResult struct {
	Answers       []Answer
	ObtainedMarks int
	IsPassed      bool
}

// Grade 对所有答案判分，题库里找不到的题目按答错处理
func Grade(answers []Answer, keys map[int64]AnswerKey, passingMarks int) GradeResult {
	res := GradeResult{Answers: make([]Answer, 0, len(answers))}
	for _, ans := range answers {
		key, ok := keys[ans.QuestionID]
		ans.IsCorrect = ok && key.matches(ans.SelectedAnswer)
		if ans.IsCorrect {
			res.ObtainedMarks += key.Marks
		}
		res.Answers = append(res.Answers, ans)
	}
	res.IsPassed = res.ObtainedMarks >= passingMarks
	return res
}

func (k AnswerKey) matches(selected string) bool {
	selected = strings.TrimSpace(selected)
	return selected != "" && selected == strings.TrimSpace(k.CorrectAnswer)
}

// SubmitResult Fresh 为 false 说明这次调用之前已经提交过了
type SubmitResult struct {
	Attempt Attempt
	Fresh   bool
	// Application 交卷时一起被标记为已考的申请，取标记之前的值。
	// 申请已经不在这一轮时为零值
	Application Application
}
