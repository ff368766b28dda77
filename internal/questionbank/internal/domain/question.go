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
	"errors"
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

var ErrInvalidQuestion = errors.New("题目不合法")

type Question struct {
	ID            int64
	JobID         int64
	RoundNumber   int
	Content       string
	Options       []string
	CorrectAnswer string
	Marks         int
	Utime         int64
}

// AnswerKey 判分用的标准答案
type AnswerKey struct {
	QuestionID    int64
	CorrectAnswer string
	Marks         int
}

func (q Question) Validate() error {
	if q.JobID <= 0 || q.RoundNumber < 1 || q.Marks < 0 {
		return ErrInvalidQuestion
	}
	if strings.TrimSpace(q.Content) == "" || strings.TrimSpace(q.CorrectAnswer) == "" {
		return ErrInvalidQuestion
	}
	if len(q.Options) > 0 && !slice.Contains(q.Options, q.CorrectAnswer) {
		return ErrInvalidQuestion
	}
	return nil
}

// Stripped 给候选人看的版本，不带答案
func (q Question) Stripped() Question {
	q.CorrectAnswer = ""
	return q
}

func (q Question) AnswerKey() AnswerKey {
	return AnswerKey{
		QuestionID:    q.ID,
		CorrectAnswer: q.CorrectAnswer,
		Marks:         q.Marks,
	}
}
