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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/domain"
)

type Question struct {
	ID            int64    `json:"id,omitempty"`
	JobID         int64    `json:"jobId,omitempty"`
	RoundNumber   int      `json:"roundNumber,omitempty"`
	Content       string   `json:"content,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correctAnswer,omitempty"`
	Marks         int      `json:"marks,omitempty"`
	Utime         int64    `json:"utime,omitempty"`
}

type SaveReq struct {
	Question Question `json:"question"`
}

type ListReq struct {
	JobID       int64 `json:"jobId"`
	RoundNumber int   `json:"roundNumber"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

func (q Question) toDomain() domain.Question {
	return domain.Question{
		ID:            q.ID,
		JobID:         q.JobID,
		RoundNumber:   q.RoundNumber,
		Content:       q.Content,
		Options:       q.Options,
		CorrectAnswer: q.CorrectAnswer,
		Marks:         q.Marks,
	}
}

func newQuestions(qs []domain.Question) []Question {
	return slice.Map(qs, func(idx int, src domain.Question) Question {
		return Question{
			ID:            src.ID,
			JobID:         src.JobID,
			RoundNumber:   src.RoundNumber,
			Content:       src.Content,
			Options:       src.Options,
			CorrectAnswer: src.CorrectAnswer,
			Marks:         src.Marks,
			Utime:         src.Utime,
		}
	})
}
