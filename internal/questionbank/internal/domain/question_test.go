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

func TestQuestion_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		q       Question
		wantErr error
	}{
		{
			name: "选择题",
			q:    Question{JobID: 1, RoundNumber: 1, Content: "1+1", Options: []string{"1", "2"}, CorrectAnswer: "2", Marks: 3},
		},
		{
			name: "填空题",
			q:    Question{JobID: 1, RoundNumber: 1, Content: "1+1", CorrectAnswer: "2", Marks: 3},
		},
		{
			name:    "答案不在选项里",
			q:       Question{JobID: 1, RoundNumber: 1, Content: "1+1", Options: []string{"1", "3"}, CorrectAnswer: "2", Marks: 3},
			wantErr: ErrInvalidQuestion,
		},
		{
			name:    "负分",
			q:       Question{JobID: 1, RoundNumber: 1, Content: "1+1", CorrectAnswer: "2", Marks: -1},
			wantErr: ErrInvalidQuestion,
		},
		{
			name:    "没有职位",
			q:       Question{RoundNumber: 1, Content: "1+1", CorrectAnswer: "2"},
			wantErr: ErrInvalidQuestion,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.q.Validate(), tc.wantErr)
		})
	}
}

func TestQuestion_Stripped(t *testing.T) {
	q := Question{ID: 1, Content: "1+1", Options: []string{"1", "2"}, CorrectAnswer: "2", Marks: 3}
	s := q.Stripped()
	assert.Empty(t, s.CorrectAnswer)
	assert.Equal(t, q.Options, s.Options)
	assert.Equal(t, AnswerKey{QuestionID: 1, CorrectAnswer: "2", Marks: 3}, q.AnswerKey())
}
