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
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/domain"
)

type Job struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	TotalRounds int     `json:"totalRounds,omitempty"`
	Active      bool    `json:"active,omitempty"`
	Rounds      []Round `json:"rounds,omitempty"`
	Utime       int64   `json:"utime,omitempty"`
}

type Round struct {
	Number          int    `json:"number"`
	Name            string `json:"name"`
	Mode            string `json:"mode"`
	Instructions    string `json:"instructions,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	PassingMarks    int    `json:"passingMarks,omitempty"`
}

type SaveReq struct {
	Job Job `json:"job"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type JobList struct {
	Total int64 `json:"total"`
	Jobs  []Job `json:"jobs"`
}

func newJob(job domain.Job) Job {
	return Job{
		ID:          job.ID,
		Title:       job.Title,
		Description: job.Description,
		TotalRounds: job.TotalRounds,
		Active:      job.Active,
		Utime:       job.Utime,
		Rounds: slice.Map(job.Rounds, func(idx int, src domain.Round) Round {
			return Round{
				Number:          src.Number,
				Name:            src.Name,
				Mode:            src.Mode.String(),
				Instructions:    src.Instructions,
				DurationMinutes: src.DurationMinutes,
				PassingMarks:    src.PassingMarks,
			}
		}),
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		ID:          j.ID,
		Title:       j.Title,
		Description: j.Description,
		TotalRounds: j.TotalRounds,
		Active:      j.Active,
		Rounds: slice.Map(j.Rounds, func(idx int, src Round) domain.Round {
			return domain.Round{
				Number:          src.Number,
				Name:            src.Name,
				Mode:            domain.RoundMode(src.Mode),
				Instructions:    src.Instructions,
				DurationMinutes: src.DurationMinutes,
				PassingMarks:    src.PassingMarks,
			}
		}),
	}
}

func newJobList(jobs []domain.Job, total int64) JobList {
	return JobList{
		Total: total,
		Jobs:  slice.Map(jobs, func(idx int, src domain.Job) Job { return newJob(src) }),
	}
}
