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

import "errors"

var ErrInvalidJob = errors.New("职位信息不合法")

type RoundMode string

const (
	ModeOnlineAptitude  RoundMode = "online_aptitude"
	ModeOnlineTechnical RoundMode = "online_technical"
	ModeInPerson        RoundMode = "in_person"
	ModeInterview       RoundMode = "interview"
	ModeHRRound         RoundMode = "hr_round"
)

func (m RoundMode) String() string {
	return string(m)
}

func (m RoundMode) Valid() bool {
	switch m {
	case ModeOnlineAptitude, ModeOnlineTechnical, ModeInPerson, ModeInterview, ModeHRRound:
		return true
	}
	return false
}

// IsOnline 线上考试轮次才会有计时的 TestAttempt
func (m RoundMode) IsOnline() bool {
	return m == ModeOnlineAptitude || m == ModeOnlineTechnical
}

type Job struct {
	ID          int64
	Title       string
	Description string
	TotalRounds int
	Active      bool
	Rounds      []Round
	Ctime       int64
	Utime       int64
}

type Round struct {
	Number          int
	Name            string
	Mode            RoundMode
	Instructions    string
	DurationMinutes int
	PassingMarks    int
}

func (j Job) Round(number int) (Round, bool) {
	for _, r := range j.Rounds {
		if r.Number == number {
			return r, true
		}
	}
	return Round{}, false
}

func (j Job) Validate() error {
	if j.Title == "" || j.TotalRounds < 1 {
		return ErrInvalidJob
	}
	seen := make(map[int]struct{}, len(j.Rounds))
	for _, r := range j.Rounds {
		if r.Number < 1 || r.Number > j.TotalRounds || !r.Mode.Valid() {
			return ErrInvalidJob
		}
		if r.Mode.IsOnline() && r.DurationMinutes < 1 {
			return ErrInvalidJob
		}
		if r.PassingMarks < 0 {
			return ErrInvalidJob
		}
		if _, ok := seen[r.Number]; ok {
			return ErrInvalidJob
		}
		seen[r.Number] = struct{}{}
	}
	return nil
}
