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

import "time"

const (
	SlotDateLayout = "2006-01-02"
	SlotTimeLayout = "15:04"
)

type Slot struct {
	ID          int64
	Date        string
	StartTime   string
	EndTime     string
	MaxCapacity int
	Enabled     bool
	// Booked 实时统计的预约数，不落库
	Booked int
	Ctime  int64
	Utime  int64
}

func (s Slot) Remaining() int {
	if s.Booked >= s.MaxCapacity {
		return 0
	}
	return s.MaxCapacity - s.Booked
}

func (s Slot) Available() bool {
	return s.Enabled && s.Remaining() > 0
}

func (s Slot) Validate() error {
	if s.MaxCapacity < 1 {
		return ErrInvalidArgument
	}
	if _, err := time.Parse(SlotDateLayout, s.Date); err != nil {
		return ErrInvalidArgument
	}
	start, err := time.Parse(SlotTimeLayout, s.StartTime)
	if err != nil {
		return ErrInvalidArgument
	}
	end, err := time.Parse(SlotTimeLayout, s.EndTime)
	if err != nil || !end.After(start) {
		return ErrInvalidArgument
	}
	return nil
}
