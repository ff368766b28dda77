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

type ApplicationStatus string

const (
	StatusApplied      ApplicationStatus = "applied"
	StatusSlotSelected ApplicationStatus = "slot_selected"
	StatusTestEnabled  ApplicationStatus = "test_enabled"
	StatusTestTaken    ApplicationStatus = "test_taken"
	// StatusPassed 本轮通过，等待下一轮
	StatusPassed ApplicationStatus = "passed"
	// StatusFailed 本轮未通过，管理员仍然可以推翻
	StatusFailed   ApplicationStatus = "failed"
	StatusSelected ApplicationStatus = "selected"
	StatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string {
	return string(s)
}

// IsTerminal selected 和 rejected 是终态
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusSelected || s == StatusRejected
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusSlotSelected, StatusTestEnabled, StatusTestTaken,
		StatusPassed, StatusFailed, StatusSelected, StatusRejected:
		return true
	}
	return false
}

// RoundOutcome 一轮的结果
type RoundOutcome uint8

const (
	OutcomeNone RoundOutcome = iota
	OutcomePass
	OutcomeFail
)

func (o RoundOutcome) String() string {
	switch o {
	case OutcomePass:
		return "pass"
	case OutcomeFail:
		return "fail"
	default:
		return "none"
	}
}

type Application struct {
	ID    int64
	JobID int64
	Uid   int64
	// SlotID 为 0 表示没有预约
	SlotID        int64
	CurrentRound  int
	AdminApproved bool
	TestEnabled   bool
	Status        ApplicationStatus
	// Version 每次状态变更加一，用于乐观锁
	Version int64
	Ctime   int64
	Utime   int64
}

func NewApplication(uid, jobID int64) Application {
	return Application{
		JobID:        jobID,
		Uid:          uid,
		CurrentRound: 1,
		Status:       StatusApplied,
	}
}

func (a Application) HasSlot() bool {
	return a.SlotID > 0
}

func (a Application) IsTerminal() bool {
	return a.Status.IsTerminal()
}

// CanTakeTest 候选人当前能否开始 round 轮的考试
func (a Application) CanTakeTest(round int) bool {
	return !a.IsTerminal() && a.TestEnabled && a.CurrentRound == round
}

// SelectSlot 只有 applied 状态会推进到 slot_selected，其余状态只记录预约
func (a *Application) SelectSlot(slotID int64) error {
	if a.IsTerminal() {
		return ErrApplicationClosed
	}
	if slotID <= 0 {
		return ErrInvalidArgument
	}
	if a.HasSlot() {
		return ErrAlreadyBooked
	}
	a.SlotID = slotID
	if a.Status == StatusApplied {
		a.Status = StatusSlotSelected
	}
	return nil
}

// MoveSlot 管理员调整预约，不改变状态
func (a *Application) MoveSlot(slotID int64) error {
	if a.IsTerminal() {
		return ErrApplicationClosed
	}
	if slotID <= 0 {
		return ErrInvalidArgument
	}
	if slotID == a.SlotID {
		return ErrAlreadyBooked
	}
	a.SlotID = slotID
	if a.Status == StatusApplied {
		a.Status = StatusSlotSelected
	}
	return nil
}

func (a *Application) Approve() error {
	if a.IsTerminal() {
		return ErrApplicationClosed
	}
	a.AdminApproved = true
	return nil
}

func (a *Application) Reject() error {
	if a.IsTerminal() {
		return ErrApplicationClosed
	}
	a.Status = StatusRejected
	a.TestEnabled = false
	return nil
}

func (a *Application) EnableTest(round int) error {
	if a.IsTerminal() {
		return ErrApplicationClosed
	}
	if !a.AdminApproved {
		return ErrNotApproved
	}
	if round != a.CurrentRound {
		return ErrInvalidRound
	}
	a.TestEnabled = true
	a.Status = StatusTestEnabled
	return nil
}

// MarkTestTaken 本轮考试已交卷
func (a *Application) MarkTestTaken(round int) error {
	if a.IsTerminal() {
		return ErrApplicationClosed
	}
	if round != a.CurrentRound {
		return ErrInvalidRound
	}
	a.TestEnabled = false
	a.Status = StatusTestTaken
	return nil
}

// ApplyOutcome 应用本轮结果。最后一轮通过直接进入 selected。
// 返回 false 表示没有任何变化。
func (a *Application) ApplyOutcome(outcome RoundOutcome, totalRounds int) (bool, error) {
	if a.IsTerminal() {
		return false, ErrApplicationClosed
	}
	switch outcome {
	case OutcomePass:
		a.TestEnabled = false
		if a.CurrentRound < totalRounds {
			a.CurrentRound++
			a.Status = StatusPassed
		} else {
			a.Status = StatusSelected
		}
		return true, nil
	case OutcomeFail:
		if a.Status == StatusFailed {
			return false, nil
		}
		a.TestEnabled = false
		a.Status = StatusFailed
		return true, nil
	default:
		return false, nil
	}
}

// ChangeJob 换岗会丢弃所有轮次进度和预约
func (a *Application) ChangeJob(jobID int64) error {
	if a.IsTerminal() {
		return ErrApplicationClosed
	}
	if jobID <= 0 || jobID == a.JobID {
		return ErrInvalidArgument
	}
	a.JobID = jobID
	a.CurrentRound = 1
	a.TestEnabled = false
	a.AdminApproved = false
	a.Status = StatusApplied
	a.SlotID = 0
	return nil
}
