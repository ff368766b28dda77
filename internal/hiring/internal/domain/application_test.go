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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplication_SelectSlot(t *testing.T) {
	testCases := []struct {
		name    string
		app     Application
		slotID  int64
		wantApp Application
		wantErr error
	}{
		{
			name:    "新申请预约",
			app:     Application{Status: StatusApplied, CurrentRound: 1},
			slotID:  3,
			wantApp: Application{Status: StatusSlotSelected, CurrentRound: 1, SlotID: 3},
		},
		{
			name:    "审核后预约不改变状态",
			app:     Application{Status: StatusTestEnabled, CurrentRound: 2, AdminApproved: true, TestEnabled: true},
			slotID:  3,
			wantApp: Application{Status: StatusTestEnabled, CurrentRound: 2, AdminApproved: true, TestEnabled: true, SlotID: 3},
		},
		{
			name:    "已经预约",
			app:     Application{Status: StatusSlotSelected, SlotID: 2},
			slotID:  3,
			wantApp: Application{Status: StatusSlotSelected, SlotID: 2},
			wantErr: ErrAlreadyBooked,
		},
		{
			name:    "已被拒绝",
			app:     Application{Status: StatusRejected},
			slotID:  3,
			wantApp: Application{Status: StatusRejected},
			wantErr: ErrApplicationClosed,
		},
		{
			name:    "非法的时间段",
			app:     Application{Status: StatusApplied},
			wantApp: Application{Status: StatusApplied},
			wantErr: ErrInvalidArgument,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := tc.app
			err := app.SelectSlot(tc.slotID)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantApp, app)
		})
	}
}

func TestApplication_EnableTest(t *testing.T) {
	testCases := []struct {
		name    string
		app     Application
		round   int
		wantErr error
	}{
		{
			name:  "开放当前轮",
			app:   Application{Status: StatusSlotSelected, CurrentRound: 1, AdminApproved: true},
			round: 1,
		},
		{
			name:    "未审核",
			app:     Application{Status: StatusSlotSelected, CurrentRound: 1},
			round:   1,
			wantErr: ErrNotApproved,
		},
		{
			name:    "不是当前轮",
			app:     Application{Status: StatusPassed, CurrentRound: 2, AdminApproved: true},
			round:   1,
			wantErr: ErrInvalidRound,
		},
		{
			name:    "已录用",
			app:     Application{Status: StatusSelected, CurrentRound: 2, AdminApproved: true},
			round:   2,
			wantErr: ErrApplicationClosed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := tc.app
			err := app.EnableTest(tc.round)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				assert.Equal(t, tc.app, app)
				return
			}
			assert.True(t, app.TestEnabled)
			assert.Equal(t, StatusTestEnabled, app.Status)
		})
	}
}

func TestApplication_ApplyOutcome(t *testing.T) {
	testCases := []struct {
		name        string
		app         Application
		outcome     RoundOutcome
		totalRounds int
		wantApp     Application
		wantChanged bool
		wantErr     error
	}{
		{
			name:        "第一轮通过进入下一轮",
			app:         Application{Status: StatusTestTaken, CurrentRound: 1, AdminApproved: true},
			outcome:     OutcomePass,
			totalRounds: 2,
			wantApp:     Application{Status: StatusPassed, CurrentRound: 2, AdminApproved: true},
			wantChanged: true,
		},
		{
			name:        "最后一轮通过直接录用",
			app:         Application{Status: StatusTestTaken, CurrentRound: 2, AdminApproved: true},
			outcome:     OutcomePass,
			totalRounds: 2,
			wantApp:     Application{Status: StatusSelected, CurrentRound: 2, AdminApproved: true},
			wantChanged: true,
		},
		{
			name:        "未通过",
			app:         Application{Status: StatusTestEnabled, CurrentRound: 1, TestEnabled: true},
			outcome:     OutcomeFail,
			totalRounds: 2,
			wantApp:     Application{Status: StatusFailed, CurrentRound: 1},
			wantChanged: true,
		},
		{
			name:        "重复的未通过",
			app:         Application{Status: StatusFailed, CurrentRound: 1},
			outcome:     OutcomeFail,
			totalRounds: 2,
			wantApp:     Application{Status: StatusFailed, CurrentRound: 1},
		},
		{
			name:        "待定不变",
			app:         Application{Status: StatusTestTaken, CurrentRound: 1},
			outcome:     OutcomeNone,
			totalRounds: 2,
			wantApp:     Application{Status: StatusTestTaken, CurrentRound: 1},
		},
		{
			name:        "已录用不再变化",
			app:         Application{Status: StatusSelected, CurrentRound: 2},
			outcome:     OutcomePass,
			totalRounds: 2,
			wantApp:     Application{Status: StatusSelected, CurrentRound: 2},
			wantErr:     ErrApplicationClosed,
		},
		{
			name:        "已拒绝不再变化",
			app:         Application{Status: StatusRejected, CurrentRound: 1},
			outcome:     OutcomePass,
			totalRounds: 2,
			wantApp:     Application{Status: StatusRejected, CurrentRound: 1},
			wantErr:     ErrApplicationClosed,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			app := tc.app
			changed, err := app.ApplyOutcome(tc.outcome, tc.totalRounds)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantChanged, changed)
			assert.Equal(t, tc.wantApp, app)
		})
	}
}

// 轮次只增不减
func TestApplication_RoundMonotonicity(t *testing.T) {
	app := Application{Status: StatusApplied, CurrentRound: 1, AdminApproved: true}
	outcomes := []RoundOutcome{OutcomeFail, OutcomeNone, OutcomePass, OutcomeFail, OutcomePass, OutcomePass}
	last := app.CurrentRound
	for i, o := range outcomes {
		_, _ = app.ApplyOutcome(o, 3)
		assert.GreaterOrEqual(t, app.CurrentRound, last, fmt.Sprintf("第 %d 次", i))
		last = app.CurrentRound
	}
	assert.Equal(t, 3, app.CurrentRound)
	assert.Equal(t, StatusSelected, app.Status)
}

func TestApplication_TerminalAbsorption(t *testing.T) {
	for _, status := range []ApplicationStatus{StatusSelected, StatusRejected} {
		t.Run(status.String(), func(t *testing.T) {
			app := Application{Status: status, CurrentRound: 1, AdminApproved: true}
			assert.ErrorIs(t, app.EnableTest(1), ErrApplicationClosed)
			assert.ErrorIs(t, app.SelectSlot(1), ErrApplicationClosed)
			_, err := app.ApplyOutcome(OutcomePass, 3)
			assert.ErrorIs(t, err, ErrApplicationClosed)
			assert.ErrorIs(t, app.Reject(), ErrApplicationClosed)
			assert.ErrorIs(t, app.ChangeJob(9), ErrApplicationClosed)
			assert.Equal(t, status, app.Status)
			assert.Equal(t, 1, app.CurrentRound)
		})
	}
}

func TestApplication_ChangeJob(t *testing.T) {
	app := Application{JobID: 1, SlotID: 2, Status: StatusPassed, CurrentRound: 3, AdminApproved: true, TestEnabled: true}
	require.NoError(t, app.ChangeJob(5))
	assert.Equal(t, Application{JobID: 5, Status: StatusApplied, CurrentRound: 1}, app)

	assert.ErrorIs(t, app.ChangeJob(5), ErrInvalidArgument)
}

func TestApplication_Reject(t *testing.T) {
	app := Application{Status: StatusTestEnabled, TestEnabled: true, CurrentRound: 1}
	require.NoError(t, app.Reject())
	assert.Equal(t, StatusRejected, app.Status)
	assert.False(t, app.TestEnabled)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrKindConflict, KindOf(fmt.Errorf("预约失败: %w", ErrSlotFull)))
	assert.Equal(t, ErrKindValidation, KindOf(ErrScoreOutOfRange))
	assert.Equal(t, ErrKindNotFound, KindOf(ErrApplicationNotFound))
	assert.Equal(t, ErrKindPermission, KindOf(ErrPermissionDenied))
	assert.Equal(t, ErrKindUnknown, KindOf(fmt.Errorf("mock db error")))
	assert.Equal(t, ErrSlotFull, ErrCapacityExceeded)
}
