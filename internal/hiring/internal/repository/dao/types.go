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

package dao

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrDuplicate             = errors.New("记录已存在")
	ErrVersionConflict       = errors.New("记录已被并发修改")
	ErrSlotFull              = errors.New("时间段已约满")
	ErrSlotDisabled          = errors.New("时间段已关闭")
	ErrSlotTaken             = errors.New("申请已经预约了时间段")
	ErrCapacityBelowBookings = errors.New("容量小于已预约人数")
	ErrAttemptActive         = errors.New("存在未提交的考试")
	ErrAttemptSubmitted      = errors.New("考试已提交")
)

const uniqueIndexErrNo uint16 = 1062

// 交卷时直接改申请状态用到的几个值，和领域里的申请状态一致
const (
	statusTestTaken = "test_taken"
	statusSelected  = "selected"
	statusRejected  = "rejected"
)

func isClosed(status string) bool {
	return status == statusSelected || status == statusRejected
}

func isDuplicate(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == uniqueIndexErrNo
}

type Application struct {
	Id            int64         `gorm:"primaryKey,autoIncrement"`
	JobId         int64         `gorm:"not null;uniqueIndex:uniq_job_uid,priority:1;comment:职位ID"`
	Uid           int64         `gorm:"not null;uniqueIndex:uniq_job_uid,priority:2;index:idx_uid;comment:候选人ID"`
	SlotId        sql.NullInt64 `gorm:"index:idx_slot_id;comment:预约的时间段，NULL 表示没有预约"`
	CurrentRound  int           `gorm:"not null;default:1"`
	AdminApproved bool          `gorm:"not null;default:false"`
	TestEnabled   bool          `gorm:"not null;default:false"`
	Status        string        `gorm:"type:varchar(32);not null;index:idx_status"`
	Version       int64         `gorm:"not null;default:1;comment:版本号，每次状态变更加一"`
	Ctime         int64
	Utime         int64
}

type Slot struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Date        string `gorm:"type:varchar(10);not null;index:idx_date;comment:日期 YYYY-MM-DD"`
	StartTime   string `gorm:"type:varchar(5);not null;comment:HH:MM"`
	EndTime     string `gorm:"type:varchar(5);not null;comment:HH:MM"`
	MaxCapacity int    `gorm:"not null;comment:最大容量，已预约人数实时统计"`
	Enabled     bool   `gorm:"not null;default:true"`
	Ctime       int64
	Utime       int64
}

// SlotBooking 时间段的实时预约数
type SlotBooking struct {
	SlotId int64
	Cnt    int
}

type TestAttempt struct {
	Id              int64 `gorm:"primaryKey,autoIncrement"`
	ApplicationId   int64 `gorm:"not null;index:idx_aid_round,priority:1"`
	JobId           int64 `gorm:"not null"`
	Uid             int64 `gorm:"not null"`
	RoundNumber     int   `gorm:"not null;index:idx_aid_round,priority:2"`
	StartedAt       int64 `gorm:"not null"`
	EndedAt         int64
	Deadline        int64 `gorm:"not null;index:idx_submitted_deadline,priority:2;comment:开始时间加考试时长，毫秒"`
	DurationMinutes int   `gorm:"not null"`
	TotalMarks      int   `gorm:"not null"`
	PassingMarks    int   `gorm:"not null"`
	ObtainedMarks   int
	IsPassed        bool
	IsSubmitted     bool  `gorm:"not null;default:false;index:idx_submitted_deadline,priority:1"`
	AutoSubmitted   bool  `gorm:"not null;default:false"`
	AnswerVersion   int64 `gorm:"not null;default:0;comment:每次作答加一"`
	Ctime           int64
	Utime           int64
}

type Answer struct {
	Id             int64  `gorm:"primaryKey,autoIncrement"`
	AttemptId      int64  `gorm:"not null;uniqueIndex:uniq_attempt_question,priority:1"`
	QuestionId     int64  `gorm:"not null;uniqueIndex:uniq_attempt_question,priority:2"`
	SelectedAnswer string `gorm:"type:varchar(1024)"`
	IsCorrect      bool
	Ctime          int64
	Utime          int64
}

type Violation struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	AttemptId int64  `gorm:"not null;uniqueIndex:uniq_attempt_type,priority:1"`
	Uid       int64  `gorm:"not null"`
	Type      string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_attempt_type,priority:2"`
	Cnt       int    `gorm:"not null;default:0"`
	Ctime     int64
	Utime     int64
}

type EvaluationParameter struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Name        string `gorm:"type:varchar(128);not null;uniqueIndex:uniq_name"`
	Description string `gorm:"type:varchar(512)"`
	MaxScore    int    `gorm:"not null"`
	Active      bool   `gorm:"not null;default:true"`
	Ctime       int64
	Utime       int64
}

type Evaluation struct {
	Id             int64  `gorm:"primaryKey,autoIncrement"`
	ApplicationId  int64  `gorm:"not null;index:idx_aid_round,priority:1"`
	JobId          int64  `gorm:"not null"`
	RoundNumber    int    `gorm:"not null;index:idx_aid_round,priority:2"`
	EvaluatorId    int64  `gorm:"not null"`
	Recommendation string `gorm:"type:varchar(16);not null"`
	OverallRemarks string `gorm:"type:text"`
	InternalNotes  string `gorm:"type:text"`
	Visible        bool   `gorm:"not null;default:false"`
	Ctime          int64
	Utime          int64
}

type EvaluationScore struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	EvaluationId int64  `gorm:"not null;uniqueIndex:uniq_eval_param,priority:1"`
	ParameterId  int64  `gorm:"not null;uniqueIndex:uniq_eval_param,priority:2"`
	Score        int    `gorm:"not null"`
	Remarks      string `gorm:"type:varchar(1024)"`
	Ctime        int64
	Utime        int64
}
