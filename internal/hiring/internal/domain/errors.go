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

// ErrKind 错误分类，web 层据此映射业务错误码
type ErrKind uint8

const (
	ErrKindUnknown ErrKind = iota
	// ErrKindValidation 输入不合法，属于调用方的问题
	ErrKindValidation
	// ErrKindConflict 并发或者状态冲突，调用方刷新后可以重试
	ErrKindConflict
	ErrKindNotFound
	ErrKindPermission
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindValidation:
		return "validation"
	case ErrKindConflict:
		return "conflict"
	case ErrKindNotFound:
		return "not_found"
	case ErrKindPermission:
		return "permission"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind ErrKind
	Msg  string
}

func (e *Error) Error() string {
	return e.Msg
}

func newError(kind ErrKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// KindOf 返回错误链上第一个 *Error 的分类
func KindOf(err error) ErrKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnknown
}

var (
	ErrInvalidArgument   = newError(ErrKindValidation, "参数错误")
	ErrScoreOutOfRange   = newError(ErrKindValidation, "评分超出范围")
	ErrProfileIncomplete = newError(ErrKindValidation, "个人资料不完整")
	ErrInvalidRound      = newError(ErrKindValidation, "轮次不合法")
	ErrInvalidStatus     = newError(ErrKindValidation, "状态不合法")

	ErrStaleState            = newError(ErrKindConflict, "申请状态已被修改")
	ErrAttemptAlreadyActive  = newError(ErrKindConflict, "存在未提交的考试")
	ErrAlreadyBooked         = newError(ErrKindConflict, "已经预约了时间段")
	ErrSlotFull              = newError(ErrKindConflict, "时间段已约满")
	ErrSlotDisabled          = newError(ErrKindConflict, "时间段已关闭")
	ErrAlreadyApplied        = newError(ErrKindConflict, "已经申请过该职位")
	ErrApplicationClosed     = newError(ErrKindConflict, "申请已结束")
	ErrNotApproved           = newError(ErrKindConflict, "申请尚未审核通过")
	ErrTestNotEnabled        = newError(ErrKindConflict, "考试尚未开放")
	ErrAttemptSubmitted      = newError(ErrKindConflict, "考试已提交")
	ErrAttemptExpired        = newError(ErrKindConflict, "考试已超时")
	ErrCapacityBelowBookings = newError(ErrKindConflict, "容量小于已预约人数")
	ErrJobInactive           = newError(ErrKindConflict, "职位已下线")
	ErrNotOnlineRound        = newError(ErrKindConflict, "该轮次不是线上考试")
	ErrParameterExists       = newError(ErrKindConflict, "评估项名称重复")

	ErrApplicationNotFound = newError(ErrKindNotFound, "申请不存在")
	ErrSlotNotFound        = newError(ErrKindNotFound, "时间段不存在")
	ErrAttemptNotFound     = newError(ErrKindNotFound, "考试记录不存在")
	ErrJobNotFound         = newError(ErrKindNotFound, "职位不存在")
	ErrParameterNotFound   = newError(ErrKindNotFound, "评估项不存在")
	ErrQuestionNotFound    = newError(ErrKindNotFound, "题目不存在")

	ErrPermissionDenied = newError(ErrKindPermission, "没有权限")
)

// ErrCapacityExceeded 预约在并发中落败，和 ErrSlotFull 是同一个错误
var ErrCapacityExceeded = ErrSlotFull
