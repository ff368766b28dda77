package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

var bizCodes = map[*domain.Error]errs.ErrorCode{
	domain.ErrInvalidArgument:       errs.InvalidArgument,
	domain.ErrScoreOutOfRange:       errs.ScoreOutOfRange,
	domain.ErrProfileIncomplete:     errs.ProfileIncomplete,
	domain.ErrInvalidRound:          errs.InvalidRound,
	domain.ErrInvalidStatus:         errs.InvalidStatus,
	domain.ErrStaleState:            errs.StaleState,
	domain.ErrAttemptAlreadyActive:  errs.AttemptAlreadyActive,
	domain.ErrAlreadyBooked:         errs.AlreadyBooked,
	domain.ErrSlotFull:              errs.SlotFull,
	domain.ErrSlotDisabled:          errs.SlotDisabled,
	domain.ErrAlreadyApplied:        errs.AlreadyApplied,
	domain.ErrApplicationClosed:     errs.ApplicationClosed,
	domain.ErrNotApproved:           errs.NotApproved,
	domain.ErrTestNotEnabled:        errs.TestNotEnabled,
	domain.ErrAttemptSubmitted:      errs.AttemptSubmitted,
	domain.ErrAttemptExpired:        errs.AttemptExpired,
	domain.ErrCapacityBelowBookings: errs.CapacityBelowBookings,
	domain.ErrJobInactive:           errs.JobInactive,
	domain.ErrNotOnlineRound:        errs.NotOnlineRound,
	domain.ErrParameterExists:       errs.ParameterExists,
	domain.ErrApplicationNotFound:   errs.ApplicationNotFound,
	domain.ErrSlotNotFound:          errs.SlotNotFound,
	domain.ErrAttemptNotFound:       errs.AttemptNotFound,
	domain.ErrJobNotFound:           errs.JobNotFound,
	domain.ErrParameterNotFound:     errs.ParameterNotFound,
	domain.ErrQuestionNotFound:      errs.QuestionNotFound,
	domain.ErrPermissionDenied:      errs.PermissionDenied,
}

// errorResult 业务错误返回对应的错误码，其余按系统错误处理
func errorResult(err error) (ginx.Result, error) {
	var de *domain.Error
	if errors.As(err, &de) {
		if code, ok := bizCodes[de]; ok {
			return ginx.Result{Code: code.Code, Msg: code.Msg}, nil
		}
	}
	return systemErrorResult, err
}

func dataResult(data any, err error) (ginx.Result, error) {
	if err != nil {
		return errorResult(err)
	}
	return ginx.Result{Data: data}, nil
}
