package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)
