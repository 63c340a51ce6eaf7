package web

import (
	"errors"

	"github.com/dotting-labs/dotting/internal/user/internal/errs"
	"github.com/dotting-labs/dotting/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func errResult(err error) ginx.Result {
	if errors.Is(err, service.ErrUserNotFound) {
		return ginx.Result{Code: errs.UserNotFound.Code, Msg: errs.UserNotFound.Msg}
	}
	return systemErrorResult
}
