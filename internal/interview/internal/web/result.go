package web

import (
	"errors"

	"github.com/dotting-labs/dotting/internal/interview/internal/errs"
	"github.com/dotting-labs/dotting/internal/interview/internal/service"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.SessionNotFound.Code,
		Msg:  errs.SessionNotFound.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
)

func errResult(err error) ginx.Result {
	if errors.Is(err, service.ErrSessionNotFound) {
		return notFoundResult
	}
	return systemErrorResult
}
