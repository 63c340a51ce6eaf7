package web

import (
	"errors"

	"github.com/dotting-labs/dotting/internal/compilation/internal/errs"
	"github.com/dotting-labs/dotting/internal/compilation/internal/service"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	forbiddenResult = ginx.Result{
		Code: errs.Forbidden.Code,
		Msg:  errs.Forbidden.Msg,
	}
)

func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrCompilationNotFound):
		return ginx.Result{Code: errs.CompilationNotFound.Code, Msg: errs.CompilationNotFound.Msg}
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult
	case errors.Is(err, service.ErrInvalidReviewStatus):
		return ginx.Result{Code: errs.InvalidReviewStatus.Code, Msg: errs.InvalidReviewStatus.Msg}
	case errors.Is(err, service.ErrReviewStatusConflict):
		return ginx.Result{Code: errs.ReviewStatusConflict.Code, Msg: errs.ReviewStatusConflict.Msg}
	default:
		return systemErrorResult
	}
}
