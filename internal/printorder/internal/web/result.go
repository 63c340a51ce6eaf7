package web

import (
	"errors"

	"github.com/dotting-labs/dotting/internal/printorder/internal/errs"
	"github.com/dotting-labs/dotting/internal/printorder/internal/service"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrPrintOrderNotFound):
		return ginx.Result{Code: errs.PrintOrderNotFound.Code, Msg: errs.PrintOrderNotFound.Msg}
	case errors.Is(err, service.ErrInvalidTransition):
		return ginx.Result{Code: errs.InvalidTransition.Code, Msg: errs.InvalidTransition.Msg}
	case errors.Is(err, service.ErrMissingField):
		return ginx.Result{Code: errs.MissingField.Code, Msg: errs.MissingField.Msg}
	case errors.Is(err, service.ErrStatusConflict):
		return ginx.Result{Code: errs.StatusConflict.Code, Msg: errs.StatusConflict.Msg}
	case errors.Is(err, service.ErrInvalidCompilation):
		return ginx.Result{Code: errs.InvalidCompilation.Code, Msg: errs.InvalidCompilation.Msg}
	default:
		return systemErrorResult
	}
}
