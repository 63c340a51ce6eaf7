package web

import (
	"errors"

	"github.com/dotting-labs/dotting/internal/ai/internal/errs"
	"github.com/dotting-labs/dotting/internal/ai/internal/service"
	"github.com/ecodeclub/ginx"
)

var systemErrorResult = ginx.Result{
	Code: errs.SystemError.Code,
	Msg:  errs.SystemError.Msg,
}

func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrPaymentRequired):
		return ginx.Result{Code: errs.PaymentRequired.Code, Msg: err.Error()}
	case errors.Is(err, service.ErrSessionNotFound):
		return ginx.Result{Code: errs.SessionNotFound.Code, Msg: errs.SessionNotFound.Msg}
	case errors.Is(err, service.ErrForbidden):
		return ginx.Result{Code: errs.Forbidden.Code, Msg: errs.Forbidden.Msg}
	default:
		return systemErrorResult
	}
}
