package web

import (
	"errors"

	"github.com/dotting-labs/dotting/internal/order/internal/errs"
	"github.com/dotting-labs/dotting/internal/order/internal/service"
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

// errResult 把服务层的哨兵错误映射为带业务码的响应
func errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrOrderNotFound):
		return ginx.Result{Code: errs.OrderNotFound.Code, Msg: errs.OrderNotFound.Msg}
	case errors.Is(err, service.ErrInvalidTransition):
		return ginx.Result{Code: errs.InvalidTransition.Code, Msg: errs.InvalidTransition.Msg}
	case errors.Is(err, service.ErrMissingField):
		return ginx.Result{Code: errs.MissingField.Code, Msg: errs.MissingField.Msg}
	case errors.Is(err, service.ErrStatusConflict):
		return ginx.Result{Code: errs.StatusConflict.Code, Msg: errs.StatusConflict.Msg}
	case errors.Is(err, service.ErrActiveOrderExists):
		return ginx.Result{Code: errs.ActiveOrderExists.Code, Msg: errs.ActiveOrderExists.Msg}
	default:
		return systemErrorResult
	}
}
