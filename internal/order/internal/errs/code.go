package errs

var (
	SystemError       = ErrorCode{Code: 511001, Msg: "系统错误"}
	InvalidTransition = ErrorCode{Code: 511002, Msg: "非法的状态流转"}
	MissingField      = ErrorCode{Code: 511003, Msg: "缺少必填字段"}
	OrderNotFound     = ErrorCode{Code: 511004, Msg: "订单未找到"}
	Forbidden         = ErrorCode{Code: 511005, Msg: "无权操作该订单"}
	ActiveOrderExists = ErrorCode{Code: 511006, Msg: "会话已存在进行中的订单"}
	StatusConflict    = ErrorCode{Code: 511007, Msg: "订单状态已变化,请刷新后重试"}
	PaymentRequired   = ErrorCode{Code: 511008, Msg: "该操作需要先完成支付"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
