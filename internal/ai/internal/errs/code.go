package errs

var (
	SystemError     = ErrorCode{Code: 516001, Msg: "系统错误"}
	PaymentRequired = ErrorCode{Code: 516002, Msg: "该操作需要先完成支付"}
	SessionNotFound = ErrorCode{Code: 516003, Msg: "访谈会话不存在"}
	Forbidden       = ErrorCode{Code: 516004, Msg: "无权操作该会话"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
