package errs

var (
	SystemError     = ErrorCode{Code: 514001, Msg: "系统错误"}
	SessionNotFound = ErrorCode{Code: 514002, Msg: "访谈会话未找到"}
	Forbidden       = ErrorCode{Code: 514003, Msg: "无权操作该会话"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
