package errs

var (
	SystemError  = ErrorCode{Code: 501001, Msg: "系统错误"}
	UserNotFound = ErrorCode{Code: 501002, Msg: "用户不存在"}
	InvalidEmail = ErrorCode{Code: 501003, Msg: "邮箱格式不正确"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
