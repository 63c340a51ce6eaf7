package errs

var (
	SystemError        = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidTransition  = ErrorCode{Code: 512002, Msg: "印刷单状态不允许该流转"}
	MissingField       = ErrorCode{Code: 512003, Msg: "缺少必填字段"}
	PrintOrderNotFound = ErrorCode{Code: 512004, Msg: "印刷单不存在"}
	StatusConflict     = ErrorCode{Code: 512005, Msg: "印刷单状态已变更, 请刷新后重试"}
	InvalidCompilation = ErrorCode{Code: 512006, Msg: "书稿未确认可付印"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
