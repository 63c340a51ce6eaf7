package errs

var (
	SystemError          = ErrorCode{Code: 513001, Msg: "系统错误"}
	CompilationNotFound  = ErrorCode{Code: 513002, Msg: "书稿不存在"}
	Forbidden            = ErrorCode{Code: 513003, Msg: "无权操作该书稿"}
	InvalidReviewStatus  = ErrorCode{Code: 513004, Msg: "书稿状态不允许该操作"}
	ReviewStatusConflict = ErrorCode{Code: 513005, Msg: "书稿状态已变更, 请刷新后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
