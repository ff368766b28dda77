package errs

var (
	SystemError      = ErrorCode{Code: 518001, Msg: "系统错误"}
	InvalidQuestion  = ErrorCode{Code: 418001, Msg: "题目不合法"}
	QuestionNotFound = ErrorCode{Code: 418002, Msg: "题目不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
