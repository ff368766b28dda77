package errs

var (
	SystemError = ErrorCode{Code: 517001, Msg: "系统错误"}
	InvalidJob  = ErrorCode{Code: 417001, Msg: "职位信息不合法"}
	JobNotFound = ErrorCode{Code: 417002, Msg: "职位不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
