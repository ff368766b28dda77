package errs

var (
	SystemError = ErrorCode{Code: 516001, Msg: "系统错误"}

	InvalidArgument   = ErrorCode{Code: 416001, Msg: "参数错误"}
	ScoreOutOfRange   = ErrorCode{Code: 416002, Msg: "评分超出范围"}
	ProfileIncomplete = ErrorCode{Code: 416003, Msg: "请先完善个人资料"}
	InvalidRound      = ErrorCode{Code: 416004, Msg: "轮次不合法"}
	InvalidStatus     = ErrorCode{Code: 416005, Msg: "状态不合法"}

	StaleState            = ErrorCode{Code: 416101, Msg: "申请已被修改，请刷新后重试"}
	AttemptAlreadyActive  = ErrorCode{Code: 416102, Msg: "存在未提交的考试"}
	AlreadyBooked         = ErrorCode{Code: 416103, Msg: "已经预约了时间段"}
	SlotFull              = ErrorCode{Code: 416104, Msg: "时间段已约满"}
	SlotDisabled          = ErrorCode{Code: 416105, Msg: "时间段已关闭"}
	AlreadyApplied        = ErrorCode{Code: 416106, Msg: "已经申请过该职位"}
	ApplicationClosed     = ErrorCode{Code: 416107, Msg: "申请已结束"}
	NotApproved           = ErrorCode{Code: 416108, Msg: "申请尚未审核通过"}
	TestNotEnabled        = ErrorCode{Code: 416109, Msg: "考试尚未开放"}
	AttemptSubmitted      = ErrorCode{Code: 416110, Msg: "考试已提交"}
	AttemptExpired        = ErrorCode{Code: 416111, Msg: "考试已超时"}
	CapacityBelowBookings = ErrorCode{Code: 416112, Msg: "容量不能小于已预约人数"}
	JobInactive           = ErrorCode{Code: 416113, Msg: "职位已下线"}
	NotOnlineRound        = ErrorCode{Code: 416114, Msg: "该轮次不是线上考试"}
	ParameterExists       = ErrorCode{Code: 416115, Msg: "评估项名称重复"}

	ApplicationNotFound = ErrorCode{Code: 416201, Msg: "申请不存在"}
	SlotNotFound        = ErrorCode{Code: 416202, Msg: "时间段不存在"}
	AttemptNotFound     = ErrorCode{Code: 416203, Msg: "考试记录不存在"}
	JobNotFound         = ErrorCode{Code: 416204, Msg: "职位不存在"}
	ParameterNotFound   = ErrorCode{Code: 416205, Msg: "评估项不存在"}
	QuestionNotFound    = ErrorCode{Code: 416206, Msg: "题目不存在"}

	PermissionDenied = ErrorCode{Code: 416301, Msg: "没有权限"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
