package errs

var (
	SystemError      = ErrorCode{Code: 520001, Msg: "系统错误"}
	InvalidStatus    = ErrorCode{Code: 520002, Msg: "非法的投递状态"}
	NotFound         = ErrorCode{Code: 520003, Msg: "投递记录不存在"}
	PermissionDenied = ErrorCode{Code: 520004, Msg: "无权操作该投递"}
	AlreadyApplied   = ErrorCode{Code: 520005, Msg: "已经投递过该职位"}
	JobClosed        = ErrorCode{Code: 520006, Msg: "职位已关闭"}
	JobNotFound      = ErrorCode{Code: 520007, Msg: "职位不存在"}
	EmptySelection   = ErrorCode{Code: 520008, Msg: "没有选中任何投递"}
	ProfileRequired  = ErrorCode{Code: 520009, Msg: "请先完善个人资料"}
	InvalidParam     = ErrorCode{Code: 520010, Msg: "参数错误"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
