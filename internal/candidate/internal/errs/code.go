package errs

var (
	SystemError     = ErrorCode{Code: 522001, Msg: "系统错误"}
	ProfileNotFound = ErrorCode{Code: 522002, Msg: "候选人资料不存在"}
	InvalidProfile  = ErrorCode{Code: 522003, Msg: "姓名和邮箱不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
