package errs

var (
	SystemError = ErrorCode{Code: 523001, Msg: "系统错误"}
	NotFound    = ErrorCode{Code: 523002, Msg: "公司不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
