package errs

var (
	SystemError      = ErrorCode{Code: 521001, Msg: "系统错误"}
	NotFound         = ErrorCode{Code: 521002, Msg: "职位不存在"}
	PermissionDenied = ErrorCode{Code: 521003, Msg: "无权修改该职位"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
