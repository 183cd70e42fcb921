package web

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/xpecial/internal/application/internal/errs"
	"github.com/ecodeclub/xpecial/internal/application/internal/service"
	"github.com/ecodeclub/xpecial/internal/pkg/ectx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidParamResult = ginx.Result{
		Code: errs.InvalidParam.Code,
		Msg:  errs.InvalidParam.Msg,
	}
)

func codeResult(code errs.ErrorCode) ginx.Result {
	return ginx.Result{Code: code.Code, Msg: code.Msg}
}

// errResult 业务错误返回对应的错误码，其余的都是系统错误
func errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return codeResult(errs.InvalidStatus), nil
	case errors.Is(err, service.ErrApplicationNotFound):
		return codeResult(errs.NotFound), nil
	case errors.Is(err, service.ErrPermissionDenied):
		return codeResult(errs.PermissionDenied), nil
	case errors.Is(err, service.ErrAlreadyApplied):
		return codeResult(errs.AlreadyApplied), nil
	case errors.Is(err, service.ErrJobClosed):
		return codeResult(errs.JobClosed), nil
	case errors.Is(err, service.ErrJobNotFound):
		return codeResult(errs.JobNotFound), nil
	case errors.Is(err, service.ErrEmptySelection):
		return codeResult(errs.EmptySelection), nil
	case errors.Is(err, service.ErrProfileRequired):
		return codeResult(errs.ProfileRequired), nil
	default:
		return systemErrorResult, err
	}
}

func pathID(ctx *ginx.Context) (int64, error) {
	return strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
}

// companyID 由角色中间件写入，管理员请求里面没有，即为 0
func companyID(ctx *ginx.Context) int64 {
	cid, _ := ectx.CompanyIDFromCtx(ctx.Request.Context())
	return cid
}
