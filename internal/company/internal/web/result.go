package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/xpecial/internal/company/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.NotFound.Code,
		Msg:  errs.NotFound.Msg,
	}
)
