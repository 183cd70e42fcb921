package candidate

import (
	"github.com/ecodeclub/xpecial/internal/candidate/internal/domain"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/service"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/web"
)

var ErrProfileNotFound = service.ErrProfileNotFound

type (
	Service   = service.Service
	Handler   = web.Handler
	Candidate = domain.Candidate
)

type Module struct {
	Svc Service
	Hdl *Handler
}
