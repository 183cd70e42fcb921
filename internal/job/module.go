package job

import (
	"github.com/ecodeclub/xpecial/internal/job/internal/domain"
	"github.com/ecodeclub/xpecial/internal/job/internal/event"
	"github.com/ecodeclub/xpecial/internal/job/internal/service"
	"github.com/ecodeclub/xpecial/internal/job/internal/web"
)

var ErrJobNotFound = service.ErrJobNotFound

type (
	Service                  = service.Service
	Handler                  = web.Handler
	Job                      = domain.Job
	Status                   = domain.Status
	ApplicationEventConsumer = event.ApplicationEventConsumer
)

const (
	StatusOpen   = domain.StatusOpen
	StatusClosed = domain.StatusClosed
)

type Module struct {
	Svc      Service
	Hdl      *Handler
	Consumer *ApplicationEventConsumer
}
