//go:build wireinject

package startup

import (
	"github.com/ecodeclub/xpecial/internal/application"
	"github.com/ecodeclub/xpecial/internal/candidate"
	"github.com/ecodeclub/xpecial/internal/company"
	"github.com/ecodeclub/xpecial/internal/job"
	testioc "github.com/ecodeclub/xpecial/internal/test/ioc"
	"github.com/google/wire"
)

type Modules struct {
	App       *application.Module
	Job       *job.Module
	Candidate *candidate.Module
}

func InitModules() (*Modules, error) {
	wire.Build(testioc.BaseSet,
		company.InitModule,
		wire.FieldsOf(new(*company.Module), "Svc"),
		candidate.InitModule,
		wire.FieldsOf(new(*candidate.Module), "Svc"),
		job.InitModule,
		wire.FieldsOf(new(*job.Module), "Svc"),
		application.InitModule,
		wire.Struct(new(Modules), "*"),
	)
	return new(Modules), nil
}
