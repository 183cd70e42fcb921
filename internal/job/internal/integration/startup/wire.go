//go:build wireinject

package startup

import (
	"github.com/ecodeclub/xpecial/internal/company"
	"github.com/ecodeclub/xpecial/internal/job"
	testioc "github.com/ecodeclub/xpecial/internal/test/ioc"
	"github.com/google/wire"
)

type Modules struct {
	Job     *job.Module
	Company *company.Module
}

func InitModules() (*Modules, error) {
	wire.Build(testioc.InitDB, testioc.InitMQ,
		company.InitModule,
		wire.FieldsOf(new(*company.Module), "Svc"),
		job.InitModule,
		wire.Struct(new(Modules), "*"),
	)
	return new(Modules), nil
}
