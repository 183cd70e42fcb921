//go:build wireinject

package startup

import (
	"github.com/ecodeclub/xpecial/internal/company"
	testioc "github.com/ecodeclub/xpecial/internal/test/ioc"
	"github.com/google/wire"
)

func InitModule() (*company.Module, error) {
	wire.Build(testioc.BaseSet, company.InitModule)
	return new(company.Module), nil
}
