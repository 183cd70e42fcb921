// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build wireinject

package job

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/xpecial/internal/company"
	"github.com/ecodeclub/xpecial/internal/job/internal/event"
	"github.com/ecodeclub/xpecial/internal/job/internal/repository"
	"github.com/ecodeclub/xpecial/internal/job/internal/repository/dao"
	"github.com/ecodeclub/xpecial/internal/job/internal/service"
	"github.com/ecodeclub/xpecial/internal/job/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ, companySvc company.Service) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewJobRepository,
		service.NewService,
		web.NewHandler,
		event.NewApplicationEventConsumer,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.JobDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMJobDAO(db)
}
