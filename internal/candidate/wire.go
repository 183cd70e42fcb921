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

package candidate

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/event"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/repository"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/repository/dao"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/service"
	"github.com/ecodeclub/xpecial/internal/candidate/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		repository.NewCandidateRepository,
		event.NewCandidateEventProducer,
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CandidateDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMCandidateDAO(db)
}
