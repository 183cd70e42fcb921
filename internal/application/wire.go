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

package application

import (
	"sync"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/xpecial/internal/application/internal/event"
	appjob "github.com/ecodeclub/xpecial/internal/application/internal/job"
	"github.com/ecodeclub/xpecial/internal/application/internal/repository"
	"github.com/ecodeclub/xpecial/internal/application/internal/repository/cache"
	"github.com/ecodeclub/xpecial/internal/application/internal/repository/dao"
	"github.com/ecodeclub/xpecial/internal/application/internal/service"
	"github.com/ecodeclub/xpecial/internal/application/internal/web"
	"github.com/ecodeclub/xpecial/internal/candidate"
	"github.com/ecodeclub/xpecial/internal/job"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	jobSvc job.Service,
	candidateSvc candidate.Service) (*Module, error) {
	wire.Build(
		InitTablesOnce,
		cache.NewApplicationCache,
		repository.NewCachedApplicationRepository,
		event.NewApplicationEventProducer,
		service.NewService,
		web.NewCompanyHandler,
		web.NewCandidateHandler,
		web.NewAdminHandler,
		initCandidateConsumer,
		initRecountJob,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}

func initCandidateConsumer(q mq.MQ, svc service.Service) (*event.CandidateEventConsumer, error) {
	return event.NewCandidateEventConsumer(q, svc)
}

func initRecountJob(repo repository.ApplicationRepository, jobSvc job.Service) *appjob.RecountApplicationsJob {
	timeout := econf.GetDuration("application.recount.timeout")
	if timeout <= 0 {
		timeout = time.Minute
	}
	return appjob.NewRecountApplicationsJob(repo, jobSvc, timeout)
}
