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

package ioc

import (
	"github.com/ecodeclub/xpecial/internal/application"
	"github.com/ecodeclub/xpecial/internal/candidate"
	"github.com/ecodeclub/xpecial/internal/company"
	"github.com/ecodeclub/xpecial/internal/job"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		company.InitModule,
		wire.FieldsOf(new(*company.Module), "Svc", "Hdl", "AdminHdl"),
		candidate.InitModule,
		wire.FieldsOf(new(*candidate.Module), "Svc", "Hdl"),
		job.InitModule,
		wire.FieldsOf(new(*job.Module), "Svc", "Hdl", "Consumer"),
		application.InitModule,
		wire.FieldsOf(new(*application.Module), "CompanyHdl", "CandidateHdl",
			"AdminHdl", "CandidateConsumer", "RecountJob"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers,
	)
	return new(App), nil
}
