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

package application

import (
	"github.com/ecodeclub/xpecial/internal/application/internal/domain"
	"github.com/ecodeclub/xpecial/internal/application/internal/event"
	"github.com/ecodeclub/xpecial/internal/application/internal/job"
	"github.com/ecodeclub/xpecial/internal/application/internal/service"
	"github.com/ecodeclub/xpecial/internal/application/internal/web"
)

type (
	Service                = service.Service
	CompanyHandler         = web.CompanyHandler
	CandidateHandler       = web.CandidateHandler
	AdminHandler           = web.AdminHandler
	CandidateEventConsumer = event.CandidateEventConsumer
	RecountApplicationsJob = job.RecountApplicationsJob
	Application            = domain.Application
	Status                 = domain.Status
)

type Module struct {
	Svc               Service
	CompanyHdl        *CompanyHandler
	CandidateHdl      *CandidateHandler
	AdminHdl          *AdminHandler
	CandidateConsumer *CandidateEventConsumer
	RecountJob        *RecountApplicationsJob
}
