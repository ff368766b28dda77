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

package hiring

import (
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/event"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/job"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/service"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/web"
)

type Module struct {
	Svc           ApplicationService
	SlotSvc       SlotService
	EvalSvc       EvaluationService
	Hdl           *Handler
	AdminHdl      *AdminHandler
	AutoSubmitJob *AutoSubmitExpiredAttemptsJob
}

type ApplicationService = service.ApplicationService
type SlotService = service.SlotService
type EvaluationService = service.EvaluationService
type Config = service.Config
type Handler = web.Handler
type AdminHandler = web.AdminHandler
type AutoSubmitExpiredAttemptsJob = job.AutoSubmitExpiredAttemptsJob

type Actor = domain.Actor
type Application = domain.Application
type ApplicationStatus = domain.ApplicationStatus
type ApplicationEvent = event.ApplicationEvent

const ApplicationEventName = event.ApplicationEventName

const (
	RoleCandidate = domain.RoleCandidate
	RoleAdmin     = domain.RoleAdmin
)
