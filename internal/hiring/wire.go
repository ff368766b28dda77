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

package hiring

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/event"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository/dao"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/service"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/web"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost"
	"github.com/webflowdev33/talent-bridge-sub000/internal/profile"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	jobModule *jobpost.Module,
	qbModule *questionbank.Module,
	profileModule *profile.Module) (*Module, error) {
	wire.Build(
		InitApplicationDAO,
		InitSlotDAO,
		InitAttemptDAO,
		InitEvaluationDAO,
		repository.NewApplicationRepository,
		repository.NewSlotRepository,
		repository.NewAttemptRepository,
		repository.NewEvaluationRepository,
		event.NewApplicationEventProducer,
		wire.FieldsOf(new(*jobpost.Module), "Svc"),
		wire.FieldsOf(new(*questionbank.Module), "Svc"),
		wire.FieldsOf(new(*profile.Module), "Svc"),
		initConfig,
		service.NewSlotService,
		service.NewAttemptService,
		service.NewEvaluationService,
		service.NewApplicationService,
		initAutoSubmitJob,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func initTables(db *egorm.Component) {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
}

func InitApplicationDAO(db *egorm.Component) dao.ApplicationDAO {
	initTables(db)
	return dao.NewGORMApplicationDAO(db)
}

func InitSlotDAO(db *egorm.Component) dao.SlotDAO {
	initTables(db)
	return dao.NewGORMSlotDAO(db)
}

func InitAttemptDAO(db *egorm.Component) dao.AttemptDAO {
	initTables(db)
	return dao.NewGORMAttemptDAO(db)
}

func InitEvaluationDAO(db *egorm.Component) dao.EvaluationDAO {
	initTables(db)
	return dao.NewGORMEvaluationDAO(db)
}
