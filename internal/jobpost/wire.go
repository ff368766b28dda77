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

package jobpost

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/repository"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/repository/cache"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/repository/dao"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/service"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/web"
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(
		InitJobDAO,
		cache.NewJobCache,
		repository.NewCachedJobRepository,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var daoOnce = sync.Once{}

func InitJobDAO(db *egorm.Component) dao.JobDAO {
	daoOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMJobDAO(db)
}
