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
	"github.com/google/wire"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost"
	"github.com/webflowdev33/talent-bridge-sub000/internal/profile"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		jobpost.InitModule,
		questionbank.InitModule,
		profile.InitModule,
		hiring.InitModule,
		wire.FieldsOf(new(*jobpost.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*questionbank.Module), "AdminHdl"),
		wire.FieldsOf(new(*profile.Module), "Hdl"),
		wire.FieldsOf(new(*hiring.Module), "Hdl", "AdminHdl", "AutoSubmitJob"),
		initGinxServer,
		InitAdminServer,
		initCronJobs,
		initMQConsumers)
	return new(App), nil
}
