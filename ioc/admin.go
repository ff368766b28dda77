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

package ioc

import (
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-contrib/cors"
	"github.com/gotomicro/ego/server/egin"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost"
	"github.com/webflowdev33/talent-bridge-sub000/internal/pkg/middleware"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank"
)

type AdminServer *egin.Component

func InitAdminServer(jobHdl *jobpost.AdminHandler,
	qbHdl *questionbank.AdminHandler,
	hiringHdl *hiring.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(middleware.NewMetricsBuilder("admin").Build())
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token"},
		AllowCredentials: true,
		AllowHeaders:     []string{"X-Timestamp", "Authorization", "Content-Type"},
		AllowOriginFunc:  allowOrigin,
	}))
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	res.Use(middleware.NewCheckRoleMiddlewareBuilder(string(hiring.RoleAdmin)).Build())
	jobHdl.PrivateRoutes(res.Engine)
	qbHdl.PrivateRoutes(res.Engine)
	hiringHdl.PrivateRoutes(res.Engine)
	return res
}
