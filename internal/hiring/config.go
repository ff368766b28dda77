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
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/job"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/service"
)

const defaultAutoSubmitLimit = 100

func defaultConfig() service.Config {
	return service.Config{MaxViolations: 3}
}

func initConfig() service.Config {
	return loadConfig("hiring")
}

// loadConfig 没有配置时使用默认值，配置格式错误时记录日志之后也使用默认值
func loadConfig(key string) service.Config {
	val := econf.Get(key)
	if val == nil {
		return defaultConfig()
	}
	cfg := defaultConfig()
	if err := econf.UnmarshalKey(key, &cfg); err != nil {
		elog.DefaultLogger.Error("配置格式错误，使用默认配置",
			elog.FieldErr(err),
			elog.String("key", key),
			elog.Any("value", val))
		return defaultConfig()
	}
	return cfg
}

func initAutoSubmitJob(appSvc service.ApplicationService, attemptSvc service.AttemptService) *job.AutoSubmitExpiredAttemptsJob {
	limit := econf.GetInt("hiring.autoSubmit.limit")
	if limit <= 0 {
		limit = defaultAutoSubmitLimit
	}
	return job.NewAutoSubmitExpiredAttemptsJob(appSvc, attemptSvc, limit)
}
