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

package job

import (
	"context"
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/service"
)

var _ ecron.NamedJob = (*AutoSubmitExpiredAttemptsJob)(nil)

// AutoSubmitExpiredAttemptsJob 超时未交卷的考试由系统提交。
// 单个考试提交失败不影响其他考试，下一次运行还会再处理。
type AutoSubmitExpiredAttemptsJob struct {
	appSvc     service.ApplicationService
	attemptSvc service.AttemptService
	limit      int
	logger     *elog.Component
}

func NewAutoSubmitExpiredAttemptsJob(appSvc service.ApplicationService,
	attemptSvc service.AttemptService, limit int) *AutoSubmitExpiredAttemptsJob {
	return &AutoSubmitExpiredAttemptsJob{
		appSvc:     appSvc,
		attemptSvc: attemptSvc,
		limit:      limit,
		logger:     elog.DefaultLogger.With(elog.FieldComponent("hiring.job.autoSubmit")),
	}
}

func (j *AutoSubmitExpiredAttemptsJob) Name() string {
	return "AutoSubmitExpiredAttemptsJob"
}

func (j *AutoSubmitExpiredAttemptsJob) Run(ctx context.Context) error {
	var minID int64
	for {
		ats, err := j.attemptSvc.ListExpired(ctx, minID, j.limit)
		if err != nil {
			return fmt.Errorf("获取超时的考试失败: %w", err)
		}
		for _, at := range ats {
			minID = at.ID
			res, err := j.appSvc.AutoSubmit(ctx, at.ID)
			if err != nil {
				j.logger.Error("自动交卷失败",
					elog.FieldErr(err),
					elog.Int64("attemptId", at.ID))
				continue
			}
			if res.Fresh {
				j.logger.Info("自动交卷",
					elog.Int64("attemptId", at.ID),
					elog.Int("obtained", res.Attempt.ObtainedMarks))
			}
		}
		if len(ats) < j.limit {
			return nil
		}
	}
}
