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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/domain"
)

const jobExpiration = 24 * time.Hour

var ErrJobNotFound = errors.New("缓存中没有职位")

type JobCache interface {
	SetJob(ctx context.Context, job domain.Job) error
	GetJob(ctx context.Context, id int64) (domain.Job, error)
	DelJob(ctx context.Context, id int64) error
}

type jobCache struct {
	ec ecache.Cache
}

func NewJobCache(ec ecache.Cache) JobCache {
	return &jobCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "jobpost:",
		},
	}
}

func (c *jobCache) SetJob(ctx context.Context, job domain.Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "序列化职位失败")
	}
	return c.ec.Set(ctx, c.key(job.ID), string(data), jobExpiration)
}

func (c *jobCache) GetJob(ctx context.Context, id int64) (domain.Job, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Job{}, ErrJobNotFound
	}
	if val.Err != nil {
		return domain.Job{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var job domain.Job
	err := json.Unmarshal([]byte(val.Val.(string)), &job)
	if err != nil {
		return domain.Job{}, errors.Wrap(err, "反序列化职位失败")
	}
	return job, nil
}

func (c *jobCache) DelJob(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

func (c *jobCache) key(id int64) string {
	return fmt.Sprintf("job:%d", id)
}
