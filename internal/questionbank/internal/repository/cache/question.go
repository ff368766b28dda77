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
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/domain"
)

const roundExpiration = 12 * time.Hour

var ErrRoundNotFound = errors.New("缓存中没有题目")

// QuestionCache 按职位和轮次缓存整套题目，包括答案
type QuestionCache interface {
	SetRound(ctx context.Context, jobID int64, round int, qs []domain.Question) error
	GetRound(ctx context.Context, jobID int64, round int) ([]domain.Question, error)
	DelRound(ctx context.Context, jobID int64, round int) error
}

type questionCache struct {
	ec ecache.Cache
}

func NewQuestionCache(ec ecache.Cache) QuestionCache {
	return &questionCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "questionbank:",
		},
	}
}

func (c *questionCache) SetRound(ctx context.Context, jobID int64, round int, qs []domain.Question) error {
	data, err := json.Marshal(qs)
	if err != nil {
		return errors.Wrap(err, "序列化题目失败")
	}
	return c.ec.Set(ctx, c.key(jobID, round), string(data), roundExpiration)
}

func (c *questionCache) GetRound(ctx context.Context, jobID int64, round int) ([]domain.Question, error) {
	val := c.ec.Get(ctx, c.key(jobID, round))
	if val.KeyNotFound() {
		return nil, ErrRoundNotFound
	}
	if val.Err != nil {
		return nil, errors.Wrap(val.Err, "查询缓存出错")
	}
	var qs []domain.Question
	err := json.Unmarshal([]byte(val.Val.(string)), &qs)
	if err != nil {
		return nil, errors.Wrap(err, "反序列化题目失败")
	}
	return qs, nil
}

func (c *questionCache) DelRound(ctx context.Context, jobID int64, round int) error {
	_, err := c.ec.Delete(ctx, c.key(jobID, round))
	return err
}

func (c *questionCache) key(jobID int64, round int) string {
	return fmt.Sprintf("job:%d:round:%d", jobID, round)
}
