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
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/econf"
	"github.com/webflowdev33/talent-bridge-sub000/internal/notification/wechat/consumer"
)

type Consumer interface {
	Start(ctx context.Context)
}

func initMQConsumers(q mq.MQ) []Consumer {
	return []Consumer{
		initHiringEventConsumer(q),
	}
}

func initHiringEventConsumer(q mq.MQ) *consumer.HiringEventConsumer {
	var cfg consumer.WechatRobotConfig
	err := econf.UnmarshalKey("qywechat", &cfg)
	if err != nil {
		panic(err)
	}
	res, err := consumer.NewHiringEventConsumer(q, &cfg)
	if err != nil {
		panic(err)
	}
	return res
}
