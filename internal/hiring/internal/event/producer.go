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

package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/webflowdev33/talent-bridge-sub000/internal/pkg/mqx"
)

const ApplicationEventName = "hiring_application_events"

// ApplicationEvent 申请状态发生变化之后发送
type ApplicationEvent struct {
	Aid   int64  `json:"aid"`
	Uid   int64  `json:"uid"`
	JobId int64  `json:"jobId"`
	Round int    `json:"round"`
	From  string `json:"from"`
	To    string `json:"to"`
	Ctime int64  `json:"ctime"`
}

//go:generate mockgen -source=./producer.go -destination=./mocks/producer.mock.go -package=evtmocks -typed=true ApplicationEventProducer
type ApplicationEventProducer interface {
	Produce(ctx context.Context, evt ApplicationEvent) error
}

func NewApplicationEventProducer(q mq.MQ) (ApplicationEventProducer, error) {
	p, err := mqx.NewGeneralProducer[ApplicationEvent](q, ApplicationEventName)
	if err != nil {
		return nil, err
	}
	return p, nil
}
