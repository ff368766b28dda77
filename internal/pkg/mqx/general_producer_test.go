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

package mqx

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type statusEvent struct {
	Aid int64  `json:"aid"`
	To  string `json:"to"`
}

func TestGeneralProducer_Trace(t *testing.T) {
	const topic = "hiring_application_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	recorder := tracetest.NewSpanRecorder()
	tq := NewTraceMQWithProvider(q, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))

	consumer, err := tq.Consumer(topic, "test")
	require.NoError(t, err)
	p, err := NewGeneralProducer[statusEvent](tq, topic)
	require.NoError(t, err)

	err = p.Produce(context.Background(), statusEvent{Aid: 100, To: "selected"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var got statusEvent
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, statusEvent{Aid: 100, To: "selected"}, got)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "mq.produce", spans[0].Name())
	assert.Equal(t, codes.Ok, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.String("messaging.topic", topic))
}
