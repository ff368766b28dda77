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

package consumer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring"
)

// 企业微信文本消息最长 2048 字节
const maxContentBytes = 2048

const hiringRobot = "hiring"

var statusNames = map[string]string{
	"":              "无",
	"applied":       "已申请",
	"slot_selected": "已预约",
	"test_enabled":  "考试已开放",
	"test_taken":    "已交卷",
	"passed":        "本轮通过",
	"failed":        "本轮未通过",
	"selected":      "已录用",
	"rejected":      "已拒绝",
}

type Text struct {
	Content string `json:"content"`
}

type WechatRobotMessage struct {
	MsgType string `json:"msgtype"`
	Text    Text   `json:"text"`
}

type HTTPPOSTFunc func(url, contentType string, body io.Reader) (resp *http.Response, err error)

type WechatRobotConfig struct {
	ChatRobots map[string]string `yaml:"chatRobots"`
}

// HiringEventConsumer 把申请状态变更推送到企业微信群
type HiringEventConsumer struct {
	consumer mq.Consumer
	config   *WechatRobotConfig
	post     HTTPPOSTFunc
	logger   *elog.Component
}

func NewHiringEventConsumer(q mq.MQ, config *WechatRobotConfig) (*HiringEventConsumer, error) {
	groupID := "notification.hiring"
	consumer, err := q.Consumer(hiring.ApplicationEventName, groupID)
	if err != nil {
		return nil, err
	}
	return &HiringEventConsumer{
		consumer: consumer,
		config:   config,
		post:     http.Post,
		logger:   elog.DefaultLogger.With(elog.FieldComponent("notification.hiring.consumer")),
	}, nil
}

// Start 后面要考虑借助 ctx 来优雅退出
func (c *HiringEventConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费申请状态事件失败", elog.FieldErr(err))
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()
}

func (c *HiringEventConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt hiring.ApplicationEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	webhookURL, ok := c.config.ChatRobots[hiringRobot]
	if !ok {
		c.logger.Error("没有配置招聘通知机器人", elog.Int64("aid", evt.Aid))
		return errors.New("没有配置招聘通知机器人")
	}
	data, err := json.Marshal(&WechatRobotMessage{
		MsgType: "text",
		Text:    Text{Content: truncate(content(evt), maxContentBytes)},
	})
	if err != nil {
		return fmt.Errorf("序列化微信Robot消息失败: %w", err)
	}
	resp, err := c.post(webhookURL, "application/json", bytes.NewBuffer(data))
	if err != nil {
		return fmt.Errorf("向微信发送请求失败: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("微信处理请求失败: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

func content(evt hiring.ApplicationEvent) string {
	return fmt.Sprintf("申请 %d 状态变更：%s -> %s\n候选人：%d\n职位：%d\n当前轮次：%d",
		evt.Aid, statusName(evt.From), statusName(evt.To), evt.Uid, evt.JobId, evt.Round)
}

func statusName(status string) string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return status
}

// truncate 按字节截断，不会截断在一个字符的中间
func truncate(content string, limit int) string {
	if len(content) <= limit {
		return content
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut]
}
