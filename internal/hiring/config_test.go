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
	"testing"

	"github.com/gotomicro/ego/core/econf"
	"github.com/stretchr/testify/assert"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/service"
)

// econf 会缓存读过的 key，每个用例使用不同的 key
func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		name   string
		key    string
		before func()
		want   service.Config
	}{
		{
			name:   "没有配置",
			key:    "hiring_missing",
			before: func() {},
			want:   service.Config{MaxViolations: 3},
		},
		{
			name: "正常配置",
			key:  "hiring_normal",
			before: func() {
				econf.Set("hiring_normal", map[string]any{"maxViolations": 5})
			},
			want: service.Config{MaxViolations: 5},
		},
		{
			name: "关闭违规自动交卷",
			key:  "hiring_off",
			before: func() {
				econf.Set("hiring_off", map[string]any{"maxViolations": 0})
			},
			want: service.Config{MaxViolations: 0},
		},
		{
			name: "格式错误使用默认值",
			key:  "hiring_malformed",
			before: func() {
				econf.Set("hiring_malformed", map[string]any{"maxViolations": "很多次"})
			},
			want: service.Config{MaxViolations: 3},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.before()
			assert.Equal(t, tc.want, loadConfig(tc.key))
		})
	}
}
