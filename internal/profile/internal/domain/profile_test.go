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

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfile_Complete(t *testing.T) {
	testCases := []struct {
		name    string
		profile Profile
		want    bool
	}{
		{
			name:    "完整",
			profile: Profile{Name: "张三", Phone: "13800000000", ResumeURL: "https://x/resume.pdf"},
			want:    true,
		},
		{
			name:    "没有简历",
			profile: Profile{Name: "张三", Phone: "13800000000"},
		},
		{
			name:    "只有空白",
			profile: Profile{Name: " ", Phone: "13800000000", ResumeURL: "https://x/resume.pdf"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.profile.Complete())
		})
	}
}
