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

type Role string

const (
	RoleCandidate Role = "candidate"
	RoleAdmin     Role = "admin"
)

// Actor 调用者身份，由鉴权层给出
type Actor struct {
	Uid  int64
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// CanAccess 管理员或者申请人本人
func (a Actor) CanAccess(app Application) bool {
	return a.IsAdmin() || (a.Uid > 0 && a.Uid == app.Uid)
}

// ApplicationFilter 管理员列表查询条件，零值表示不过滤
type ApplicationFilter struct {
	JobID  int64
	Status ApplicationStatus
	Offset int
	Limit  int
}

// ViolationResult 记录违规之后的累计次数
type ViolationResult struct {
	Total         int
	AutoSubmitted bool
	Attempt       Attempt
}
