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

package repository

import (
	"errors"

	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository/dao"
	"gorm.io/gorm"
)

// translate 把 dao 层的错误转换成领域错误，notFound 是记录不存在时返回的错误
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, dao.ErrVersionConflict):
		return domain.ErrStaleState
	case errors.Is(err, dao.ErrSlotFull):
		return domain.ErrSlotFull
	case errors.Is(err, dao.ErrSlotDisabled):
		return domain.ErrSlotDisabled
	case errors.Is(err, dao.ErrSlotTaken):
		return domain.ErrAlreadyBooked
	case errors.Is(err, dao.ErrCapacityBelowBookings):
		return domain.ErrCapacityBelowBookings
	case errors.Is(err, dao.ErrAttemptActive):
		return domain.ErrAttemptAlreadyActive
	case errors.Is(err, dao.ErrAttemptSubmitted):
		return domain.ErrAttemptSubmitted
	default:
		return err
	}
}
