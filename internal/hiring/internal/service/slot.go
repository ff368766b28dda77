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

package service

import (
	"context"
	"time"

	"github.com/gotomicro/ego/core/elog"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository"
)

//go:generate mockgen -source=./slot.go -destination=../../mocks/slot.mock.go -package=hiringmocks -typed=true SlotService
type SlotService interface {
	Save(ctx context.Context, slot domain.Slot) (int64, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	Detail(ctx context.Context, id int64) (domain.Slot, error)
	List(ctx context.Context, offset, limit int) ([]domain.Slot, int64, error)
	// Available 今天及以后、开放中、还有余量的时间段
	Available(ctx context.Context) ([]domain.Slot, error)
	// Reserve 为 next 占一个座位，next 是已经完成状态变更的申请，
	// expectedVersion 是变更之前的版本号
	Reserve(ctx context.Context, slotID int64, next domain.Application, expectedVersion int64) error
	// Move 管理员改约，原来的座位随之释放
	Move(ctx context.Context, slotID int64, next domain.Application, expectedVersion int64) error
	Release(ctx context.Context, aid int64) error
}

type slotService struct {
	repo   repository.SlotRepository
	now    func() time.Time
	logger *elog.Component
}

func NewSlotService(repo repository.SlotRepository) SlotService {
	return &slotService{
		repo:   repo,
		now:    time.Now,
		logger: elog.DefaultLogger.With(elog.FieldComponent("hiring.slot")),
	}
}

func (s *slotService) Save(ctx context.Context, slot domain.Slot) (int64, error) {
	if err := slot.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, slot)
}

func (s *slotService) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	return s.repo.SetEnabled(ctx, id, enabled)
}

func (s *slotService) Detail(ctx context.Context, id int64) (domain.Slot, error) {
	return s.repo.FindById(ctx, id)
}

func (s *slotService) List(ctx context.Context, offset, limit int) ([]domain.Slot, int64, error) {
	return s.repo.List(ctx, offset, limit)
}

func (s *slotService) Available(ctx context.Context) ([]domain.Slot, error) {
	slots, err := s.repo.ListEnabledSince(ctx, s.now().Format(domain.SlotDateLayout))
	if err != nil {
		return nil, err
	}
	res := make([]domain.Slot, 0, len(slots))
	for _, slot := range slots {
		if slot.Available() {
			res = append(res, slot)
		}
	}
	return res, nil
}

func (s *slotService) Reserve(ctx context.Context, slotID int64, next domain.Application, expectedVersion int64) error {
	err := s.repo.Reserve(ctx, slotID, next, expectedVersion, true)
	slotReservations.WithLabelValues(reservationResult(err)).Inc()
	return err
}

func (s *slotService) Move(ctx context.Context, slotID int64, next domain.Application, expectedVersion int64) error {
	err := s.repo.Reserve(ctx, slotID, next, expectedVersion, false)
	slotReservations.WithLabelValues(reservationResult(err)).Inc()
	if err == nil {
		s.logger.Info("管理员改约",
			elog.Int64("aid", next.ID),
			elog.Int64("slotId", slotID))
	}
	return err
}

func (s *slotService) Release(ctx context.Context, aid int64) error {
	return s.repo.Release(ctx, aid)
}
