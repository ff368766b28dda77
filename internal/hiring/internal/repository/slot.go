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
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository/dao"
)

//go:generate mockgen -source=./slot.go -destination=./mocks/slot.mock.go -package=repomocks -typed=true SlotRepository
type SlotRepository interface {
	Save(ctx context.Context, slot domain.Slot) (int64, error)
	SetEnabled(ctx context.Context, id int64, enabled bool) error
	// FindById 返回的时间段带有实时预约数
	FindById(ctx context.Context, id int64) (domain.Slot, error)
	List(ctx context.Context, offset, limit int) ([]domain.Slot, int64, error)
	ListEnabledSince(ctx context.Context, date string) ([]domain.Slot, error)
	Reserve(ctx context.Context, slotID int64, app domain.Application, expectedVersion int64, requireEmpty bool) error
	Release(ctx context.Context, aid int64) error
}

type slotRepository struct {
	dao dao.SlotDAO
}

func NewSlotRepository(d dao.SlotDAO) SlotRepository {
	return &slotRepository{dao: d}
}

func (repo *slotRepository) Save(ctx context.Context, slot domain.Slot) (int64, error) {
	id, err := repo.dao.Save(ctx, dao.Slot{
		Id:          slot.ID,
		Date:        slot.Date,
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		MaxCapacity: slot.MaxCapacity,
		Enabled:     slot.Enabled,
	})
	return id, translate(err, domain.ErrSlotNotFound)
}

func (repo *slotRepository) SetEnabled(ctx context.Context, id int64, enabled bool) error {
	return translate(repo.dao.SetEnabled(ctx, id, enabled), domain.ErrSlotNotFound)
}

func (repo *slotRepository) FindById(ctx context.Context, id int64) (domain.Slot, error) {
	s, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Slot{}, translate(err, domain.ErrSlotNotFound)
	}
	res, err := repo.withBookings(ctx, []dao.Slot{s})
	if err != nil {
		return domain.Slot{}, err
	}
	return res[0], nil
}

func (repo *slotRepository) List(ctx context.Context, offset, limit int) ([]domain.Slot, int64, error) {
	slots, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := repo.dao.Count(ctx)
	if err != nil {
		return nil, 0, err
	}
	res, err := repo.withBookings(ctx, slots)
	return res, total, err
}

func (repo *slotRepository) ListEnabledSince(ctx context.Context, date string) ([]domain.Slot, error) {
	slots, err := repo.dao.ListEnabledSince(ctx, date)
	if err != nil {
		return nil, err
	}
	return repo.withBookings(ctx, slots)
}

func (repo *slotRepository) Reserve(ctx context.Context, slotID int64, app domain.Application, expectedVersion int64, requireEmpty bool) error {
	err := repo.dao.Reserve(ctx, slotID, dao.Application{
		Id:     app.ID,
		Status: app.Status.String(),
	}, expectedVersion, requireEmpty)
	return translate(err, domain.ErrSlotNotFound)
}

func (repo *slotRepository) Release(ctx context.Context, aid int64) error {
	return repo.dao.Release(ctx, aid)
}

// withBookings 预约数总是实时统计
func (repo *slotRepository) withBookings(ctx context.Context, slots []dao.Slot) ([]domain.Slot, error) {
	bookings, err := repo.dao.CountBookings(ctx, slice.Map(slots, func(idx int, src dao.Slot) int64 {
		return src.Id
	}))
	if err != nil {
		return nil, err
	}
	cnts := make(map[int64]int, len(bookings))
	for _, b := range bookings {
		cnts[b.SlotId] = b.Cnt
	}
	return slice.Map(slots, func(idx int, src dao.Slot) domain.Slot {
		return domain.Slot{
			ID:          src.Id,
			Date:        src.Date,
			StartTime:   src.StartTime,
			EndTime:     src.EndTime,
			MaxCapacity: src.MaxCapacity,
			Enabled:     src.Enabled,
			Booked:      cnts[src.Id],
			Ctime:       src.Ctime,
			Utime:       src.Utime,
		}
	}), nil
}
