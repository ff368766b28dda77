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
	"database/sql"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/repository/dao"
)

//go:generate mockgen -source=./application.go -destination=./mocks/application.mock.go -package=repomocks -typed=true ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, app domain.Application) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Application, error)
	FindByUid(ctx context.Context, uid int64) ([]domain.Application, error)
	List(ctx context.Context, jobID int64, status domain.ApplicationStatus, offset, limit int) ([]domain.Application, int64, error)
	UpdateState(ctx context.Context, app domain.Application, expectedVersion int64) error
	Delete(ctx context.Context, id int64) error
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (repo *applicationRepository) Create(ctx context.Context, app domain.Application) (int64, error) {
	id, err := repo.dao.Create(ctx, repo.toEntity(app))
	if errors.Is(err, dao.ErrDuplicate) {
		return 0, domain.ErrAlreadyApplied
	}
	return id, err
}

func (repo *applicationRepository) FindById(ctx context.Context, id int64) (domain.Application, error) {
	app, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Application{}, translate(err, domain.ErrApplicationNotFound)
	}
	return repo.toDomain(app), nil
}

func (repo *applicationRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Application, error) {
	apps, err := repo.dao.FindByUid(ctx, uid)
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	}), err
}

func (repo *applicationRepository) List(ctx context.Context, jobID int64, status domain.ApplicationStatus, offset, limit int) ([]domain.Application, int64, error) {
	apps, err := repo.dao.List(ctx, jobID, status.String(), offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := repo.dao.Count(ctx, jobID, status.String())
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(apps, func(idx int, src dao.Application) domain.Application {
		return repo.toDomain(src)
	}), total, nil
}

func (repo *applicationRepository) UpdateState(ctx context.Context, app domain.Application, expectedVersion int64) error {
	err := repo.dao.UpdateState(ctx, repo.toEntity(app), expectedVersion)
	if errors.Is(err, dao.ErrDuplicate) {
		return domain.ErrAlreadyApplied
	}
	return translate(err, domain.ErrApplicationNotFound)
}

func (repo *applicationRepository) Delete(ctx context.Context, id int64) error {
	return translate(repo.dao.Delete(ctx, id), domain.ErrApplicationNotFound)
}

func (repo *applicationRepository) toEntity(app domain.Application) dao.Application {
	return dao.Application{
		Id:            app.ID,
		JobId:         app.JobID,
		Uid:           app.Uid,
		SlotId:        sql.NullInt64{Int64: app.SlotID, Valid: app.SlotID > 0},
		CurrentRound:  app.CurrentRound,
		AdminApproved: app.AdminApproved,
		TestEnabled:   app.TestEnabled,
		Status:        app.Status.String(),
		Version:       app.Version,
	}
}

func (repo *applicationRepository) toDomain(app dao.Application) domain.Application {
	return toApplication(app)
}

func toApplication(app dao.Application) domain.Application {
	return domain.Application{
		ID:            app.Id,
		JobID:         app.JobId,
		Uid:           app.Uid,
		SlotID:        app.SlotId.Int64,
		CurrentRound:  app.CurrentRound,
		AdminApproved: app.AdminApproved,
		TestEnabled:   app.TestEnabled,
		Status:        domain.ApplicationStatus(app.Status),
		Version:       app.Version,
		Ctime:         app.Ctime,
		Utime:         app.Utime,
	}
}
