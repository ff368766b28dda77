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
	"errors"

	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/jobpost/internal/repository"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("职位不存在")

//go:generate mockgen -source=./service.go -destination=../../mocks/jobpost.mock.go -package=jobpostmocks -typed=true Service
type Service interface {
	Save(ctx context.Context, job domain.Job) (int64, error)
	// Detail 不区分是否上线，由调用方决定
	Detail(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	ListActive(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo repository.JobRepository
}

func NewService(repo repository.JobRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, job domain.Job) (int64, error) {
	if err := job.Validate(); err != nil {
		return 0, err
	}
	return s.repo.Save(ctx, job)
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Job, error) {
	job, err := s.repo.Detail(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	return job, err
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	return s.repo.List(ctx, false, offset, limit)
}

func (s *service) ListActive(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	return s.repo.List(ctx, true, offset, limit)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
