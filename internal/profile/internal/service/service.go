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

	"github.com/webflowdev33/talent-bridge-sub000/internal/profile/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/profile/internal/repository"
)

//go:generate mockgen -source=./service.go -destination=../../mocks/profile.mock.go -package=profilemocks -typed=true Service
type Service interface {
	Save(ctx context.Context, p domain.Profile) error
	Get(ctx context.Context, uid int64) (domain.Profile, error)
	IsComplete(ctx context.Context, uid int64) (bool, error)
}

type service struct {
	repo repository.ProfileRepository
}

func NewService(repo repository.ProfileRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, p domain.Profile) error {
	return s.repo.Save(ctx, p)
}

func (s *service) Get(ctx context.Context, uid int64) (domain.Profile, error) {
	return s.repo.Find(ctx, uid)
}

func (s *service) IsComplete(ctx context.Context, uid int64) (bool, error) {
	p, err := s.repo.Find(ctx, uid)
	if err != nil {
		return false, err
	}
	return p.Complete(), nil
}
