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
	"errors"

	"github.com/webflowdev33/talent-bridge-sub000/internal/profile/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/profile/internal/repository/dao"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Save(ctx context.Context, p domain.Profile) error
	// Find 没有资料时返回空的 Profile
	Find(ctx context.Context, uid int64) (domain.Profile, error)
}

type profileRepository struct {
	dao dao.ProfileDAO
}

func NewProfileRepository(d dao.ProfileDAO) ProfileRepository {
	return &profileRepository{dao: d}
}

func (repo *profileRepository) Save(ctx context.Context, p domain.Profile) error {
	return repo.dao.Upsert(ctx, dao.Profile{
		Uid:       p.Uid,
		Name:      p.Name,
		Phone:     p.Phone,
		ResumeURL: p.ResumeURL,
	})
}

func (repo *profileRepository) Find(ctx context.Context, uid int64) (domain.Profile, error) {
	p, err := repo.dao.FindByUid(ctx, uid)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Profile{Uid: uid}, nil
	}
	if err != nil {
		return domain.Profile{}, err
	}
	return domain.Profile{
		Uid:       p.Uid,
		Name:      p.Name,
		Phone:     p.Phone,
		ResumeURL: p.ResumeURL,
		Utime:     p.Utime,
	}, nil
}
