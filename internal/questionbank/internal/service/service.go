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

	"github.com/ecodeclub/ekit/slice"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/repository"
	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("题目不存在")

//go:generate mockgen -source=./service.go -destination=../../mocks/questionbank.mock.go -package=questionbankmocks -typed=true Service
type Service interface {
	Save(ctx context.Context, q domain.Question) (int64, error)
	Delete(ctx context.Context, id int64) error
	// List 管理员使用，带答案
	List(ctx context.Context, jobID int64, round int) ([]domain.Question, error)
	// ListForRound 候选人使用，不带答案
	ListForRound(ctx context.Context, jobID int64, round int) ([]domain.Question, error)
	AnswerKeys(ctx context.Context, jobID int64, round int) (map[int64]domain.AnswerKey, error)
	TotalMarks(ctx context.Context, jobID int64, round int) (int, error)
}

type service struct {
	repo repository.QuestionRepository
}

func NewService(repo repository.QuestionRepository) Service {
	return &service{repo: repo}
}

func (s *service) Save(ctx context.Context, q domain.Question) (int64, error) {
	if err := q.Validate(); err != nil {
		return 0, err
	}
	id, err := s.repo.Save(ctx, q)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrQuestionNotFound
	}
	return id, err
}

func (s *service) Delete(ctx context.Context, id int64) error {
	q, err := s.repo.FindById(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrQuestionNotFound
	}
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, q)
}

func (s *service) List(ctx context.Context, jobID int64, round int) ([]domain.Question, error) {
	return s.repo.FindByRound(ctx, jobID, round)
}

func (s *service) ListForRound(ctx context.Context, jobID int64, round int) ([]domain.Question, error) {
	qs, err := s.repo.FindByRound(ctx, jobID, round)
	return slice.Map(qs, func(idx int, src domain.Question) domain.Question {
		return src.Stripped()
	}), err
}

func (s *service) AnswerKeys(ctx context.Context, jobID int64, round int) (map[int64]domain.AnswerKey, error) {
	qs, err := s.repo.FindByRound(ctx, jobID, round)
	if err != nil {
		return nil, err
	}
	return slice.ToMapV(qs, func(element domain.Question) (int64, domain.AnswerKey) {
		return element.ID, element.AnswerKey()
	}), nil
}

func (s *service) TotalMarks(ctx context.Context, jobID int64, round int) (int, error) {
	qs, err := s.repo.FindByRound(ctx, jobID, round)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, q := range qs {
		total += q.Marks
	}
	return total, nil
}
