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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/errs"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank/internal/service"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/questions")
	g.POST("/save", ginx.B[SaveReq](h.Save))
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/delete", ginx.B[IdReq](h.Delete))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveReq) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.Question.toDomain())
	switch {
	case errors.Is(err, domain.ErrInvalidQuestion):
		return ginx.Result{Code: errs.InvalidQuestion.Code, Msg: errs.InvalidQuestion.Msg}, nil
	case errors.Is(err, service.ErrQuestionNotFound):
		return ginx.Result{Code: errs.QuestionNotFound.Code, Msg: errs.QuestionNotFound.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{Data: id}, nil
	}
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	qs, err := h.svc.List(ctx, req.JobID, req.RoundNumber)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newQuestions(qs)}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx, req.ID)
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		return ginx.Result{Code: errs.QuestionNotFound.Code, Msg: errs.QuestionNotFound.Msg}, nil
	case err != nil:
		return systemErrorResult, err
	default:
		return ginx.Result{}, nil
	}
}
