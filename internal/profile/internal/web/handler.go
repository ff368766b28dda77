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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/webflowdev33/talent-bridge-sub000/internal/profile/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/profile/internal/service"
)

type Profile struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	ResumeURL string `json:"resumeURL"`
	Complete  bool   `json:"complete"`
}

type SaveReq struct {
	Profile Profile `json:"profile"`
}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/profile")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/detail", ginx.S(h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Save(ctx, domain.Profile{
		Uid:       sess.Claims().Uid,
		Name:      req.Profile.Name,
		Phone:     req.Profile.Phone,
		ResumeURL: req.Profile.ResumeURL,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Get(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: Profile{
		Name:      p.Name,
		Phone:     p.Phone,
		ResumeURL: p.ResumeURL,
		Complete:  p.Complete(),
	}}, nil
}
