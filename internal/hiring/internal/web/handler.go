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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/service"
)

// Handler 候选人使用的接口
type Handler struct {
	svc     service.ApplicationService
	slotSvc service.SlotService
}

func NewHandler(svc service.ApplicationService, slotSvc service.SlotService) *Handler {
	return &Handler{
		svc:     svc,
		slotSvc: slotSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("/apply", ginx.BS[ApplyReq](h.Apply))
	g.POST("/list", ginx.S(h.List))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
	g.POST("/select_slot", ginx.BS[SelectSlotReq](h.SelectSlot))
	g.POST("/breakdown", ginx.BS[IdReq](h.Breakdown))
	g.POST("/feedback", ginx.BS[IdReq](h.Feedback))

	server.POST("/slots/available", ginx.W(h.AvailableSlots))

	tg := server.Group("/tests")
	tg.POST("/questions", ginx.BS[IdReq](h.Questions))
	tg.POST("/start", ginx.BS[IdReq](h.Start))
	tg.POST("/list", ginx.BS[IdReq](h.Attempts))
	tg.POST("/answer", ginx.BS[AnswerReq](h.Answer))
	tg.POST("/violation", ginx.BS[ViolationReq](h.Violation))
	tg.POST("/submit", ginx.BS[AttemptReq](h.Submit))
}

func (h *Handler) actor(sess session.Session) domain.Actor {
	return domain.Actor{Uid: sess.Claims().Uid, Role: domain.RoleCandidate}
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Apply(ctx, h.actor(sess), req.JobID)
	return dataResult(newApplication(app), err)
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	apps, err := h.svc.ListMine(ctx, h.actor(sess))
	return dataResult(newApplications(apps), err)
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Detail(ctx, h.actor(sess), req.ID)
	return dataResult(newApplication(app), err)
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, h.actor(sess), req.ID)
	return dataResult(nil, err)
}

func (h *Handler) SelectSlot(ctx *ginx.Context, req SelectSlotReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.SelectSlot(ctx, h.actor(sess), req.Aid, req.SlotID)
	return dataResult(newApplication(app), err)
}

func (h *Handler) Breakdown(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	rbs, err := h.svc.Breakdown(ctx, h.actor(sess), req.ID)
	return dataResult(newBreakdown(rbs), err)
}

func (h *Handler) Feedback(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	evals, err := h.svc.Evaluations(ctx, h.actor(sess), req.ID)
	return dataResult(newEvaluations(evals), err)
}

func (h *Handler) AvailableSlots(ctx *ginx.Context) (ginx.Result, error) {
	slots, err := h.slotSvc.Available(ctx)
	return dataResult(newSlots(slots), err)
}

func (h *Handler) Questions(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	qs, err := h.svc.Questions(ctx, h.actor(sess), req.ID)
	return dataResult(newQuestions(qs), err)
}

func (h *Handler) Start(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	at, err := h.svc.StartTest(ctx, h.actor(sess), req.ID)
	return dataResult(newAttempt(at), err)
}

func (h *Handler) Attempts(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	ats, err := h.svc.Attempts(ctx, h.actor(sess), req.ID)
	return dataResult(slice.Map(ats, func(idx int, src domain.Attempt) Attempt {
		return newAttempt(src)
	}), err)
}

func (h *Handler) Answer(ctx *ginx.Context, req AnswerReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RecordAnswer(ctx, h.actor(sess), req.AttemptID, req.QuestionID, req.SelectedAnswer)
	return dataResult(nil, err)
}

func (h *Handler) Violation(ctx *ginx.Context, req ViolationReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.RecordViolation(ctx, h.actor(sess), req.AttemptID, req.Type)
	return dataResult(ViolationResult{
		Total:         res.Total,
		AutoSubmitted: res.AutoSubmitted,
		Attempt:       newAttempt(res.Attempt),
	}, err)
}

func (h *Handler) Submit(ctx *ginx.Context, req AttemptReq, sess session.Session) (ginx.Result, error) {
	at, err := h.svc.SubmitTest(ctx, h.actor(sess), req.AttemptID)
	return dataResult(newAttempt(at), err)
}
