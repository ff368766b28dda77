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

// AdminHandler 挂在管理后台上，角色由中间件校验
type AdminHandler struct {
	svc     service.ApplicationService
	slotSvc service.SlotService
	evalSvc service.EvaluationService
}

func NewAdminHandler(svc service.ApplicationService,
	slotSvc service.SlotService,
	evalSvc service.EvaluationService) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		slotSvc: slotSvc,
		evalSvc: evalSvc,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	sg := server.Group("/slots")
	sg.POST("/save", ginx.B[SaveSlotReq](h.SaveSlot))
	sg.POST("/list", ginx.B[Page](h.ListSlots))
	sg.POST("/detail", ginx.B[IdReq](h.SlotDetail))
	sg.POST("/toggle", ginx.B[ToggleSlotReq](h.ToggleSlot))

	ag := server.Group("/applications")
	ag.POST("/list", ginx.BS[ListApplicationReq](h.List))
	ag.POST("/detail", ginx.BS[IdReq](h.Detail))
	ag.POST("/delete", ginx.BS[IdReq](h.Delete))
	ag.POST("/approve", ginx.BS[TransitionReq](h.Approve))
	ag.POST("/reject", ginx.BS[TransitionReq](h.Reject))
	ag.POST("/enable_test", ginx.BS[EnableTestReq](h.EnableTest))
	ag.POST("/reassign_slot", ginx.BS[ReassignSlotReq](h.ReassignSlot))
	ag.POST("/release_slot", ginx.BS[IdReq](h.ReleaseSlot))
	ag.POST("/change_job", ginx.BS[ChangeJobReq](h.ChangeJob))
	ag.POST("/round_outcome", ginx.BS[IdReq](h.RecordRoundOutcome))
	ag.POST("/breakdown", ginx.BS[IdReq](h.Breakdown))
	ag.POST("/attempts", ginx.BS[IdReq](h.Attempts))

	eg := server.Group("/evaluations")
	eg.POST("/parameters/save", ginx.B[SaveParameterReq](h.SaveParameter))
	eg.POST("/parameters/list", ginx.B[ListParameterReq](h.ListParameters))
	eg.POST("/record", ginx.BS[RecordEvaluationReq](h.RecordEvaluation))
	eg.POST("/list", ginx.BS[IdReq](h.Evaluations))
}

func (h *AdminHandler) actor(sess session.Session) domain.Actor {
	return domain.Actor{Uid: sess.Claims().Uid, Role: domain.RoleAdmin}
}

func (h *AdminHandler) SaveSlot(ctx *ginx.Context, req SaveSlotReq) (ginx.Result, error) {
	id, err := h.slotSvc.Save(ctx, req.Slot.toDomain())
	return dataResult(id, err)
}

func (h *AdminHandler) ListSlots(ctx *ginx.Context, req Page) (ginx.Result, error) {
	slots, total, err := h.slotSvc.List(ctx, req.Offset, req.Limit)
	return dataResult(SlotList{Total: total, Slots: newSlots(slots)}, err)
}

func (h *AdminHandler) SlotDetail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	slot, err := h.slotSvc.Detail(ctx, req.ID)
	return dataResult(newSlot(slot), err)
}

func (h *AdminHandler) ToggleSlot(ctx *ginx.Context, req ToggleSlotReq) (ginx.Result, error) {
	err := h.slotSvc.SetEnabled(ctx, req.ID, req.Enabled)
	return dataResult(nil, err)
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListApplicationReq, sess session.Session) (ginx.Result, error) {
	apps, total, err := h.svc.List(ctx, h.actor(sess), domain.ApplicationFilter{
		JobID:  req.JobID,
		Status: domain.ApplicationStatus(req.Status),
		Offset: req.Offset,
		Limit:  req.Limit,
	})
	return dataResult(ApplicationList{Total: total, Applications: newApplications(apps)}, err)
}

func (h *AdminHandler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Detail(ctx, h.actor(sess), req.ID)
	return dataResult(newApplication(app), err)
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, h.actor(sess), req.ID)
	return dataResult(nil, err)
}

func (h *AdminHandler) Approve(ctx *ginx.Context, req TransitionReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Approve(ctx, h.actor(sess), req.Aid, req.Version)
	return dataResult(newApplication(app), err)
}

func (h *AdminHandler) Reject(ctx *ginx.Context, req TransitionReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.Reject(ctx, h.actor(sess), req.Aid, req.Version)
	return dataResult(newApplication(app), err)
}

func (h *AdminHandler) EnableTest(ctx *ginx.Context, req EnableTestReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.EnableTest(ctx, h.actor(sess), req.Aid, req.Round, req.Version)
	return dataResult(newApplication(app), err)
}

func (h *AdminHandler) ReassignSlot(ctx *ginx.Context, req ReassignSlotReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.ReassignSlot(ctx, h.actor(sess), req.Aid, req.SlotID, req.Version)
	return dataResult(newApplication(app), err)
}

func (h *AdminHandler) ReleaseSlot(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.ReleaseSlot(ctx, h.actor(sess), req.ID)
	return dataResult(newApplication(app), err)
}

func (h *AdminHandler) ChangeJob(ctx *ginx.Context, req ChangeJobReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.ChangeJob(ctx, h.actor(sess), req.Aid, req.JobID, req.Version)
	return dataResult(newApplication(app), err)
}

func (h *AdminHandler) RecordRoundOutcome(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	app, err := h.svc.RecordRoundOutcome(ctx, h.actor(sess), req.ID)
	return dataResult(newApplication(app), err)
}

func (h *AdminHandler) Breakdown(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	rbs, err := h.svc.Breakdown(ctx, h.actor(sess), req.ID)
	return dataResult(newBreakdown(rbs), err)
}

func (h *AdminHandler) Attempts(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	ats, err := h.svc.Attempts(ctx, h.actor(sess), req.ID)
	return dataResult(slice.Map(ats, func(idx int, src domain.Attempt) Attempt {
		return newAttempt(src)
	}), err)
}

func (h *AdminHandler) SaveParameter(ctx *ginx.Context, req SaveParameterReq) (ginx.Result, error) {
	id, err := h.evalSvc.SaveParameter(ctx, req.Parameter.toDomain())
	return dataResult(id, err)
}

func (h *AdminHandler) ListParameters(ctx *ginx.Context, req ListParameterReq) (ginx.Result, error) {
	ps, err := h.evalSvc.ListParameters(ctx, req.ActiveOnly)
	return dataResult(slice.Map(ps, func(idx int, src domain.Parameter) Parameter {
		return newParameter(src)
	}), err)
}

func (h *AdminHandler) RecordEvaluation(ctx *ginx.Context, req RecordEvaluationReq, sess session.Session) (ginx.Result, error) {
	e, err := h.svc.RecordEvaluation(ctx, h.actor(sess), req.Evaluation.toDomain())
	return dataResult(newEvaluation(e), err)
}

func (h *AdminHandler) Evaluations(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	evals, err := h.svc.Evaluations(ctx, h.actor(sess), req.ID)
	return dataResult(newEvaluations(evals), err)
}
