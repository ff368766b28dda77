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
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
	"github.com/webflowdev33/talent-bridge-sub000/internal/questionbank"
)

type Application struct {
	ID            int64  `json:"id"`
	JobID         int64  `json:"jobId"`
	Uid           int64  `json:"uid,omitempty"`
	SlotID        int64  `json:"slotId,omitempty"`
	CurrentRound  int    `json:"currentRound"`
	AdminApproved bool   `json:"adminApproved"`
	TestEnabled   bool   `json:"testEnabled"`
	Status        string `json:"status"`
	Version       int64  `json:"version"`
	Ctime         int64  `json:"ctime,omitempty"`
	Utime         int64  `json:"utime,omitempty"`
}

func newApplication(app domain.Application) Application {
	return Application{
		ID:            app.ID,
		JobID:         app.JobID,
		Uid:           app.Uid,
		SlotID:        app.SlotID,
		CurrentRound:  app.CurrentRound,
		AdminApproved: app.AdminApproved,
		TestEnabled:   app.TestEnabled,
		Status:        app.Status.String(),
		Version:       app.Version,
		Ctime:         app.Ctime,
		Utime:         app.Utime,
	}
}

func newApplications(apps []domain.Application) []Application {
	return slice.Map(apps, func(idx int, src domain.Application) Application {
		return newApplication(src)
	})
}

type ApplicationList struct {
	Total        int64         `json:"total"`
	Applications []Application `json:"applications"`
}

type Slot struct {
	ID          int64  `json:"id,omitempty"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	MaxCapacity int    `json:"maxCapacity"`
	Enabled     bool   `json:"enabled"`
	Booked      int    `json:"booked"`
	Remaining   int    `json:"remaining"`
}

func newSlot(s domain.Slot) Slot {
	return Slot{
		ID:          s.ID,
		Date:        s.Date,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		MaxCapacity: s.MaxCapacity,
		Enabled:     s.Enabled,
		Booked:      s.Booked,
		Remaining:   s.Remaining(),
	}
}

func newSlots(slots []domain.Slot) []Slot {
	return slice.Map(slots, func(idx int, src domain.Slot) Slot {
		return newSlot(src)
	})
}

func (s Slot) toDomain() domain.Slot {
	return domain.Slot{
		ID:          s.ID,
		Date:        s.Date,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		MaxCapacity: s.MaxCapacity,
		Enabled:     s.Enabled,
	}
}

type SlotList struct {
	Total int64  `json:"total"`
	Slots []Slot `json:"slots"`
}

type Attempt struct {
	ID              int64  `json:"id"`
	ApplicationID   int64  `json:"applicationId"`
	RoundNumber     int    `json:"roundNumber"`
	StartedAt       int64  `json:"startedAt"`
	EndedAt         int64  `json:"endedAt,omitempty"`
	Deadline        int64  `json:"deadline"`
	DurationMinutes int    `json:"durationMinutes"`
	TotalMarks      int    `json:"totalMarks"`
	PassingMarks    int    `json:"passingMarks"`
	ObtainedMarks   int    `json:"obtainedMarks"`
	IsPassed        bool   `json:"isPassed"`
	Status          string `json:"status"`
}

func newAttempt(at domain.Attempt) Attempt {
	res := Attempt{
		ID:              at.ID,
		ApplicationID:   at.ApplicationID,
		RoundNumber:     at.RoundNumber,
		StartedAt:       at.StartedAt,
		EndedAt:         at.EndedAt,
		Deadline:        at.Deadline(),
		DurationMinutes: at.DurationMinutes,
		TotalMarks:      at.TotalMarks,
		PassingMarks:    at.PassingMarks,
		Status:          string(at.Status()),
	}
	// 交卷之前不返回成绩
	if at.IsSubmitted {
		res.ObtainedMarks = at.ObtainedMarks
		res.IsPassed = at.IsPassed
	}
	return res
}

type Question struct {
	ID      int64    `json:"id"`
	Content string   `json:"content"`
	Options []string `json:"options"`
	Marks   int      `json:"marks"`
}

func newQuestions(qs []questionbank.Question) []Question {
	return slice.Map(qs, func(idx int, src questionbank.Question) Question {
		return Question{
			ID:      src.ID,
			Content: src.Content,
			Options: src.Options,
			Marks:   src.Marks,
		}
	})
}

type Parameter struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	MaxScore    int    `json:"maxScore"`
	Active      bool   `json:"active"`
}

func newParameter(p domain.Parameter) Parameter {
	return Parameter{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		MaxScore:    p.MaxScore,
		Active:      p.Active,
	}
}

func (p Parameter) toDomain() domain.Parameter {
	return domain.Parameter{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		MaxScore:    p.MaxScore,
		Active:      p.Active,
	}
}

type Score struct {
	ParameterID   int64  `json:"parameterId"`
	ParameterName string `json:"parameterName,omitempty"`
	MaxScore      int    `json:"maxScore,omitempty"`
	Score         int    `json:"score"`
	Remarks       string `json:"remarks,omitempty"`
}

type Evaluation struct {
	ID             int64   `json:"id,omitempty"`
	ApplicationID  int64   `json:"applicationId"`
	RoundNumber    int     `json:"roundNumber"`
	EvaluatorID    int64   `json:"evaluatorId,omitempty"`
	Recommendation string  `json:"recommendation"`
	OverallRemarks string  `json:"overallRemarks,omitempty"`
	InternalNotes  string  `json:"internalNotes,omitempty"`
	Visible        bool    `json:"visible"`
	Scores         []Score `json:"scores"`
	Percentage     float64 `json:"percentage"`
	Ctime          int64   `json:"ctime,omitempty"`
}

func newEvaluation(e domain.Evaluation) Evaluation {
	return Evaluation{
		ID:             e.ID,
		ApplicationID:  e.ApplicationID,
		RoundNumber:    e.RoundNumber,
		EvaluatorID:    e.EvaluatorID,
		Recommendation: string(e.Recommendation),
		OverallRemarks: e.OverallRemarks,
		InternalNotes:  e.InternalNotes,
		Visible:        e.Visible,
		Percentage:     e.Percentage(),
		Ctime:          e.Ctime,
		Scores: slice.Map(e.Scores, func(idx int, src domain.Score) Score {
			return Score{
				ParameterID:   src.ParameterID,
				ParameterName: src.ParameterName,
				MaxScore:      src.MaxScore,
				Score:         src.Score,
				Remarks:       src.Remarks,
			}
		}),
	}
}

func newEvaluations(evals []domain.Evaluation) []Evaluation {
	return slice.Map(evals, func(idx int, src domain.Evaluation) Evaluation {
		return newEvaluation(src)
	})
}

func (e Evaluation) toDomain() domain.Evaluation {
	return domain.Evaluation{
		ApplicationID:  e.ApplicationID,
		RoundNumber:    e.RoundNumber,
		Recommendation: domain.Recommendation(e.Recommendation),
		OverallRemarks: e.OverallRemarks,
		InternalNotes:  e.InternalNotes,
		Visible:        e.Visible,
		Scores: slice.Map(e.Scores, func(idx int, src Score) domain.Score {
			return domain.Score{
				ParameterID: src.ParameterID,
				Score:       src.Score,
				Remarks:     src.Remarks,
			}
		}),
	}
}

type RoundBreakdown struct {
	Round    int    `json:"round"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Score    int    `json:"score"`
	Total    int    `json:"total"`
	Inferred bool   `json:"inferred"`
}

func newBreakdown(rbs []domain.RoundBreakdown) []RoundBreakdown {
	return slice.Map(rbs, func(idx int, src domain.RoundBreakdown) RoundBreakdown {
		return RoundBreakdown{
			Round:    src.Round,
			Name:     src.Name,
			Status:   string(src.Status),
			Score:    src.Score,
			Total:    src.Total,
			Inferred: src.Inferred,
		}
	})
}

type ViolationResult struct {
	Total         int     `json:"total"`
	AutoSubmitted bool    `json:"autoSubmitted"`
	Attempt       Attempt `json:"attempt"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type ApplyReq struct {
	JobID int64 `json:"jobId"`
}

type SelectSlotReq struct {
	Aid    int64 `json:"aid"`
	SlotID int64 `json:"slotId"`
}

type AttemptReq struct {
	AttemptID int64 `json:"attemptId"`
}

type AnswerReq struct {
	AttemptID      int64  `json:"attemptId"`
	QuestionID     int64  `json:"questionId"`
	SelectedAnswer string `json:"selectedAnswer"`
}

type ViolationReq struct {
	AttemptID int64  `json:"attemptId"`
	Type      string `json:"type"`
}

// TransitionReq Version 为 0 表示不校验版本号
type TransitionReq struct {
	Aid     int64 `json:"aid"`
	Version int64 `json:"version,omitempty"`
}

type EnableTestReq struct {
	Aid     int64 `json:"aid"`
	Round   int   `json:"round"`
	Version int64 `json:"version,omitempty"`
}

type ReassignSlotReq struct {
	Aid     int64 `json:"aid"`
	SlotID  int64 `json:"slotId"`
	Version int64 `json:"version,omitempty"`
}

type ChangeJobReq struct {
	Aid     int64 `json:"aid"`
	JobID   int64 `json:"jobId"`
	Version int64 `json:"version,omitempty"`
}

type ListApplicationReq struct {
	JobID  int64  `json:"jobId,omitempty"`
	Status string `json:"status,omitempty"`
	Offset int    `json:"offset,omitempty"`
	Limit  int    `json:"limit,omitempty"`
}

type SaveSlotReq struct {
	Slot Slot `json:"slot"`
}

type ToggleSlotReq struct {
	ID      int64 `json:"id"`
	Enabled bool  `json:"enabled"`
}

type SaveParameterReq struct {
	Parameter Parameter `json:"parameter"`
}

type ListParameterReq struct {
	ActiveOnly bool `json:"activeOnly"`
}

type RecordEvaluationReq struct {
	Evaluation Evaluation `json:"evaluation"`
}
