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
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/webflowdev33/talent-bridge-sub000/internal/hiring/internal/domain"
)

var (
	slotReservations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hiring_slot_reservations_total",
			Help: "Total number of slot reservations",
		},
		[]string{"result"},
	)

	testSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hiring_test_submissions_total",
			Help: "Total number of graded test attempts",
		},
		[]string{"mode", "result"},
	)

	testViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hiring_test_violations_total",
			Help: "Total number of proctoring violations",
		},
		[]string{"type"},
	)
)

// reservationResult 错误转成指标标签
func reservationResult(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrSlotFull):
		return "full"
	case errors.Is(err, domain.ErrSlotDisabled):
		return "disabled"
	case errors.Is(err, domain.ErrStaleState):
		return "stale"
	default:
		return "error"
	}
}

func submitMode(auto bool) string {
	if auto {
		return "auto"
	}
	return "manual"
}

func passLabel(passed bool) string {
	if passed {
		return "pass"
	}
	return "fail"
}
