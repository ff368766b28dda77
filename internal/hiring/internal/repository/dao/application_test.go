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

package dao

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMApplicationDAO_Create(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantId  int64
		wantErr error
	}{
		{
			name: "重复申请",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `applications` .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				return mockDB
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `applications` .*").
					WillReturnError(errors.New("数据库错误"))
				return mockDB
			},
			wantErr: errors.New("数据库错误"),
		},
		{
			name: "创建成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("INSERT INTO `applications` .*").
					WillReturnResult(sqlmock.NewResult(3, 1))
				return mockDB
			},
			wantId: 3,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMApplicationDAO(openMockDB(t, tc.mock(t)))
			id, err := d.Create(context.Background(), Application{
				JobId:        10,
				Uid:          1,
				CurrentRound: 1,
				Status:       "applied",
			})
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantId, id)
		})
	}
}

func TestGORMApplicationDAO_UpdateState(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "版本不一致",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `applications` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				return mockDB
			},
			wantErr: ErrVersionConflict,
		},
		{
			name: "改投岗位冲突",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `applications` SET .*").
					WillReturnError(&mysql.MySQLError{Number: 1062})
				return mockDB
			},
			wantErr: ErrDuplicate,
		},
		{
			name: "更新成功",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `applications` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMApplicationDAO(openMockDB(t, tc.mock(t)))
			err := d.UpdateState(context.Background(), Application{
				Id:           100,
				JobId:        10,
				CurrentRound: 2,
				Status:       "passed",
			}, 3)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

func TestGORMAttemptDAO_Finish(t *testing.T) {
	enabled := Application{
		Id:            100,
		JobId:         10,
		Uid:           1,
		CurrentRound:  1,
		AdminApproved: true,
		TestEnabled:   true,
		Status:        "test_enabled",
		Version:       4,
	}
	testCases := []struct {
		name       string
		mock       func(t *testing.T) *sql.DB
		correctIds []int64
		wantBefore Application
		wantErr    error
	}{
		{
			name: "已经提交",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT .* FROM `applications` .* FOR UPDATE").
					WillReturnRows(applicationRows(1, "test_enabled"))
				mock.ExpectExec("UPDATE `test_attempts` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: ErrVersionConflict,
		},
		{
			name: "申请不存在",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT .* FROM `applications` .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(applicationColumns))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: gorm.ErrRecordNotFound,
		},
		{
			name: "标记答对的题目，申请同时标记为已考",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT .* FROM `applications` .* FOR UPDATE").
					WillReturnRows(applicationRows(1, "test_enabled"))
				mock.ExpectExec("UPDATE `test_attempts` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `answers` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("UPDATE `answers` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 2))
				mock.ExpectExec("UPDATE `applications` SET .*`status`=.*`test_enabled`=.*`version`=version \\+ 1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
				return mockDB
			},
			correctIds: []int64{1, 2},
			wantBefore: enabled,
		},
		{
			name: "更新申请失败时整体回滚",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT .* FROM `applications` .* FOR UPDATE").
					WillReturnRows(applicationRows(1, "test_enabled"))
				mock.ExpectExec("UPDATE `test_attempts` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `answers` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectExec("UPDATE `applications` SET .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB
			},
			wantErr: errors.New("mock db error"),
		},
		{
			name: "申请已经进入下一轮",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT .* FROM `applications` .* FOR UPDATE").
					WillReturnRows(applicationRows(2, "passed"))
				mock.ExpectExec("UPDATE `test_attempts` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `answers` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
				return mockDB
			},
		},
		{
			name: "申请已经结束",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT .* FROM `applications` .* FOR UPDATE").
					WillReturnRows(applicationRows(1, "rejected"))
				mock.ExpectExec("UPDATE `test_attempts` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("UPDATE `answers` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 3))
				mock.ExpectCommit()
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewGORMAttemptDAO(openMockDB(t, tc.mock(t)))
			before, err := d.Finish(context.Background(), TestAttempt{
				Id:            7,
				ApplicationId: 100,
				JobId:         10,
				RoundNumber:   1,
				ObtainedMarks: 7,
				IsPassed:      true,
			}, tc.correctIds)
			assert.Equal(t, tc.wantErr, err)
			assert.Equal(t, tc.wantBefore, before)
		})
	}
}

var applicationColumns = []string{"id", "job_id", "uid", "slot_id", "current_round",
	"admin_approved", "test_enabled", "status", "version", "ctime", "utime"}

func applicationRows(round int, status string) *sqlmock.Rows {
	return sqlmock.NewRows(applicationColumns).
		AddRow(100, 10, 1, nil, round, true, status == "test_enabled", status, 4, 0, 0)
}

func openMockDB(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
