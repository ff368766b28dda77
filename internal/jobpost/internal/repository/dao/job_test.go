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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGORMJobDAO_Delete(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) *sql.DB
		wantErr error
	}{
		{
			name: "数据库错误",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `jobs` SET .*").
					WillReturnError(errors.New("数据库错误"))
				return mockDB
			},
			wantErr: errors.New("数据库错误"),
		},
		{
			name: "只下线，不删除职位和轮次",
			mock: func(t *testing.T) *sql.DB {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectExec("UPDATE `jobs` SET `active`=\\?,`utime`=\\? WHERE id = \\?").
					WithArgs(false, sqlmock.AnyArg(), int64(10)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				return mockDB
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB := tc.mock(t)
			d := NewGORMJobDAO(openMockDB(t, mockDB))
			err := d.Delete(context.Background(), 10)
			assert.Equal(t, tc.wantErr, err)
		})
	}
}

// 下线之后已有申请依赖的详情和轮次仍然可以查到
func TestGORMJobDAO_FindAfterDelete(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("UPDATE `jobs` SET .*").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .* FROM `jobs` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "total_rounds", "active"}).
			AddRow(int64(10), "后端工程师", 2, false))
	mock.ExpectQuery("SELECT .* FROM `job_rounds` .*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "jid", "round_number", "mode"}).
			AddRow(int64(1), int64(10), 1, "online_aptitude").
			AddRow(int64(2), int64(10), 2, "interview"))
	mock.ExpectCommit()

	d := NewGORMJobDAO(openMockDB(t, mockDB))
	require.NoError(t, d.Delete(context.Background(), 10))
	job, rounds, err := d.Find(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, int64(10), job.Id)
	assert.False(t, job.Active)
	assert.Len(t, rounds, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
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
