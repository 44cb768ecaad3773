// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pukapp/convsync/internal/config"
	"github.com/pukapp/convsync/internal/logger"
	"github.com/pukapp/convsync/models"
)

func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return newDB(conn, config.DriverPostgres, logger.Nop()), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestInTx_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := db.InTx(context.Background(), func(ctx context.Context, tx Tx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_CommitError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	err := db.InTx(context.Background(), func(ctx context.Context, tx Tx) error { return nil })

	assert.ErrorIs(t, err, ErrCommitingTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInTx_RollsBackWhenFnFails(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := db.InTx(context.Background(), func(ctx context.Context, tx Tx) error { return assert.AnError })

	assert.ErrorIs(t, err, assert.AnError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertConversation_PostgresUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO conversations").WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	err := db.InTx(context.Background(), func(ctx context.Context, tx Tx) error {
		return tx.UpsertConversation(ctx, &models.Conversation{LocalID: "l", Type: models.ConversationGroup})
	})

	assert.ErrorIs(t, err, ErrConversationExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertConversation_OtherExecError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO conversations").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	err := db.InTx(context.Background(), func(ctx context.Context, tx Tx) error {
		return tx.UpsertConversation(ctx, &models.Conversation{LocalID: "l", Type: models.ConversationGroup})
	})

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NotErrorIs(t, err, ErrConversationExists)
}

func TestMarkEventApplied_Postgres(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO applied_events").
		WithArgs("evt-1", "user.connection", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	var first bool
	err := db.InTx(context.Background(), func(ctx context.Context, tx Tx) error {
		var err error
		first, err = tx.MarkEventApplied(ctx, "evt-1", models.EventUserConnection)
		return err
	})

	require.NoError(t, err)
	assert.False(t, first)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_isUniqueViolation(t *testing.T) {
	assert.False(t, isUniqueViolation(nil))
	assert.False(t, isUniqueViolation(errors.New("boom")))
	assert.True(t, isUniqueViolation(pgError(pgerrcode.UniqueViolation)))
	assert.False(t, isUniqueViolation(pgError(pgerrcode.ForeignKeyViolation)))
}
