package kafka_test

import (
	"context"
	"strings"
	"testing"

	"go-hrms/internal/events"
	"go-hrms/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOutboxEvent_Validate(t *testing.T) {
	valid := kafka.NewOutboxEvent(
		"payroll_run", uuid.NewString(), "payroll.run.completed",
		events.PayrollRunCompletedTopic, "req-1", []byte(`{}`),
	)

	t.Run("constructor builds a valid pending event", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
		assert.Equal(t, kafka.OutboxStatusPending, valid.Status)
		assert.NotEmpty(t, valid.ID)
	})

	t.Run("unknown topic rejected", func(t *testing.T) {
		e := valid
		e.Topic = "hr.some.other.topic.v1"
		assert.ErrorContains(t, e.Validate(), "unknown outbox topic")
	})

	t.Run("empty payload rejected", func(t *testing.T) {
		e := valid
		e.Payload = nil
		assert.ErrorContains(t, e.Validate(), "payload is required")
	})

	t.Run("missing event type rejected", func(t *testing.T) {
		e := valid
		e.EventType = ""
		assert.ErrorContains(t, e.Validate(), "event type is required")
	})
}

func TestOutboxRepository_Create(t *testing.T) {
	t.Run("valid event inserted", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		event := kafka.NewOutboxEvent(
			"employee_import", "req-7", "employee.imported",
			events.EmployeeImportedTopic, "req-7", []byte(`{"processed":3}`),
		)

		mock.ExpectExec(`INSERT INTO outbox_events`).
			WithArgs(
				event.ID, event.RequestID, event.AggregateType,
				event.AggregateID, event.EventType, event.Topic,
				event.Payload, kafka.OutboxStatusPending,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := kafka.NewOutboxRepository(db)
		assert.NoError(t, repo.Create(context.Background(), event))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown topic never reaches the table", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		event := kafka.NewOutboxEvent(
			"payroll_run", uuid.NewString(), "payroll.run.completed",
			"hr.retired.topic.v1", "", []byte(`{}`),
		)

		repo := kafka.NewOutboxRepository(db)
		assert.ErrorContains(t, repo.Create(context.Background(), event), "outbox event rejected")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOutboxRepository_MarkFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()
	reason := strings.Repeat("x", 600)
	truncated := strings.Repeat("x", 500)

	mock.ExpectExec(`UPDATE outbox_events`).
		WithArgs(id, kafka.OutboxStatusFailed, truncated, 10, "15 seconds").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	assert.NoError(t, repo.MarkFailed(context.Background(), id, reason))
	assert.NoError(t, mock.ExpectationsWereMet())
}
