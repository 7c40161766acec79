package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil error", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"not null violation", pgError(pgerrcode.NotNullViolation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
		{"unknown code", pgError("XX000"), NonRetryable},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := classifier.Classify(test.err); got != test.want {
				t.Errorf("Classify(%v) = %v, want %v", test.err, got, test.want)
			}
		})
	}
}

func TestClassify_WrappedError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	wrapped := errors.Join(errors.New("exec failed"), &pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	if got := classifier.Classify(wrapped); got != Retryable {
		t.Errorf("expected wrapped deadlock to classify as Retryable, got %v", got)
	}
}
