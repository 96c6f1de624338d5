package task

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_JSONLiterals(t *testing.T) {
	tasks := []Task{
		{ID: uuid.New(), Title: "a", Status: StatusNotStarted},
		{Title: "b", Status: StatusInProgress},
		{Title: "c", Status: StatusCompleted},
	}

	data, err := json.Marshal(tasks)
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"title":"a","status":"Not-Started"},{"title":"b","status":"In-progress"},{"title":"c","status":"Completed"}]`,
		string(data))
}

func TestStatus_UnmarshalRejectsUnknown(t *testing.T) {
	var got []Task
	err := json.Unmarshal([]byte(`[{"title":"a","status":"done"}]`), &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown status "done"`)
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), "expected %q to be valid", s)
	}
	assert.False(t, Status("in_progress").Valid())
	assert.False(t, Status("").Valid())
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		current Status
		want    Status
	}{
		{"not started moves to in progress", PolicyStop, StatusNotStarted, StatusInProgress},
		{"in progress moves to completed", PolicyStop, StatusInProgress, StatusCompleted},
		{"completed is terminal", PolicyStop, StatusCompleted, StatusCompleted},
		{"reopen moves completed back to in progress", PolicyReopen, StatusCompleted, StatusInProgress},
		{"reopen keeps forward steps", PolicyReopen, StatusNotStarted, StatusInProgress},
		{"unknown status unchanged", PolicyStop, Status("weird"), Status("weird")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AdvanceWith(tt.policy, tt.current))
		})
	}
}

func TestAdvance_ThreeStepsFromNotStarted(t *testing.T) {
	s := StatusNotStarted
	for i := 0; i < 3; i++ {
		s = Advance(s)
	}
	assert.Equal(t, StatusCompleted, s)

	s = StatusNotStarted
	for i := 0; i < 3; i++ {
		s = AdvanceWith(PolicyReopen, s)
	}
	assert.Equal(t, StatusInProgress, s)
}

func TestParsePolicy(t *testing.T) {
	p, err := ParsePolicy(" Reopen ")
	require.NoError(t, err)
	assert.Equal(t, PolicyReopen, p)

	p, err = ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyStop, p)

	_, err = ParsePolicy("cycle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid completed policy")
}

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, ValidateTitle("Write report"))
	assert.NoError(t, ValidateTitle("  padded  "))

	for _, title := range []string{"", "   ", "\t\n"} {
		err := ValidateTitle(title)
		require.Error(t, err)

		var vErr *ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "title", vErr.Field)
		assert.ErrorIs(t, err, ErrEmptyTitle)
		assert.Equal(t, "Title cannot be empty", vErr.Message())
	}
}
