package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryCreate(t *testing.T) {
	f := NewFactory()

	task := f.Create("Buy milk")
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "Buy milk", task.Description)
	assert.False(t, task.Completed)
}

func TestFactoryIDsStrictlyIncrease(t *testing.T) {
	f := NewFactory()

	prev := 0
	for i := 0; i < 100; i++ {
		task := f.Create("task")
		assert.Greater(t, task.ID, prev)
		prev = task.ID
	}
	assert.Equal(t, 101, f.Peek())
}

func TestFactoryDoesNotValidate(t *testing.T) {
	f := NewFactory()

	task := f.Create("   ")
	assert.Equal(t, 1, task.ID)
	assert.Equal(t, "   ", task.Description)
}

func TestFactoryZeroValue(t *testing.T) {
	var f Factory
	assert.Equal(t, 1, f.Peek())
	assert.Equal(t, 1, f.Create("a").ID)
	assert.Equal(t, 2, f.Create("b").ID)
}

func TestFactoriesAreIndependent(t *testing.T) {
	a := NewFactory()
	b := NewFactory()

	a.Create("one")
	a.Create("two")
	assert.Equal(t, 1, b.Create("other").ID)
	assert.Equal(t, 3, a.Peek())
}

func TestValidateDescription(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "plain text", input: "Buy milk"},
		{name: "padded text", input: "  Buy milk  "},
		{name: "empty", input: "", wantErr: true},
		{name: "spaces", input: "   ", wantErr: true},
		{name: "tabs and newlines", input: "\t\n ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDescription(tt.input)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, "description", vErr.Field)
			assert.Equal(t, "invalid description: must not be empty", err.Error())
		})
	}
}

func TestDuplicateIDError(t *testing.T) {
	err := error(&DuplicateIDError{ID: 3})
	assert.Equal(t, "task #3 already exists", err.Error())
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestValidationErrorWithoutField(t *testing.T) {
	err := &ValidationError{Message: "nothing to do"}
	assert.Equal(t, "nothing to do", err.Error())
}
