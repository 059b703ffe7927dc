package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompileStatusValid(t *testing.T) {
	for _, status := range []CompileStatus{
		CompileStatusUploaded, CompileStatusInProgress,
		CompileStatusSuccessful, CompileStatusFailed, CompileStatusDisabled,
	} {
		assert.True(t, status.Valid(), string(status))
	}

	assert.False(t, CompileStatus("").Valid())
	assert.False(t, CompileStatus("uploaded").Valid())
	assert.False(t, CompileStatus("Compiling").Valid())
}
