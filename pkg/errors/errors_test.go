package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap("summarization_failed", "failed to generate summary", cause)

	require.EqualError(t, err, "failed to generate summary: boom")
	require.ErrorIs(t, err, cause)
	require.True(t, IsCode(err, "summarization_failed"))
	require.Equal(t, "failed to generate summary", MessageOf(err))
}

func TestCodeOfThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", Wrap(CodeNotFound, "summary not found", nil))

	require.Equal(t, CodeNotFound, CodeOf(err))
	require.True(t, IsCode(err, CodeNotFound))
	require.False(t, IsCode(err, CodeInvalidInput))
}

func TestPlainErrors(t *testing.T) {
	err := errors.New("plain")

	require.Equal(t, "", CodeOf(err))
	require.False(t, IsCode(err, ""))
	require.Equal(t, "plain", MessageOf(err))
	require.Equal(t, "", MessageOf(nil))
}
