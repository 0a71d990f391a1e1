package services

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMathProblem(t *testing.T) {
	s := NewCaptchaService()

	for i := 0; i < 100; i++ {
		question, answer := s.GenerateMathProblem()

		var a, b int
		var op string
		_, err := fmt.Sscanf(question, "%d %s %d", &a, &op, &b)
		require.NoError(t, err, "unexpected question format: %q", question)

		switch op {
		case "+":
			assert.Equal(t, a+b, answer)
		case "-":
			assert.Equal(t, a-b, answer)
			assert.GreaterOrEqual(t, answer, 0, "subtraction must stay non-negative")
		default:
			t.Fatalf("unexpected operator in %q", question)
		}
	}
}

func TestVerify(t *testing.T) {
	s := NewCaptchaService()

	assert.True(t, s.Verify("7", 7))
	assert.True(t, s.Verify(strconv.Itoa(0), 0))
	assert.False(t, s.Verify("8", 7))
	assert.False(t, s.Verify("", 7))
	assert.False(t, s.Verify("seven", 7))
}
