package services

import (
	"fmt"
	"math/rand"
	"time"
)

// CaptchaService hands out small arithmetic challenges. The expected
// answer is kept in the visitor's session; a wrong answer becomes one
// more validation error on the create form.
type CaptchaService struct {
	rnd *rand.Rand
}

func NewCaptchaService() *CaptchaService {
	return &CaptchaService{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateMathProblem returns a display string (e.g. "3 + 5") and the
// integer answer to store in the session.
func (s *CaptchaService) GenerateMathProblem() (string, int) {
	a := s.rnd.Intn(10)
	b := s.rnd.Intn(10)
	op := s.rnd.Intn(2)

	if op == 0 {
		return fmt.Sprintf("%d + %d", a, b), a + b
	}
	// Keep subtraction results non-negative.
	if a < b {
		a, b = b, a
	}
	return fmt.Sprintf("%d - %d", a, b), a - b
}

// Verify compares the visitor's input with the stored answer.
func (s *CaptchaService) Verify(input string, expected int) bool {
	var answer int
	if _, err := fmt.Sscanf(input, "%d", &answer); err != nil {
		return false
	}
	return answer == expected
}
