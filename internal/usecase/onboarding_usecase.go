package usecase

import (
	"context"
	"time"
)

// Onboarding capture is deliberately an echo: the client records the
// answers locally and the server only acknowledges with a timestamp.
// Nothing is persisted.
type OnboardingInput struct {
	UserID        string   `json:"userId"`
	Interests     []string `json:"interests"`
	CareerMatches []string `json:"careerMatches"`
}

type OnboardingResult struct {
	UserID        string    `json:"userId"`
	Interests     []string  `json:"interests"`
	CareerMatches []string  `json:"careerMatches"`
	ReceivedAt    time.Time `json:"receivedAt"`
}

type OnboardingUsecase interface {
	Capture(ctx context.Context, in OnboardingInput) OnboardingResult
}

type Onboarding struct {
	now func() time.Time
}

func NewOnboardingUsecase() *Onboarding {
	return &Onboarding{now: time.Now}
}

func (u *Onboarding) Capture(_ context.Context, in OnboardingInput) OnboardingResult {
	interests := in.Interests
	if interests == nil {
		interests = []string{}
	}
	matches := in.CareerMatches
	if matches == nil {
		matches = []string{}
	}

	return OnboardingResult{
		UserID:        in.UserID,
		Interests:     interests,
		CareerMatches: matches,
		ReceivedAt:    u.now().UTC(),
	}
}
