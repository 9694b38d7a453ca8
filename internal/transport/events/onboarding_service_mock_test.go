package events

import (
	"context"
	"sync"

	"github.com/greekrow/chaptergate-backend/internal/domain"
	"github.com/greekrow/chaptergate-backend/internal/service/onboarding"
)

var _ onboardingService = &onboardingServiceMock{}

type onboardingServiceMock struct {
	HandleJoinFunc       func(ctx context.Context, input onboarding.JoinInput) (*domain.Session, error)
	StartFunc            func(ctx context.Context, input onboarding.StartInput) error
	SubmitEmailFunc      func(ctx context.Context, input onboarding.EmailInput) error
	DecideFunc           func(ctx context.Context, input onboarding.DecideInput) error
	HandleAttachmentFunc func(ctx context.Context, input onboarding.AttachmentInput) error

	calls struct {
		HandleJoin []struct {
			Ctx   context.Context
			Input onboarding.JoinInput
		}
		Start []struct {
			Ctx   context.Context
			Input onboarding.StartInput
		}
		SubmitEmail []struct {
			Ctx   context.Context
			Input onboarding.EmailInput
		}
		Decide []struct {
			Ctx   context.Context
			Input onboarding.DecideInput
		}
		HandleAttachment []struct {
			Ctx   context.Context
			Input onboarding.AttachmentInput
		}
	}
	lockHandleJoin       sync.RWMutex
	lockStart            sync.RWMutex
	lockSubmitEmail      sync.RWMutex
	lockDecide           sync.RWMutex
	lockHandleAttachment sync.RWMutex
}

func (mock *onboardingServiceMock) HandleJoin(ctx context.Context, input onboarding.JoinInput) (*domain.Session, error) {
	if mock.HandleJoinFunc == nil {
		panic("onboardingServiceMock.HandleJoinFunc: method is nil but onboardingService.HandleJoin was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input onboarding.JoinInput
	}{Ctx: ctx, Input: input}
	mock.lockHandleJoin.Lock()
	mock.calls.HandleJoin = append(mock.calls.HandleJoin, callInfo)
	mock.lockHandleJoin.Unlock()
	return mock.HandleJoinFunc(ctx, input)
}

func (mock *onboardingServiceMock) HandleJoinCalls() []struct {
	Ctx   context.Context
	Input onboarding.JoinInput
} {
	mock.lockHandleJoin.RLock()
	calls := mock.calls.HandleJoin
	mock.lockHandleJoin.RUnlock()
	return calls
}

func (mock *onboardingServiceMock) Start(ctx context.Context, input onboarding.StartInput) error {
	if mock.StartFunc == nil {
		panic("onboardingServiceMock.StartFunc: method is nil but onboardingService.Start was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input onboarding.StartInput
	}{Ctx: ctx, Input: input}
	mock.lockStart.Lock()
	mock.calls.Start = append(mock.calls.Start, callInfo)
	mock.lockStart.Unlock()
	return mock.StartFunc(ctx, input)
}

func (mock *onboardingServiceMock) StartCalls() []struct {
	Ctx   context.Context
	Input onboarding.StartInput
} {
	mock.lockStart.RLock()
	calls := mock.calls.Start
	mock.lockStart.RUnlock()
	return calls
}

func (mock *onboardingServiceMock) SubmitEmail(ctx context.Context, input onboarding.EmailInput) error {
	if mock.SubmitEmailFunc == nil {
		panic("onboardingServiceMock.SubmitEmailFunc: method is nil but onboardingService.SubmitEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input onboarding.EmailInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitEmail.Lock()
	mock.calls.SubmitEmail = append(mock.calls.SubmitEmail, callInfo)
	mock.lockSubmitEmail.Unlock()
	return mock.SubmitEmailFunc(ctx, input)
}

func (mock *onboardingServiceMock) SubmitEmailCalls() []struct {
	Ctx   context.Context
	Input onboarding.EmailInput
} {
	mock.lockSubmitEmail.RLock()
	calls := mock.calls.SubmitEmail
	mock.lockSubmitEmail.RUnlock()
	return calls
}

func (mock *onboardingServiceMock) Decide(ctx context.Context, input onboarding.DecideInput) error {
	if mock.DecideFunc == nil {
		panic("onboardingServiceMock.DecideFunc: method is nil but onboardingService.Decide was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input onboarding.DecideInput
	}{Ctx: ctx, Input: input}
	mock.lockDecide.Lock()
	mock.calls.Decide = append(mock.calls.Decide, callInfo)
	mock.lockDecide.Unlock()
	return mock.DecideFunc(ctx, input)
}

func (mock *onboardingServiceMock) DecideCalls() []struct {
	Ctx   context.Context
	Input onboarding.DecideInput
} {
	mock.lockDecide.RLock()
	calls := mock.calls.Decide
	mock.lockDecide.RUnlock()
	return calls
}

func (mock *onboardingServiceMock) HandleAttachment(ctx context.Context, input onboarding.AttachmentInput) error {
	if mock.HandleAttachmentFunc == nil {
		panic("onboardingServiceMock.HandleAttachmentFunc: method is nil but onboardingService.HandleAttachment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input onboarding.AttachmentInput
	}{Ctx: ctx, Input: input}
	mock.lockHandleAttachment.Lock()
	mock.calls.HandleAttachment = append(mock.calls.HandleAttachment, callInfo)
	mock.lockHandleAttachment.Unlock()
	return mock.HandleAttachmentFunc(ctx, input)
}

func (mock *onboardingServiceMock) HandleAttachmentCalls() []struct {
	Ctx   context.Context
	Input onboarding.AttachmentInput
} {
	mock.lockHandleAttachment.RLock()
	calls := mock.calls.HandleAttachment
	mock.lockHandleAttachment.RUnlock()
	return calls
}
