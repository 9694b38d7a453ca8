package onboarding

import (
	"context"
	"sync"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

var _ workflowClient = &workflowClientMock{}

type workflowClientMock struct {
	SubmitInvitationFunc func(ctx context.Context, email string) (*domain.Invitation, error)
	SubmitDecisionFunc   func(ctx context.Context, roll string, decision domain.Decision) (*domain.MemberRecord, error)
	ListApprovedFunc     func(ctx context.Context) ([]domain.MemberRecord, error)

	calls struct {
		SubmitInvitation []struct {
			Ctx   context.Context
			Email string
		}
		SubmitDecision []struct {
			Ctx      context.Context
			Roll     string
			Decision domain.Decision
		}
		ListApproved []struct {
			Ctx context.Context
		}
	}
	lockSubmitInvitation sync.RWMutex
	lockSubmitDecision   sync.RWMutex
	lockListApproved     sync.RWMutex
}

func (mock *workflowClientMock) SubmitInvitation(ctx context.Context, email string) (*domain.Invitation, error) {
	if mock.SubmitInvitationFunc == nil {
		panic("workflowClientMock.SubmitInvitationFunc: method is nil but workflowClient.SubmitInvitation was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockSubmitInvitation.Lock()
	mock.calls.SubmitInvitation = append(mock.calls.SubmitInvitation, callInfo)
	mock.lockSubmitInvitation.Unlock()
	return mock.SubmitInvitationFunc(ctx, email)
}

func (mock *workflowClientMock) SubmitInvitationCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockSubmitInvitation.RLock()
	calls := mock.calls.SubmitInvitation
	mock.lockSubmitInvitation.RUnlock()
	return calls
}

func (mock *workflowClientMock) SubmitDecision(ctx context.Context, roll string, decision domain.Decision) (*domain.MemberRecord, error) {
	if mock.SubmitDecisionFunc == nil {
		panic("workflowClientMock.SubmitDecisionFunc: method is nil but workflowClient.SubmitDecision was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Roll     string
		Decision domain.Decision
	}{Ctx: ctx, Roll: roll, Decision: decision}
	mock.lockSubmitDecision.Lock()
	mock.calls.SubmitDecision = append(mock.calls.SubmitDecision, callInfo)
	mock.lockSubmitDecision.Unlock()
	return mock.SubmitDecisionFunc(ctx, roll, decision)
}

func (mock *workflowClientMock) SubmitDecisionCalls() []struct {
	Ctx      context.Context
	Roll     string
	Decision domain.Decision
} {
	mock.lockSubmitDecision.RLock()
	calls := mock.calls.SubmitDecision
	mock.lockSubmitDecision.RUnlock()
	return calls
}

func (mock *workflowClientMock) ListApproved(ctx context.Context) ([]domain.MemberRecord, error) {
	if mock.ListApprovedFunc == nil {
		panic("workflowClientMock.ListApprovedFunc: method is nil but workflowClient.ListApproved was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListApproved.Lock()
	mock.calls.ListApproved = append(mock.calls.ListApproved, callInfo)
	mock.lockListApproved.Unlock()
	return mock.ListApprovedFunc(ctx)
}

func (mock *workflowClientMock) ListApprovedCalls() []struct {
	Ctx context.Context
} {
	mock.lockListApproved.RLock()
	calls := mock.calls.ListApproved
	mock.lockListApproved.RUnlock()
	return calls
}
