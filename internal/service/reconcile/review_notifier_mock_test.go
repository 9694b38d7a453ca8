package reconcile

import (
	"context"
	"sync"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

var _ reviewNotifier = &reviewNotifierMock{}

type reviewNotifierMock struct {
	SendOperatorFunc   func(ctx context.Context, message string) error
	SendReviewItemFunc func(ctx context.Context, app domain.Application, token string) error

	calls struct {
		SendOperator []struct {
			Ctx     context.Context
			Message string
		}
		SendReviewItem []struct {
			Ctx   context.Context
			App   domain.Application
			Token string
		}
	}
	lockSendOperator   sync.RWMutex
	lockSendReviewItem sync.RWMutex
}

func (mock *reviewNotifierMock) SendOperator(ctx context.Context, message string) error {
	if mock.SendOperatorFunc == nil {
		panic("reviewNotifierMock.SendOperatorFunc: method is nil but reviewNotifier.SendOperator was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Message string
	}{Ctx: ctx, Message: message}
	mock.lockSendOperator.Lock()
	mock.calls.SendOperator = append(mock.calls.SendOperator, callInfo)
	mock.lockSendOperator.Unlock()
	return mock.SendOperatorFunc(ctx, message)
}

func (mock *reviewNotifierMock) SendOperatorCalls() []struct {
	Ctx     context.Context
	Message string
} {
	mock.lockSendOperator.RLock()
	calls := mock.calls.SendOperator
	mock.lockSendOperator.RUnlock()
	return calls
}

func (mock *reviewNotifierMock) SendReviewItem(ctx context.Context, app domain.Application, token string) error {
	if mock.SendReviewItemFunc == nil {
		panic("reviewNotifierMock.SendReviewItemFunc: method is nil but reviewNotifier.SendReviewItem was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		App   domain.Application
		Token string
	}{Ctx: ctx, App: app, Token: token}
	mock.lockSendReviewItem.Lock()
	mock.calls.SendReviewItem = append(mock.calls.SendReviewItem, callInfo)
	mock.lockSendReviewItem.Unlock()
	return mock.SendReviewItemFunc(ctx, app, token)
}

func (mock *reviewNotifierMock) SendReviewItemCalls() []struct {
	Ctx   context.Context
	App   domain.Application
	Token string
} {
	mock.lockSendReviewItem.RLock()
	calls := mock.calls.SendReviewItem
	mock.lockSendReviewItem.RUnlock()
	return calls
}
