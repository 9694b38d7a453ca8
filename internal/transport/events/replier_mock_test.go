package events

import (
	"context"
	"sync"
)

var _ replier = &replierMock{}

type replierMock struct {
	SendMemberFunc   func(ctx context.Context, channelID, message string) error
	SendOperatorFunc func(ctx context.Context, message string) error

	calls struct {
		SendMember []struct {
			Ctx       context.Context
			ChannelID string
			Message   string
		}
		SendOperator []struct {
			Ctx     context.Context
			Message string
		}
	}
	lockSendMember   sync.RWMutex
	lockSendOperator sync.RWMutex
}

func (mock *replierMock) SendMember(ctx context.Context, channelID, message string) error {
	if mock.SendMemberFunc == nil {
		panic("replierMock.SendMemberFunc: method is nil but replier.SendMember was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ChannelID string
		Message   string
	}{Ctx: ctx, ChannelID: channelID, Message: message}
	mock.lockSendMember.Lock()
	mock.calls.SendMember = append(mock.calls.SendMember, callInfo)
	mock.lockSendMember.Unlock()
	return mock.SendMemberFunc(ctx, channelID, message)
}

func (mock *replierMock) SendMemberCalls() []struct {
	Ctx       context.Context
	ChannelID string
	Message   string
} {
	mock.lockSendMember.RLock()
	calls := mock.calls.SendMember
	mock.lockSendMember.RUnlock()
	return calls
}

func (mock *replierMock) SendOperator(ctx context.Context, message string) error {
	if mock.SendOperatorFunc == nil {
		panic("replierMock.SendOperatorFunc: method is nil but replier.SendOperator was just called")
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

func (mock *replierMock) SendOperatorCalls() []struct {
	Ctx     context.Context
	Message string
} {
	mock.lockSendOperator.RLock()
	calls := mock.calls.SendOperator
	mock.lockSendOperator.RUnlock()
	return calls
}
