package onboarding

import (
	"context"
	"sync"

	"github.com/greekrow/chaptergate-backend/internal/domain"
)

var _ community = &communityMock{}

type communityMock struct {
	IsOperatorFunc   func(ctx context.Context, memberID string) (bool, error)
	AssignRoleFunc   func(ctx context.Context, memberID string, role domain.RoleCategory) error
	RemoveMemberFunc func(ctx context.Context, memberID, reason string) error
	CloseChannelFunc func(ctx context.Context, channelID string) error

	calls struct {
		IsOperator []struct {
			Ctx      context.Context
			MemberID string
		}
		AssignRole []struct {
			Ctx      context.Context
			MemberID string
			Role     domain.RoleCategory
		}
		RemoveMember []struct {
			Ctx      context.Context
			MemberID string
			Reason   string
		}
		CloseChannel []struct {
			Ctx       context.Context
			ChannelID string
		}
	}
	lockIsOperator   sync.RWMutex
	lockAssignRole   sync.RWMutex
	lockRemoveMember sync.RWMutex
	lockCloseChannel sync.RWMutex
}

func (mock *communityMock) IsOperator(ctx context.Context, memberID string) (bool, error) {
	if mock.IsOperatorFunc == nil {
		panic("communityMock.IsOperatorFunc: method is nil but community.IsOperator was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MemberID string
	}{Ctx: ctx, MemberID: memberID}
	mock.lockIsOperator.Lock()
	mock.calls.IsOperator = append(mock.calls.IsOperator, callInfo)
	mock.lockIsOperator.Unlock()
	return mock.IsOperatorFunc(ctx, memberID)
}

func (mock *communityMock) IsOperatorCalls() []struct {
	Ctx      context.Context
	MemberID string
} {
	mock.lockIsOperator.RLock()
	calls := mock.calls.IsOperator
	mock.lockIsOperator.RUnlock()
	return calls
}

func (mock *communityMock) AssignRole(ctx context.Context, memberID string, role domain.RoleCategory) error {
	if mock.AssignRoleFunc == nil {
		panic("communityMock.AssignRoleFunc: method is nil but community.AssignRole was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MemberID string
		Role     domain.RoleCategory
	}{Ctx: ctx, MemberID: memberID, Role: role}
	mock.lockAssignRole.Lock()
	mock.calls.AssignRole = append(mock.calls.AssignRole, callInfo)
	mock.lockAssignRole.Unlock()
	return mock.AssignRoleFunc(ctx, memberID, role)
}

func (mock *communityMock) AssignRoleCalls() []struct {
	Ctx      context.Context
	MemberID string
	Role     domain.RoleCategory
} {
	mock.lockAssignRole.RLock()
	calls := mock.calls.AssignRole
	mock.lockAssignRole.RUnlock()
	return calls
}

func (mock *communityMock) RemoveMember(ctx context.Context, memberID, reason string) error {
	if mock.RemoveMemberFunc == nil {
		panic("communityMock.RemoveMemberFunc: method is nil but community.RemoveMember was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		MemberID string
		Reason   string
	}{Ctx: ctx, MemberID: memberID, Reason: reason}
	mock.lockRemoveMember.Lock()
	mock.calls.RemoveMember = append(mock.calls.RemoveMember, callInfo)
	mock.lockRemoveMember.Unlock()
	return mock.RemoveMemberFunc(ctx, memberID, reason)
}

func (mock *communityMock) RemoveMemberCalls() []struct {
	Ctx      context.Context
	MemberID string
	Reason   string
} {
	mock.lockRemoveMember.RLock()
	calls := mock.calls.RemoveMember
	mock.lockRemoveMember.RUnlock()
	return calls
}

func (mock *communityMock) CloseChannel(ctx context.Context, channelID string) error {
	if mock.CloseChannelFunc == nil {
		panic("communityMock.CloseChannelFunc: method is nil but community.CloseChannel was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ChannelID string
	}{Ctx: ctx, ChannelID: channelID}
	mock.lockCloseChannel.Lock()
	mock.calls.CloseChannel = append(mock.calls.CloseChannel, callInfo)
	mock.lockCloseChannel.Unlock()
	return mock.CloseChannelFunc(ctx, channelID)
}

func (mock *communityMock) CloseChannelCalls() []struct {
	Ctx       context.Context
	ChannelID string
} {
	mock.lockCloseChannel.RLock()
	calls := mock.calls.CloseChannel
	mock.lockCloseChannel.RUnlock()
	return calls
}
