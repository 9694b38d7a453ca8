package onboarding

import "sync"

var _ actionTokens = &actionTokensMock{}

type actionTokensMock struct {
	ValidateFunc func(token string) (string, string, error)

	calls struct {
		Validate []struct {
			Token string
		}
	}
	lockValidate sync.RWMutex
}

func (mock *actionTokensMock) Validate(token string) (string, string, error) {
	if mock.ValidateFunc == nil {
		panic("actionTokensMock.ValidateFunc: method is nil but actionTokens.Validate was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidate.Lock()
	mock.calls.Validate = append(mock.calls.Validate, callInfo)
	mock.lockValidate.Unlock()
	return mock.ValidateFunc(token)
}

func (mock *actionTokensMock) ValidateCalls() []struct {
	Token string
} {
	mock.lockValidate.RLock()
	calls := mock.calls.Validate
	mock.lockValidate.RUnlock()
	return calls
}
