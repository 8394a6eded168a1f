package models

import "fmt"

// AuthStatus is the outcome of one authorization attempt
type AuthStatus int

const (
	AuthPending AuthStatus = iota
	AuthSuccess
	AuthFailure
	AuthCancelled
)

func (s AuthStatus) String() string {
	switch s {
	case AuthPending:
		return "pending"
	case AuthSuccess:
		return "success"
	case AuthFailure:
		return "failure"
	case AuthCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("AuthStatus(%d)", int(s))
	}
}

// AuthResult is produced once per authorization attempt and consumed right away.
// AccessToken is only set on success; Err explains a failure or cancellation.
type AuthResult struct {
	Status      AuthStatus
	AccessToken string
	Err         error
}

func Pending() AuthResult {
	return AuthResult{Status: AuthPending}
}

func Success(accessToken string) AuthResult {
	return AuthResult{Status: AuthSuccess, AccessToken: accessToken}
}

func Failure(err error) AuthResult {
	return AuthResult{Status: AuthFailure, Err: err}
}

func Cancelled(err error) AuthResult {
	return AuthResult{Status: AuthCancelled, Err: err}
}

// OK reports a successful result carrying a token
func (r AuthResult) OK() bool {
	return r.Status == AuthSuccess && r.AccessToken != ""
}
