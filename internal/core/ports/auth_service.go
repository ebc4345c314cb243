package ports

import "context"

// AuthService orchestrates signup and signin. Both return a signed bearer
// token on success; plaintext passwords never outlive the call.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (string, error)
	Signin(ctx context.Context, email, password string) (string, error)
}

// AttemptLimiter throttles repeated failed signins for an identity key.
// Implementations must fail open: a limiter outage must not block signin.
type AttemptLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
	RecordFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}
