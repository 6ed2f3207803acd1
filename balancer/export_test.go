package balancer

// White-box access for balancer_test.
var (
	Verify          = verify
	ErrConservation = errConservation
	ErrNotMinimal   = errNotMinimal
)
