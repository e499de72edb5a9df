package pwm

// ResetClaims releases every timer instance between tests.
func ResetClaims() {
	claimed = nil
}
