// Package gamemath holds pure gameplay math with no engine dependencies,
// so movement, camera, and contact rules stay unit-testable.
package gamemath

// Smooth blends a horizontal intent into the current speed. Control sets the
// responsiveness: higher values approach the intent faster. With zero intent
// the speed decays geometrically toward rest.
func Smooth(intent, speed, control float64) float64 {
	return (intent*control + speed) / (1 + control)
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// JumpForce returns the initial jump force: a base force plus a bonus
// proportional to the current horizontal speed magnitude.
func JumpForce(base, bonus, speedX float64) float64 {
	if speedX < 0 {
		speedX = -speedX
	}
	return base + speedX*bonus
}
