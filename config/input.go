package config

// InputConfig holds analog input tuning shared by the input collaborators
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Orbit input produced by one pixel of mouse drag
	MouseOrbitScale float64
	// Orbit input produced by a held orbit key
	KeyOrbitStrength float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:   0.25,
		MouseOrbitScale:  0.04,
		KeyOrbitStrength: 1.0,
	}
}
