// Package aircraft defines the immutable parameter record describing a
// fixed-wing aircraft: mass and inertia properties, reference geometry and
// the stability-derivative coefficient set consumed by the aerodynamic
// buildup. A Model is loaded (or taken from a preset) once per simulation
// session and passed by value to every evaluation; nothing mutates it
// afterwards, so a single Model may be shared across concurrent
// evaluations without locking.
package aircraft

// Model is the full parameter record for one aircraft.
type Model struct {
	Name string

	// Mass properties. Ixz is the product of inertia about the assumed
	// plane of symmetry and is sign-significant; Ixy and Iyz are taken
	// as zero.
	Mass float64 // kg
	Ixx  float64 // kg*m^2
	Iyy  float64 // kg*m^2
	Izz  float64 // kg*m^2
	Ixz  float64 // kg*m^2

	// Reference geometry.
	WingArea float64 // m^2
	WingSpan float64 // m
	MAC      float64 // mean aerodynamic chord, m

	Coefficients Coefficients
}

// Coefficients holds the stability derivatives, grouped by the axis
// whose coefficient they contribute to. All values are dimensionless;
// a zero value means the term contributes nothing.
type Coefficients struct {
	Drag      DragCoefficients
	SideForce SideForceCoefficients
	Lift      LiftCoefficients
	Roll      RollCoefficients
	Pitch     PitchCoefficients
	Yaw       YawCoefficients
}

// DragCoefficients parameterize the drag polynomial. Field names spell
// the monomial each derivative multiplies: Alpha2Q is the coefficient of
// alpha^2 * qhat, AlphaDeltaE of alpha * elevator, and so on.
type DragCoefficients struct {
	Zero         float64
	Alpha        float64
	AlphaQ       float64
	AlphaDeltaE  float64
	Alpha2       float64
	Alpha2Q      float64
	Alpha2DeltaE float64
	Alpha3       float64
	Alpha3Q      float64
	Alpha4       float64
}

type SideForceCoefficients struct {
	Beta   float64
	P      float64
	R      float64
	DeltaA float64
	DeltaR float64
}

type LiftCoefficients struct {
	Zero   float64
	Alpha  float64
	Q      float64
	DeltaE float64
	AlphaQ float64
	Alpha2 float64
	Alpha3 float64
	Alpha4 float64
}

type RollCoefficients struct {
	Beta   float64
	P      float64
	R      float64
	DeltaA float64
	DeltaR float64
}

type PitchCoefficients struct {
	Zero         float64
	Alpha        float64
	Q            float64
	DeltaE       float64
	AlphaQ       float64
	Alpha2Q      float64
	Alpha2DeltaE float64
	Alpha3Q      float64
	Alpha3DeltaE float64
	Alpha4       float64
}

type YawCoefficients struct {
	Beta   float64
	P      float64
	R      float64
	DeltaA float64
	DeltaR float64
	Beta2  float64
	Beta3  float64
}
