package aircraft

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load errors. All are terminal for the load attempt; callers discriminate
// with errors.Is.
var (
	ErrMissingRequiredField  = errors.New("missing required field")
	ErrTypeMismatch          = errors.New("type mismatch")
	ErrInvalidGeometry       = errors.New("invalid geometry")
	ErrInvalidMassProperties = errors.New("invalid mass properties")
)

// rawModel mirrors the on-disk aircraft definition: a flat YAML mapping,
// one scalar per key, '#' comments ignored by the parser. Mandatory fields
// are pointers so an absent key is distinguishable from an explicit zero.
// Coefficient keys are plain float64 and default to 0 (no contribution)
// when absent. Unknown keys are ignored.
type rawModel struct {
	Name *string  `yaml:"name"`
	Mass *float64 `yaml:"mass"`
	Ixx  *float64 `yaml:"ixx"`
	Iyy  *float64 `yaml:"iyy"`
	Izz  *float64 `yaml:"izz"`
	Ixz  float64  `yaml:"ixz"`

	WingArea *float64 `yaml:"wing_area"`
	WingSpan *float64 `yaml:"wing_span"`
	MAC      *float64 `yaml:"mac"`

	CD0    float64 `yaml:"c_D_0"`
	CDa    float64 `yaml:"c_D_alpha"`
	CDaQ   float64 `yaml:"c_D_alpha_q"`
	CDaDe  float64 `yaml:"c_D_alpha_deltae"`
	CDa2   float64 `yaml:"c_D_alpha2"`
	CDa2Q  float64 `yaml:"c_D_alpha2_q"`
	CDa2De float64 `yaml:"c_D_alpha2_deltae"`
	CDa3   float64 `yaml:"c_D_alpha3"`
	CDa3Q  float64 `yaml:"c_D_alpha3_q"`
	CDa4   float64 `yaml:"c_D_alpha4"`

	CYb  float64 `yaml:"c_Y_beta"`
	CYp  float64 `yaml:"c_Y_p"`
	CYr  float64 `yaml:"c_Y_r"`
	CYda float64 `yaml:"c_Y_deltaa"`
	CYdr float64 `yaml:"c_Y_deltar"`

	CL0  float64 `yaml:"c_L_0"`
	CLa  float64 `yaml:"c_L_alpha"`
	CLq  float64 `yaml:"c_L_q"`
	CLde float64 `yaml:"c_L_deltae"`
	CLaQ float64 `yaml:"c_L_alpha_q"`
	CLa2 float64 `yaml:"c_L_alpha2"`
	CLa3 float64 `yaml:"c_L_alpha3"`
	CLa4 float64 `yaml:"c_L_alpha4"`

	Clb  float64 `yaml:"c_l_beta"`
	Clp  float64 `yaml:"c_l_p"`
	Clr  float64 `yaml:"c_l_r"`
	Clda float64 `yaml:"c_l_deltaa"`
	Cldr float64 `yaml:"c_l_deltar"`

	Cm0    float64 `yaml:"c_m_0"`
	Cma    float64 `yaml:"c_m_alpha"`
	Cmq    float64 `yaml:"c_m_q"`
	Cmde   float64 `yaml:"c_m_deltae"`
	CmaQ   float64 `yaml:"c_m_alpha_q"`
	Cma2Q  float64 `yaml:"c_m_alpha2_q"`
	Cma2De float64 `yaml:"c_m_alpha2_deltae"`
	Cma3Q  float64 `yaml:"c_m_alpha3_q"`
	Cma3De float64 `yaml:"c_m_alpha3_deltae"`
	Cma4   float64 `yaml:"c_m_alpha4"`

	Cnb  float64 `yaml:"c_n_beta"`
	Cnp  float64 `yaml:"c_n_p"`
	Cnr  float64 `yaml:"c_n_r"`
	Cnda float64 `yaml:"c_n_deltaa"`
	Cndr float64 `yaml:"c_n_deltar"`
	Cnb2 float64 `yaml:"c_n_beta2"`
	Cnb3 float64 `yaml:"c_n_beta3"`
}

// Load reads an aircraft definition file and returns the validated Model.
func Load(path string) (Model, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Model{}, err
	}
	return Parse(b)
}

// Parse builds a Model from the raw bytes of an aircraft definition.
func Parse(b []byte) (Model, error) {
	var raw rawModel
	if err := yaml.Unmarshal(b, &raw); err != nil {
		var te *yaml.TypeError
		if errors.As(err, &te) {
			return Model{}, fmt.Errorf("%w: %s", ErrTypeMismatch, strings.Join(te.Errors, "; "))
		}
		return Model{}, err
	}

	if raw.Name == nil || *raw.Name == "" {
		return Model{}, fmt.Errorf("%w: name", ErrMissingRequiredField)
	}
	for _, f := range []struct {
		key string
		val *float64
	}{
		{"mass", raw.Mass},
		{"ixx", raw.Ixx},
		{"iyy", raw.Iyy},
		{"izz", raw.Izz},
		{"wing_area", raw.WingArea},
		{"wing_span", raw.WingSpan},
		{"mac", raw.MAC},
	} {
		if f.val == nil {
			return Model{}, fmt.Errorf("%w: %s", ErrMissingRequiredField, f.key)
		}
	}

	for _, f := range []struct {
		key string
		val float64
	}{
		{"wing_area", *raw.WingArea},
		{"wing_span", *raw.WingSpan},
		{"mac", *raw.MAC},
	} {
		if f.val <= 0 {
			return Model{}, fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidGeometry, f.key, f.val)
		}
	}
	for _, f := range []struct {
		key string
		val float64
	}{
		{"mass", *raw.Mass},
		{"ixx", *raw.Ixx},
		{"iyy", *raw.Iyy},
		{"izz", *raw.Izz},
	} {
		if f.val <= 0 {
			return Model{}, fmt.Errorf("%w: %s must be > 0, got %v", ErrInvalidMassProperties, f.key, f.val)
		}
	}

	return Model{
		Name:     *raw.Name,
		Mass:     *raw.Mass,
		Ixx:      *raw.Ixx,
		Iyy:      *raw.Iyy,
		Izz:      *raw.Izz,
		Ixz:      raw.Ixz,
		WingArea: *raw.WingArea,
		WingSpan: *raw.WingSpan,
		MAC:      *raw.MAC,
		Coefficients: Coefficients{
			Drag: DragCoefficients{
				Zero:         raw.CD0,
				Alpha:        raw.CDa,
				AlphaQ:       raw.CDaQ,
				AlphaDeltaE:  raw.CDaDe,
				Alpha2:       raw.CDa2,
				Alpha2Q:      raw.CDa2Q,
				Alpha2DeltaE: raw.CDa2De,
				Alpha3:       raw.CDa3,
				Alpha3Q:      raw.CDa3Q,
				Alpha4:       raw.CDa4,
			},
			SideForce: SideForceCoefficients{
				Beta:   raw.CYb,
				P:      raw.CYp,
				R:      raw.CYr,
				DeltaA: raw.CYda,
				DeltaR: raw.CYdr,
			},
			Lift: LiftCoefficients{
				Zero:   raw.CL0,
				Alpha:  raw.CLa,
				Q:      raw.CLq,
				DeltaE: raw.CLde,
				AlphaQ: raw.CLaQ,
				Alpha2: raw.CLa2,
				Alpha3: raw.CLa3,
				Alpha4: raw.CLa4,
			},
			Roll: RollCoefficients{
				Beta:   raw.Clb,
				P:      raw.Clp,
				R:      raw.Clr,
				DeltaA: raw.Clda,
				DeltaR: raw.Cldr,
			},
			Pitch: PitchCoefficients{
				Zero:         raw.Cm0,
				Alpha:        raw.Cma,
				Q:            raw.Cmq,
				DeltaE:       raw.Cmde,
				AlphaQ:       raw.CmaQ,
				Alpha2Q:      raw.Cma2Q,
				Alpha2DeltaE: raw.Cma2De,
				Alpha3Q:      raw.Cma3Q,
				Alpha3DeltaE: raw.Cma3De,
				Alpha4:       raw.Cma4,
			},
			Yaw: YawCoefficients{
				Beta:   raw.Cnb,
				P:      raw.Cnp,
				R:      raw.Cnr,
				DeltaA: raw.Cnda,
				DeltaR: raw.Cndr,
				Beta2:  raw.Cnb2,
				Beta3:  raw.Cnb3,
			},
		},
	}, nil
}
