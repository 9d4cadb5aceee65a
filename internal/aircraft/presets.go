package aircraft

// Built-in parameter sets. Values are polynomial identifications from
// flight-test data (Heffley & Jewell for the F-4); they mirror the YAML
// definitions shipped under aircraft/ so either source yields the same
// Model. The coupling-term sign conventions are taken from the source
// identification as-is.

// F4Phantom returns the McDonnell Douglas F-4 parameter set.
func F4Phantom() Model {
	return Model{
		Name:     "F-4 Phantom",
		Mass:     17642.0,
		Ixx:      33898.0,
		Iyy:      165669.0,
		Izz:      189496.0,
		Ixz:      2952.0,
		WingArea: 49.239,
		WingSpan: 11.787,
		MAC:      4.889,
		Coefficients: Coefficients{
			Drag: DragCoefficients{
				Zero:         0.031,
				Alpha:        0.280,
				AlphaQ:       -11.98,
				AlphaDeltaE:  0.0,
				Alpha2:       -1.818,
				Alpha2Q:      209.4,
				Alpha2DeltaE: 0.515,
				Alpha3:       22.27,
				Alpha3Q:      -284.7,
				Alpha4:       -29.81,
			},
			SideForce: SideForceCoefficients{
				Beta:   -0.688,
				P:      0.129,
				R:      0.670,
				DeltaA: 0.0,
				DeltaR: 0.089,
			},
			Lift: LiftCoefficients{
				Zero:   0.105,
				Alpha:  1.519,
				Q:      6.727,
				DeltaE: 0.265,
				AlphaQ: 33.25,
				Alpha2: 9.90,
				Alpha3: -12.71,
				Alpha4: -12.91,
			},
			Roll: RollCoefficients{
				Beta:   -0.034,
				P:      -0.236,
				R:      0.025,
				DeltaA: -0.035,
				DeltaR: 0.013,
			},
			Pitch: PitchCoefficients{
				Zero:         -0.013,
				Alpha:        -0.254,
				Q:            -2.916,
				DeltaE:       -0.403,
				AlphaQ:       -3.955,
				Alpha2Q:      -24.0,
				Alpha2DeltaE: -0.270,
				Alpha3Q:      55.32,
				Alpha3DeltaE: 1.479,
				Alpha4:       -0.448,
			},
			Yaw: YawCoefficients{
				Beta:   0.142,
				P:      -0.006,
				R:      -0.358,
				DeltaA: 0.001,
				DeltaR: -0.053,
				Beta2:  0.0,
				Beta3:  0.377,
			},
		},
	}
}

// TwinOtter returns the DHC-6 Twin Otter parameter set.
func TwinOtter() Model {
	return Model{
		Name:     "Twin Otter",
		Mass:     4874.8,
		Ixx:      28366.4,
		Iyy:      32852.8,
		Izz:      52097.3,
		Ixz:      1384.3,
		WingArea: 39.0,
		WingSpan: 19.8,
		MAC:      1.98,
		Coefficients: Coefficients{
			Drag: DragCoefficients{
				Zero:         0.108,
				Alpha:        0.138,
				AlphaQ:       -54.05,
				AlphaDeltaE:  0.111,
				Alpha2:       2.988,
				Alpha2Q:      302.1,
				Alpha2DeltaE: 0.156,
				Alpha3:       -7.743,
				Alpha3Q:      -218.8,
				Alpha4:       11.77,
			},
			SideForce: SideForceCoefficients{
				Beta:   -0.885,
				P:      -0.090,
				R:      1.697,
				DeltaA: -0.051,
				DeltaR: -0.193,
			},
			Lift: LiftCoefficients{
				Zero:   0.215,
				Alpha:  4.370,
				Q:      25.05,
				DeltaE: 0.291,
				AlphaQ: 52.78,
				Alpha2: 16.62,
				Alpha3: -87.67,
				Alpha4: 90.41,
			},
			Roll: RollCoefficients{
				Beta:   -0.112,
				P:      -0.413,
				R:      0.191,
				DeltaA: -0.206,
				DeltaR: 0.116,
			},
			Pitch: PitchCoefficients{
				Zero:         0.057,
				Alpha:        -1.419,
				Q:            -27.95,
				DeltaE:       -1.626,
				AlphaQ:       100.7,
				Alpha2Q:      -759.2,
				Alpha2DeltaE: 7.664,
				Alpha3Q:      1103.0,
				Alpha3DeltaE: -8.121,
				Alpha4:       2.468,
			},
			Yaw: YawCoefficients{
				Beta:   0.088,
				P:      -0.043,
				R:      -0.426,
				DeltaA: 0.023,
				DeltaR: -0.087,
				Beta2:  0.337,
				Beta3:  -0.766,
			},
		},
	}
}

// GenericTransport returns the NASA generic transport (sub-scale) set.
func GenericTransport() Model {
	return Model{
		Name:     "Generic Transport",
		Mass:     22.5,
		Ixx:      67.2,
		Iyy:      5.77,
		Izz:      7.39,
		Ixz:      0.163,
		WingArea: 0.548,
		WingSpan: 2.08,
		MAC:      0.279,
		Coefficients: Coefficients{
			Drag: DragCoefficients{
				Zero:         0.019,
				Alpha:        -0.078,
				AlphaQ:       -27.42,
				AlphaDeltaE:  0.293,
				Alpha2:       3.420,
				Alpha2Q:      288.2,
				Alpha2DeltaE: -0.040,
				Alpha3:       1.819,
				Alpha3Q:      355.3,
				Alpha4:       -6.563,
			},
			SideForce: SideForceCoefficients{
				Beta:   -1.003,
				P:      0.033,
				R:      0.952,
				DeltaA: -0.009,
				DeltaR: 0.253,
			},
			Lift: LiftCoefficients{
				Zero:   0.016,
				Alpha:  5.343,
				Q:      30.78,
				DeltaE: 0.396,
				AlphaQ: 12.03,
				Alpha2: 0.506,
				Alpha3: -36.30,
				Alpha4: 46.13,
			},
			Roll: RollCoefficients{
				Beta:   -0.109,
				P:      -0.366,
				R:      0.061,
				DeltaA: -0.079,
				DeltaR: 0.021,
			},
			Pitch: PitchCoefficients{
				Zero:         0.182,
				Alpha:        -1.782,
				Q:            -44.34,
				DeltaE:       -1.785,
				AlphaQ:       374.0,
				Alpha2Q:      -1748.0,
				Alpha2DeltaE: 2.439,
				Alpha3Q:      1949.0,
				Alpha3DeltaE: -0.038,
				Alpha4:       0.803,
			},
			Yaw: YawCoefficients{
				Beta:   0.183,
				P:      -0.022,
				R:      -0.405,
				DeltaA: -0.009,
				DeltaR: -0.129,
				Beta2:  0.184,
				Beta3:  -0.377,
			},
		},
	}
}
