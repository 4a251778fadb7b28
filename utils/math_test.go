package utils_test

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/allenyh/yumipy/utils"
)

func TestAngleConversions(t *testing.T) {
	test.That(t, utils.DegToRad(180), test.ShouldEqual, math.Pi)
	test.That(t, utils.RadToDeg(math.Pi/2), test.ShouldEqual, 90.0)
	for _, deg := range []float64{-720, -33.3, 0, 0.001, 57.2957, 359} {
		test.That(t, utils.RadToDeg(utils.DegToRad(deg)), test.ShouldAlmostEqual, deg, 1e-9)
	}
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, utils.Float64AlmostEqual(1.0, 1.0+1e-10, 1e-9), test.ShouldBeTrue)
	test.That(t, utils.Float64AlmostEqual(1.0, 1.1, 1e-9), test.ShouldBeFalse)
}
