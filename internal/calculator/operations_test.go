package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"unitconv/internal/calculator"
	"unitconv/pkg/physics"
	"unitconv/pkg/serrors"
	"unitconv/pkg/units"
)

func TestOperations_Registry(t *testing.T) {
	ops := calculator.Operations()
	require.Len(t, ops, 22)

	seen := make(map[string]bool, len(ops))
	for _, op := range ops {
		require.False(t, seen[op.Name], "duplicate operation %s", op.Name)
		seen[op.Name] = true

		require.NotEmpty(t, op.Description, op.Name)
		require.NotEmpty(t, op.Formula, op.Name)
		require.NotEmpty(t, op.ResultUnit, op.Name)
		require.NotEmpty(t, op.Params, op.Name)
		for _, p := range op.Params {
			require.NotEmpty(t, p.Name, op.Name)
			require.NotEmpty(t, p.Unit, op.Name)
			if p.Kind != "" {
				require.Equal(t, p.Kind.SIUnit(), p.Unit, "%s.%s", op.Name, p.Name)
			}
		}
	}
}

func TestOperations_ReturnsCopies(t *testing.T) {
	ops := calculator.Operations()
	ops[0].Params[0].Name = "changed"

	op, ok := calculator.LookupOperation(ops[0].Name)
	require.True(t, ok)
	require.NotEqual(t, "changed", op.Params[0].Name)
}

func TestLookupOperation(t *testing.T) {
	for _, name := range []string{"kinetic_energy", "Kinetic_Energy", "kinetic-energy", " KINETIC-ENERGY "} {
		op, ok := calculator.LookupOperation(name)
		require.True(t, ok, name)
		require.Equal(t, "kinetic_energy", op.Name)
	}

	_, ok := calculator.LookupOperation("warp_speed")
	require.False(t, ok)
}

func TestOperation_Evaluate(t *testing.T) {
	c := calculator.New(nil)

	cases := []struct {
		op     string
		args   map[string]calculator.Arg
		want   float64
		inputs map[string]float64
	}{
		{
			op:     "speed",
			args:   map[string]calculator.Arg{"distance": calculator.Text("100 cm"), "time": calculator.Numeric(2)},
			want:   0.5,
			inputs: map[string]float64{"distance": 1, "time": 2},
		},
		{
			op:     "momentum",
			args:   map[string]calculator.Arg{"mass": calculator.Numeric(2), "velocity": calculator.Text("3 m/s")},
			want:   6,
			inputs: map[string]float64{"mass": 2, "velocity": 3},
		},
		{
			op: "gravitational_force",
			args: map[string]calculator.Arg{
				"mass1":    calculator.Numeric(1000),
				"mass2":    calculator.Text("1 t"),
				"distance": calculator.Text("1 km"),
			},
			want:   physics.GravitationalConstant,
			inputs: map[string]float64{"mass1": 1000, "mass2": 1000, "distance": 1000},
		},
		{
			op:     "frequency",
			args:   map[string]calculator.Arg{"period": calculator.Numeric(0.5)},
			want:   2,
			inputs: map[string]float64{"period": 0.5},
		},
		{
			op:     "efficiency",
			args:   map[string]calculator.Arg{"output_energy": calculator.Numeric(30), "input_energy": calculator.Numeric(120)},
			want:   25,
			inputs: map[string]float64{"output_energy": 30, "input_energy": 120},
		},
		{
			op:     "electric_power",
			args:   map[string]calculator.Arg{"voltage": calculator.Numeric(230), "current": calculator.Numeric(2)},
			want:   460,
			inputs: map[string]float64{"voltage": 230, "current": 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.op, func(t *testing.T) {
			op, ok := calculator.LookupOperation(tc.op)
			require.True(t, ok)

			res, err := op.Evaluate(c, tc.args)
			require.NoError(t, err)
			require.Equal(t, tc.op, res.Operation)
			require.Equal(t, op.ResultUnit, res.Unit)
			require.InDelta(t, tc.want, res.Result, 1e-12)
			require.Len(t, res.Inputs, len(tc.inputs))
			for name, v := range tc.inputs {
				require.InDelta(t, v, res.Inputs[name], 1e-9, name)
			}
		})
	}
}

func TestOperation_EvaluateEveryOperation(t *testing.T) {
	c := calculator.New(nil)

	for _, op := range calculator.Operations() {
		args := make(map[string]calculator.Arg, len(op.Params))
		for _, p := range op.Params {
			args[p.Name] = calculator.Numeric(2)
		}

		res, err := op.Evaluate(c, args)
		require.NoError(t, err, op.Name)
		require.Equal(t, op.Name, res.Operation)
	}
}

func TestOperation_EvaluateErrors(t *testing.T) {
	c := calculator.New(nil)
	speed, ok := calculator.LookupOperation("speed")
	require.True(t, ok)

	cases := []struct {
		name string
		args map[string]calculator.Arg
		kind serrors.Kind
		msg  string
	}{
		{
			name: "missing argument",
			args: map[string]calculator.Arg{"distance": calculator.Numeric(1)},
			kind: serrors.ErrBadRequest,
			msg:  `speed requires a "time" argument`,
		},
		{
			name: "unknown argument",
			args: map[string]calculator.Arg{"distance": calculator.Numeric(1), "time": calculator.Numeric(1), "mass": calculator.Numeric(1)},
			kind: serrors.ErrBadRequest,
			msg:  `speed does not take a "mass" argument`,
		},
		{
			name: "text for numeric parameter",
			args: map[string]calculator.Arg{"distance": calculator.Numeric(1), "time": calculator.Text("5 min")},
			kind: serrors.ErrBadRequest,
			msg:  `speed argument "time" takes a plain number in s, got "5 min"`,
		},
		{
			name: "unknown unit",
			args: map[string]calculator.Arg{"distance": calculator.Text("3 parsecs"), "time": calculator.Numeric(1)},
			kind: units.ErrUnknownUnit,
		},
		{
			name: "domain",
			args: map[string]calculator.Arg{"distance": calculator.Numeric(1), "time": calculator.Numeric(0)},
			kind: physics.ErrDomain,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := speed.Evaluate(c, tc.args)
			require.ErrorIs(t, err, tc.kind)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			if tc.msg != "" {
				require.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}
