package errors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestWarnThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	SetZerologWarnFunc(func(warning error) {
		if obj, ok := warning.(zerolog.LogObjectMarshaler); ok {
			logger.Warn().EmbedObject(obj).Msg(warning.Error())
			return
		}
		logger.Warn().Err(warning).Msg("warning")
	})
	defer SetZerologWarnFunc(nil)

	Warn(NewConvergenceWarning("TobitRegression", 1000, "tolerance not reached"))

	out := buf.String()
	for _, want := range []string{
		`"algorithm":"TobitRegression"`,
		`"iterations":1000`,
		`"type":"ConvergenceWarning"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("zerolog output %q missing %q", out, want)
		}
	}
}

func TestErrorTypesMarshalToZerolog(t *testing.T) {
	tests := []struct {
		name string
		obj  zerolog.LogObjectMarshaler
		want []string
	}{
		{
			name: "NotFittedError",
			obj:  &NotFittedError{ModelName: "TobitRegression", Method: "Predict"},
			want: []string{`"model_name":"TobitRegression"`, `"type":"NotFittedError"`},
		},
		{
			name: "DimensionError",
			obj:  &DimensionError{Op: "Fit", Expected: 3, Got: 2, Axis: 1},
			want: []string{`"expected":3`, `"got":2`, `"axis_name":"features"`},
		},
		{
			name: "NumericalInstabilityError",
			obj:  &NumericalInstabilityError{Operation: "lossGrad", Values: []float64{1}, Iteration: 5},
			want: []string{`"operation":"lossGrad"`, `"iteration":5`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf)
			logger.Info().EmbedObject(tt.obj).Msg("")

			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output %q missing %q", buf.String(), want)
				}
			}
		})
	}
}
