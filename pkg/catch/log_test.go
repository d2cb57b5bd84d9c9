package catch

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// Not parallel: swaps the package logger.
func TestSetLogger_TracesDispatch(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	defer SetLogger(zerolog.Nop())

	out := Execute(raise(&SubError{}))
	_ = out.Catch(On(func(*SubError) {}))
	_ = out.Catch()
	out.Inspect(func(error, bool) {})

	logged := buf.String()
	assert.Contains(t, logged, `"message":"dispatching to handler"`)
	assert.Contains(t, logged, `"type":"*catch.SubError"`)
	assert.Contains(t, logged, `"message":"no handler for error type"`)
	assert.Contains(t, logged, `"message":"pass-through dispatch"`)
	assert.Contains(t, logged, out.Id().String())
}
