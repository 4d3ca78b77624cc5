package machine

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/minilang/logger"
	"github.com/stretchr/testify/assert"
)

func TestMachineRunEndToEnd(t *testing.T) {
	var out bytes.Buffer
	m := New(logger.New(logger.LevelNone), &out)

	_, err := m.Run(`
	func add(a,b) [ return a + b; ]
	func main(argc) [ print add(2, 3); ]`)

	assert.NoError(t, err)
	assert.Equal(t, "5\n", out.String())
}

func TestMachineRunLogsUnusedWarning(t *testing.T) {
	var logBuf, out bytes.Buffer
	log := logger.New(logger.LevelWarn)
	log.Out = &logBuf
	m := New(log, &out)

	_, err := m.Run(`func main(argc) [ let unused; print 1; ]`)
	assert.NoError(t, err)
	assert.Contains(t, logBuf.String(), "unused")
}

func TestMachineRunPropagatesParseError(t *testing.T) {
	var out bytes.Buffer
	m := New(logger.New(logger.LevelNone), &out)

	_, err := m.Run(`func main(argc) [ 1 2 3 ]`)
	assert.Error(t, err)
}
