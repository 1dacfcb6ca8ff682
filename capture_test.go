package foamshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCaptureBarrierResetsReadyCount exercises the ready_count bookkeeping
// in isolation from the wire protocol: each fake dispatch delivers one
// ready event, and once every monitor's frame has signalled ready,
// AwaitAll must return with ready_count back at zero.
func TestCaptureBarrierResetsReadyCount(t *testing.T) {
	cs := &CaptureSession{total: 3}

	dispatchCount := 0
	err := cs.AwaitAll(func() error {
		dispatchCount++
		cs.readyCount++
		return nil
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, cs.readyCount)
	assert.Equal(t, 3, dispatchCount)
}
