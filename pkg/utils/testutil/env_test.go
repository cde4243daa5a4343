package testutil_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/ghbox/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Setenv("GHBOX_TEST_ENV", "value")
	gt.V(t, testutil.GetEnvOrSkip(t, "GHBOX_TEST_ENV")).Equal("value")
}

func TestEventually(t *testing.T) {
	var n atomic.Int32
	go func() {
		for i := 0; i < 3; i++ {
			time.Sleep(time.Millisecond)
			n.Add(1)
		}
	}()

	testutil.Eventually(t, time.Second, func() bool { return n.Load() == 3 })
	gt.V(t, n.Load()).Equal(int32(3))
}
