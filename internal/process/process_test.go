package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMain intercepts test binary execution so the binary can be re-launched as
// a controlled query command. Each PROCESS_TEST_HELPER value makes the
// subprocess behave deterministically without running any tests.
func TestMain(m *testing.M) {
	switch os.Getenv("PROCESS_TEST_HELPER") {
	case "print":
		fmt.Print("ProcessorId\r\nBFEBFBFF000906EA\r\n")
		os.Exit(0)
	case "blank":
		fmt.Print(" \r\n\r\n")
		os.Exit(0)
	case "exit1":
		fmt.Print("partial")
		os.Exit(1)
	case "sleep":
		time.Sleep(60 * time.Second)
		os.Exit(0)
	}
	os.Exit(m.Run())
}

func helper(mode string) Runner {
	return Runner{Env: []string{"PROCESS_TEST_HELPER=" + mode}}
}

func TestOutput_ReturnsStdout(t *testing.T) {
	out, err := helper("print").Output(context.Background(), os.Args[0])
	require.NoError(t, err)
	assert.Equal(t, "ProcessorId\r\nBFEBFBFF000906EA\r\n", out)
}

func TestOutput_BlankOutputIsError(t *testing.T) {
	_, err := helper("blank").Output(context.Background(), os.Args[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyOutput), "expected ErrEmptyOutput, got %v", err)
}

func TestOutput_NonZeroExitIsError(t *testing.T) {
	out, err := helper("exit1").Output(context.Background(), os.Args[0])
	require.Error(t, err)
	assert.Empty(t, out)
}

// TestOutput_TimeoutKillsChild launches a long-sleeping subprocess and
// verifies Output gives up promptly once the deadline passes.
func TestOutput_TimeoutKillsChild(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := helper("sleep").Output(ctx, os.Args[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTimeout), "expected ErrTimeout, got %v", err)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestOutput_MissingBinary(t *testing.T) {
	_, err := Output(context.Background(), "hwid-no-such-command-on-path")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrTimeout))
}
