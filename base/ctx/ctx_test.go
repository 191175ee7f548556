package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftpersona/base/log"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "requestID", "abc")
	ts.Equal("abc", ctx.Value("requestID"))
}

func (ts *testsuite) TestWithLogFields() {
	bg := WithValue(Background(), "requestID", "abc")
	ctx := WithLogFields(bg, log.Fields{"chain": "ethereum"})
	ts.Equal("abc", ctx.Value("requestID"))
	ts.Nil(ctx.Value("chain"))
}

func (ts *testsuite) TestFrom() {
	type key string
	parent := context.WithValue(context.Background(), key("k"), "v")
	ctx := From(parent)
	ts.Equal("v", ctx.Value(key("k")))
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context not cancelled")
	}
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		ts.Fail("context not timed out")
	}
	ts.Equal("context deadline exceeded", ctx.Err().Error())
}

func (ts *testsuite) TestZeroTimeoutNeverExpires() {
	ctx, cancel := WithTimeout(Background(), 0)
	defer cancel()
	_, ok := ctx.Deadline()
	ts.False(ok)
	ts.NoError(ctx.Err())
}
