package repository

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/domain"
	"github.com/x-xyz/nftpersona/domain/chain"
	"github.com/x-xyz/nftpersona/service/cache/provider/primitive"
	"github.com/x-xyz/nftpersona/service/simplehash"
)

var mockCtx = ctx.Background()

const collectionPage = `{"next":null,"nfts":[
	{"token_id":"0","collection":{"collection_id":"c1","name":"Boys","floor_prices":[]}},
	{"token_id":"1","collection":{"collection_id":"c1","name":"Boys","floor_prices":[]}}
]}`

const nftBody = `{"token_id":"7","chain":"ethereum","contract_address":"0xabc",
	"extra_metadata":{"attributes":[{"trait_type":"Hair Color","value":"Blonde"}]}}`

type testsuite struct {
	suite.Suite
	srv      *httptest.Server
	calls    int64
	status   int
	body     string
	delay    time.Duration
	lastPath atomic.Value
	im       *impl
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) SetupTest() {
	atomic.StoreInt64(&ts.calls, 0)
	ts.status = http.StatusOK
	ts.body = nftBody
	ts.delay = 0
	ts.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&ts.calls, 1)
		ts.lastPath.Store(r.URL.Path)
		time.Sleep(ts.delay)
		w.WriteHeader(ts.status)
		_, _ = w.Write([]byte(ts.body))
	}))
	ts.im = New(&RepoCfg{
		Simplehash: simplehash.NewClient(&simplehash.ClientCfg{
			HttpClient: http.Client{},
			Timeout:    time.Second,
			Apikey:     "api_key",
			Endpoint:   ts.srv.URL,
		}),
		Cache: primitive.NewPrimitive("test", 1),
		Ttl:   time.Minute,
	}).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.srv.Close()
}

func (ts *testsuite) TestFetchNftMemoized() {
	for i := 0; i < 3; i++ {
		record, err := ts.im.FetchNft(mockCtx, chain.Ethereum, "0xabc", "7")
		ts.Require().NoError(err)
		ts.Equal("7", record.TokenId())
	}
	ts.Equal(int64(1), atomic.LoadInt64(&ts.calls))
}

func (ts *testsuite) TestFetchNftContractCase() {
	_, err := ts.im.FetchNft(mockCtx, chain.Ethereum, "0xABC", "7")
	ts.Require().NoError(err)
	ts.Equal("/nfts/ethereum/0xabc/7", ts.lastPath.Load())

	_, err = ts.im.FetchNft(mockCtx, chain.Ethereum, "0xabc", "7")
	ts.Require().NoError(err)
	ts.Equal(int64(1), atomic.LoadInt64(&ts.calls))
}

func (ts *testsuite) TestFetchNftConcurrent() {
	ts.delay = 100 * time.Millisecond

	wg := sync.WaitGroup{}
	errs := make([]error, 8)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ts.im.FetchNft(mockCtx, chain.Ethereum, "0xabc", "7")
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		ts.NoError(err)
	}
	ts.Equal(int64(1), atomic.LoadInt64(&ts.calls))
}

func (ts *testsuite) TestFetchNftFailureNotCached() {
	ts.status = http.StatusInternalServerError
	ts.body = `{}`

	_, err := ts.im.FetchNft(mockCtx, chain.Ethereum, "0xabc", "7")
	ts.ErrorIs(err, domain.ErrNotFound)

	ts.status = http.StatusOK
	ts.body = nftBody
	record, err := ts.im.FetchNft(mockCtx, chain.Ethereum, "0xabc", "7")
	ts.Require().NoError(err)
	ts.Equal("7", record.TokenId())
	ts.Equal(int64(2), atomic.LoadInt64(&ts.calls))
}

func (ts *testsuite) TestFetchNftMalformed() {
	ts.body = `[1,2`

	_, err := ts.im.FetchNft(mockCtx, chain.Ethereum, "0xabc", "7")
	ts.ErrorIs(err, domain.ErrNotFound)
}

func (ts *testsuite) TestFetchCollection() {
	ts.body = collectionPage

	res, err := ts.im.FetchCollection(mockCtx, chain.Ethereum, "0xabc")
	ts.Require().NoError(err)
	ts.Equal("Boys", *res.Name)
	ts.Len(res.Nfts, 2)

	again, err := ts.im.FetchCollection(mockCtx, chain.Ethereum, "0xabc")
	ts.Require().NoError(err)
	ts.Equal(*res.CollectionId, *again.CollectionId)
	ts.Len(again.Nfts, 2)
	ts.Equal(int64(1), atomic.LoadInt64(&ts.calls))
	ts.True(strings.HasSuffix(ts.lastPath.Load().(string), "/nfts/ethereum/0xabc"))
}

func (ts *testsuite) TestFetchCollectionEmpty() {
	ts.body = `{"next":null,"nfts":[]}`

	_, err := ts.im.FetchCollection(mockCtx, chain.Ethereum, "0xabc")
	ts.ErrorIs(err, domain.ErrNotFound)

	_, err = ts.im.FetchCollection(mockCtx, chain.Ethereum, "0xabc")
	ts.ErrorIs(err, domain.ErrNotFound)
	ts.Equal(int64(2), atomic.LoadInt64(&ts.calls))
}

func (ts *testsuite) TestFetchCollectionSolanaKeepsCase() {
	ts.body = collectionPage

	_, err := ts.im.FetchCollection(mockCtx, chain.Solana, "AbCdEf")
	ts.Require().NoError(err)
	ts.Equal("/nfts/solana/AbCdEf", ts.lastPath.Load())
}
