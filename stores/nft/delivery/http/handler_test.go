package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/nftpersona/domain"
	"github.com/x-xyz/nftpersona/domain/chain"
	"github.com/x-xyz/nftpersona/domain/nft"
	mNft "github.com/x-xyz/nftpersona/domain/nft/mocks"
	"github.com/x-xyz/nftpersona/middleware"
)

const contract = "0x5aeda56215b167893e80b4fe645ba6d5bab767de"

type handlerSuite struct {
	suite.Suite

	e  *echo.Echo
	us *mNft.Usecase
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	m := middleware.InitMiddleware()
	s.e.Use(m.AddContext())
	s.us = &mNft.Usecase{}
	New(s.e, s.us)
}

func (s *handlerSuite) TearDownTest() {
	s.us.AssertExpectations(s.T())
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) get(target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func (s *handlerSuite) TestGetChains() {
	s.us.On("Chains", mock.Anything).Return([]string{"ethereum", "polygon"}).Once()

	rec := s.get("/api/chains")
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"chains":["ethereum","polygon"]}`, rec.Body.String())
}

func (s *handlerSuite) TestGetCollection() {
	name := "Boys"
	summary := &nft.CollectionSummary{
		UpstreamCollection: nft.UpstreamCollection{Name: &name, FloorPrices: []nft.FloorPrice{}},
		Nfts:               []json.RawMessage{json.RawMessage(`{"token_id":"0"}`)},
	}
	s.us.On("GetCollection", mock.Anything, chain.Ethereum, contract).Return(summary, nil).Once()

	rec := s.get("/api/collection?chain=ethereum&contract=" + contract)
	s.Equal(http.StatusOK, rec.Code)

	body := map[string]interface{}{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal("Boys", body["name"])
	s.Contains(body, "description")
	s.Len(body["nfts"], 1)
}

func (s *handlerSuite) TestGetCollectionBadRequest() {
	cases := []struct {
		Desc   string
		Target string
		Body   string
	}{
		{Desc: "missing both", Target: "/api/collection", Body: `{"error":"Missing chain or contract address"}`},
		{Desc: "missing contract", Target: "/api/collection?chain=ethereum", Body: `{"error":"Missing chain or contract address"}`},
		{Desc: "blank chain", Target: "/api/collection?chain=%20&contract=" + contract, Body: `{"error":"Missing chain or contract address"}`},
		{Desc: "malformed address", Target: "/api/collection?chain=ethereum&contract=0x12", Body: `{"error":"Invalid contract address"}`},
	}

	for _, c := range cases {
		rec := s.get(c.Target)
		s.Equal(http.StatusBadRequest, rec.Code, c.Desc)
		s.JSONEq(c.Body, rec.Body.String(), c.Desc)
	}
	s.us.AssertNotCalled(s.T(), "GetCollection", mock.Anything, mock.Anything, mock.Anything)
}

func (s *handlerSuite) TestGetCollectionNotFound() {
	s.us.On("GetCollection", mock.Anything, chain.Ethereum, contract).Return(nil, domain.ErrNotFound).Once()

	rec := s.get("/api/collection?chain=ethereum&contract=" + contract)
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"Collection not found"}`, rec.Body.String())
}

func (s *handlerSuite) TestGetNft() {
	record := nft.Record{"token_id": json.RawMessage(`"42"`), "name": json.RawMessage(`"Boy #42"`)}.
		WithPersonality("A gentle dreamer.")
	s.us.On("GetNft", mock.Anything, chain.Polygon, contract, "42").Return(record, nil).Once()

	rec := s.get("/api/nft/42?chain=polygon&contract=" + contract)
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"token_id":"42","name":"Boy #42","generated_personality":"A gentle dreamer."}`, rec.Body.String())
}

func (s *handlerSuite) TestGetNftErrors() {
	rec := s.get("/api/nft/42?contract=" + contract)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"error":"Missing chain or contract address"}`, rec.Body.String())

	s.us.On("GetNft", mock.Anything, chain.Ethereum, contract, "404").Return(nil, domain.ErrNotFound).Once()
	rec = s.get("/api/nft/404?chain=ethereum&contract=" + contract)
	s.Equal(http.StatusNotFound, rec.Code)
	s.JSONEq(`{"error":"NFT not found"}`, rec.Body.String())
}
