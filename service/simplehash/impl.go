package simplehash

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	bCtx "github.com/x-xyz/nftpersona/base/ctx"
	"github.com/x-xyz/nftpersona/base/log"
	"github.com/x-xyz/nftpersona/domain/nft"
	"golang.org/x/xerrors"
)

const apikeyHeader = "X-API-KEY"

type client struct {
	client   http.Client
	timeout  time.Duration
	apikey   string
	endpoint string
}

func NewClient(cfg *ClientCfg) Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &client{
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		apikey:   cfg.Apikey,
		endpoint: strings.TrimRight(endpoint, "/"),
	}
}

func (c *client) GetNftsByContract(ctx bCtx.Ctx, chain, contract string, limit int, orderBy string) (*NftsPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if orderBy != "" {
		params.Set("order_by", orderBy)
	}
	u := fmt.Sprintf("%s/nfts/%s/%s?%s", c.endpoint, url.PathEscape(chain), url.PathEscape(contract), params.Encode())

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	page := &NftsPage{}
	if err := json.Unmarshal(body, page); err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("decode nfts page: %w", err)
	}
	return page, nil
}

func (c *client) GetNft(ctx bCtx.Ctx, chain, contract, tokenId string) (nft.Record, error) {
	u := fmt.Sprintf("%s/nfts/%s/%s/%s", c.endpoint, url.PathEscape(chain), url.PathEscape(contract), url.PathEscape(tokenId))

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	record := nft.Record{}
	if err := json.Unmarshal(body, &record); err != nil {
		ctx.WithFields(log.Fields{
			"url": u,
			"err": err,
		}).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("decode nft: %w", err)
	}
	return record, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set(apikeyHeader, c.apikey)
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode not 2xx")
		return nil, ErrStatusCodeNotOk
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
