package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cheesesashimi/stara/pkg/dealer"
	"github.com/urfave/cli/v2"
)

const dealersPath string = "/api/dealers"

type DealerQuerier interface {
	Search(context.Context, string) (dealer.Dealers, error)
}

type siteQuery struct {
	baseURL string
	client  *http.Client
}

func NewSiteQuery(baseURL string) DealerQuerier {
	return siteQuery{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s siteQuery) Search(ctx context.Context, query string) (dealer.Dealers, error) {
	out := struct {
		Dealers dealer.Dealers `json:"dealers"`
	}{}

	u, err := url.Parse(strings.TrimSuffix(s.baseURL, "/") + dealersPath)
	if err != nil {
		return nil, fmt.Errorf("could not parse url: %w", err)
	}

	q := u.Query()
	q.Add("q", query)
	u.RawQuery = q.Encode()

	// curl http://localhost:8080/api/dealers?q=<query>
	resp, err := s.getHTTPRequest(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve dealers matching %q: %w", query, err)
	}

	defer resp.Body.Close()

	respBytes, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected response from %s: %s", u.Host, resp.Status)
	}

	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, fmt.Errorf("could not parse dealer response: %w", err)
	}

	return out.Dealers, nil
}

func (s siteQuery) getHTTPRequest(ctx context.Context, u *url.URL) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "stara-cli")

	return s.client.Do(req)
}

func queryRemote(c *cli.Context) error {
	dealers, err := NewSiteQuery(c.String("url")).Search(c.Context, strings.Join(c.Args().Slice(), " "))
	if err != nil {
		return err
	}

	printDealers(dealers)

	return nil
}
