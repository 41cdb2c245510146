package restrepos

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/Panthutk/UniPlan/core"
)

// Client is the shared HTTP plumbing for the backend persistence API.
// Non-2xx responses become core.RequestError with the status preserved;
// statuses are not interpreted individually.
type Client struct {
	base string
	http *http.Client
}

func NewClient(conf *core.Config) *Client {
	return &Client{
		base: strings.TrimRight(conf.Backend.BaseURL, "/"),
		http: &http.Client{Timeout: conf.Backend.Timeout},
	}
}

func (c *Client) do(ctx context.Context, sess *core.Session, method, path string, in, out interface{}) error {
	op := fmt.Sprintf("%s %s", method, path)

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return errors.Wrapf(err, "encoding %s body", op)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return errors.Wrapf(err, "building request %s", op)
	}
	req.Header.Set("Authorization", "Bearer "+sess.Bearer())
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, op)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(ioutil.Discard, resp.Body)
		return &core.RequestError{Op: op, Status: resp.StatusCode}
	}
	if out != nil {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrapf(err, "decoding %s response", op)
		}
	}
	return nil
}
