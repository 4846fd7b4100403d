// Package notifier makes a best-effort call-started request to the backend.
// Delivery never fails the contact flow: any error is logged and swallowed.
package notifier

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/whispa/connect-lambda/internal/client"
	"github.com/whispa/connect-lambda/internal/config"
	"github.com/whispa/connect-lambda/internal/handler"
)

const callStartedPath = "/awsconnect/call-started"

// Notifier posts call metadata to the backend
type Notifier struct {
	cfg     config.Config
	timeout time.Duration
}

// New returns a new Notifier
func New(cfg config.Config) *Notifier {
	return &Notifier{cfg: cfg, timeout: 10 * time.Second}
}

// CallStarted makes a single POST to the backend. No retry, and no error
// return: a call that cannot be captured is logged, not surfaced.
func (n *Notifier) CallStarted(p *handler.Payload) {

	if n.cfg.BaseURL == "" {
		fmt.Println("WARNING: no base URL configured, call will not be captured")
		return
	}

	out, err := json.Marshal(p)
	if err != nil {
		fmt.Printf("failed to marshal payload: %v\n", err)
		return
	}
	fmt.Printf("payload for backend: %s\n", out)

	burl, err := url.Parse(strings.TrimRight(n.cfg.BaseURL, "/") + callStartedPath)
	if err != nil {
		fmt.Printf("WARNING: misconfigured base URL, call will not be captured: %v\n", err)
		return
	}

	c := &client.Client{
		BaseURL:    burl,
		APIKey:     n.cfg.APIKey,
		HTTPClient: &http.Client{Timeout: n.timeout},
	}

	req, err := c.NewRequest("", out)
	if err != nil {
		fmt.Printf("failed to make request: %v\n", err)
		return
	}

	res, err := c.Do(req)
	if err != nil {
		fmt.Printf("failed to call backend: %v\n", err)
		return
	}
	defer res.Body.Close()

	body, err := ioutil.ReadAll(res.Body)
	if err != nil {
		fmt.Printf("failed to read backend response body: %v\n", err)
		return
	}

	if res.StatusCode >= 400 {
		fmt.Printf("backend error: status=%v, body=%s\n", res.StatusCode, body)
		return
	}

	fmt.Printf("backend response: status=%v, body=%s\n", res.StatusCode, body)
}
