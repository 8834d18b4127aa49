// Copyright (c) 2014-2017 The btcsuite developers
// Copyright (c) 2015-2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/btcsuite/corejson/btcjson"
	"github.com/btcsuite/go-socks/socks"
	jsoniter "github.com/json-iterator/go"
)

var (
	// ErrInvalidAuth is an error to describe the condition where the client
	// is either unable to authenticate or the specified endpoint is
	// incorrect.
	ErrInvalidAuth = errors.New("authentication failure")

	// ErrClientShutdown is an error to describe the condition where the
	// client is either already shutdown, or in the process of shutting
	// down.  Any outstanding futures when a client shutdown occurs will
	// return this error as will any new requests.
	ErrClientShutdown = errors.New("the client has been shutdown")

	// ErrEmptyResponse is returned when the server answers with an empty
	// body.
	ErrEmptyResponse = errors.New("empty response from server")
)

// jsonAPI encodes and decodes the JSON-RPC envelope.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// defaultHTTPTimeout is the timeout of a single HTTP round trip when
	// the configuration does not set one.
	defaultHTTPTimeout = 5 * time.Minute
)

// ConnConfig describes the connection configuration parameters for the
// client.
type ConnConfig struct {
	// Host is the IP address and port of the RPC server you want to connect
	// to.
	Host string

	// User is the username to use to authenticate to the RPC server.
	User string

	// Pass is the passphrase to use to authenticate to the RPC server.
	Pass string

	// CookiePath is the path to a cookie file containing the username and
	// passphrase to use to authenticate to the RPC server.  It is used
	// instead of User and Pass if non-empty.
	CookiePath string

	// Wallet scopes every wallet level command to the named wallet of a
	// multi-wallet node.  Commands that already carry a wallet name keep
	// their own.
	Wallet string

	// DisableTLS specifies whether transport layer security should be
	// disabled.  Bitcoin Core does not serve TLS, so this is usually set
	// unless the node sits behind a TLS terminating proxy.
	DisableTLS bool

	// Certificates are the bytes for a PEM-encoded certificate chain used
	// for the TLS connection.  It has no effect if the DisableTLS parameter
	// is true.
	Certificates []byte

	// Proxy specifies to connect through a SOCKS 5 proxy server.  It may
	// be an empty string if a proxy is not required.
	Proxy string

	// ProxyUser is an optional username to use for the proxy server if it
	// requires authentication.  It has no effect if the Proxy parameter
	// is not set.
	ProxyUser string

	// ProxyPass is an optional password to use for the proxy server if it
	// requires authentication.  It has no effect if the Proxy parameter
	// is not set.
	ProxyPass string

	// Timeout bounds a single HTTP round trip.  Zero selects a default of
	// five minutes since calls such as rescanblockchain may run long.
	Timeout time.Duration

	// ExtraHeaders specifies the extra headers when perform request.  It's
	// useful when RPC provider need customized headers.
	ExtraHeaders map[string]string

	// retrieveCookie is the cookie retriever built from CookiePath.
	retrieveCookie func() (username, password string, err error)
}

// getAuth returns the username and passphrase that will actually be used for
// this connection.  This will be the result of checking the cookie if a cookie
// path is configured; if not, it will be the user-configured username and
// passphrase.
func (config *ConnConfig) getAuth() (username, passphrase string, err error) {
	// Try username+passphrase auth first.
	if config.Pass != "" {
		return config.User, config.Pass, nil
	}

	// If no username or passphrase is set, try cookie auth.
	return config.retrieveCookieAuth()
}

// retrieveCookieAuth returns the cookie username and passphrase.
func (config *ConnConfig) retrieveCookieAuth() (username, passphrase string, err error) {
	if config.retrieveCookie == nil {
		config.retrieveCookie = cookieRetriever(config.CookiePath)
	}

	return config.retrieveCookie()
}

// url returns the URL the request for the given path is posted to.
func (config *ConnConfig) url(path string) string {
	scheme := "https"
	if config.DisableTLS {
		scheme = "http"
	}
	if path == "" {
		path = "/"
	}
	return scheme + "://" + strings.TrimSuffix(config.Host, "/") + path
}

// Response is the raw reply delivered to a future.
type Response struct {
	result json.RawMessage
	err    error
}

// ReceiveFuture receives from the passed futureResult channel to extract a
// reply or any errors.  The examined errors include an error in the
// futureResult and the error in the reply from the server.  This will block
// until the result is available on the passed channel.
func ReceiveFuture(f chan *Response) (json.RawMessage, error) {
	// Wait for a response on the returned channel.
	r := <-f
	return r.result, r.err
}

// newFutureError returns a new future result channel that already has the
// passed error waiting on the channel with the reply set to nil.  This is
// useful to easily return errors from the various Async functions.
func newFutureError(err error) chan *Response {
	responseChan := make(chan *Response, 1)
	responseChan <- &Response{err: err}
	return responseChan
}

// backendState caches the version of the connected node.
type backendState struct {
	mtx     sync.Mutex
	version *BackendVersion
}

// Client represents a Bitcoin Core RPC client which allows easy access to the
// various RPC methods available on the node.  Every call is an independent
// HTTP POST request; requests may be issued concurrently.
//
// The client provides each RPC in both synchronous (blocking) and
// asynchronous (non-blocking) forms.  The async forms are based on the
// concept of futures where they return an instance of a type that promises
// to deliver the result of the invocation at some future time.  Invoking the
// Receive method on the returned future will block until the result is
// available if it's not already.
type Client struct {
	// id is the last request id.  It is shared by every wallet view of
	// the client.
	id *atomic.Uint64

	// config holds the connection configuration associated with this
	// client.
	config *ConnConfig

	// wallet is the wallet wallet level commands are scoped to.
	wallet string

	// httpClient is the underlying HTTP client to use when running in
	// HTTP POST mode.
	httpClient *http.Client

	backend *backendState

	// mtx protects the shutdown state so no request is added to wg once
	// Shutdown started waiting on it.
	mtx          *sync.Mutex
	shutdown     chan struct{}
	shutdownOnce *sync.Once
	wg           *sync.WaitGroup
}

// New creates a new RPC client based on the provided connection
// configuration details.  No connection is made until the first request.
func New(config *ConnConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: nil connection config", ErrInvalidParam)
	}
	if config.Host == "" {
		return nil, fmt.Errorf("%w: empty host", ErrInvalidParam)
	}
	if config.Wallet != "" && !btcjson.IsValidWalletName(config.Wallet) {
		return nil, fmt.Errorf("%w: wallet name %q", ErrInvalidParam,
			config.Wallet)
	}

	httpClient, err := newHTTPClient(config)
	if err != nil {
		return nil, err
	}

	client := &Client{
		id:           new(atomic.Uint64),
		config:       config,
		wallet:       config.Wallet,
		httpClient:   httpClient,
		backend:      &backendState{},
		mtx:          new(sync.Mutex),
		shutdown:     make(chan struct{}),
		shutdownOnce: new(sync.Once),
		wg:           new(sync.WaitGroup),
	}
	log.Infof("Established client for RPC server %s", config.Host)

	return client, nil
}

// newHTTPClient returns a new http client that is configured according to the
// proxy and TLS settings in the associated connection configuration.
func newHTTPClient(config *ConnConfig) (*http.Client, error) {
	// Configure TLS if needed.
	var tlsConfig *tls.Config
	if !config.DisableTLS {
		if len(config.Certificates) > 0 {
			pool := x509.NewCertPool()
			if !pool.AppendCertsFromPEM(config.Certificates) {
				return nil, fmt.Errorf("%w: no certificates found in "+
					"PEM data", ErrInvalidParam)
			}
			tlsConfig = &tls.Config{
				RootCAs:    pool,
				MinVersion: tls.VersionTLS12,
			}
		}
	}

	transport := &http.Transport{
		TLSClientConfig: tlsConfig,
	}

	// Dial through the SOCKS 5 proxy if there is one configured.
	if config.Proxy != "" {
		proxy := &socks.Proxy{
			Addr:     config.Proxy,
			Username: config.ProxyUser,
			Password: config.ProxyPass,
		}
		transport.DialContext = func(_ context.Context, network,
			addr string) (net.Conn, error) {

			return proxy.Dial(network, addr)
		}
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultHTTPTimeout
	}

	client := http.Client{
		Transport: transport,
		Timeout:   timeout,
	}

	return &client, nil
}

// WithWallet returns a view of the client whose wallet level commands are
// sent to the named wallet.  The view shares the connection of c and is shut
// down together with it.
func (c *Client) WithWallet(name string) (*Client, error) {
	if name != "" && !btcjson.IsValidWalletName(name) {
		return nil, fmt.Errorf("%w: wallet name %q", ErrInvalidParam,
			name)
	}

	view := *c
	view.wallet = name
	return &view, nil
}

// Wallet returns the wallet the client scopes wallet level commands to.
func (c *Client) Wallet() string {
	return c.wallet
}

// NextID returns the next id to be used when sending a JSON-RPC message.
func (c *Client) NextID() uint64 {
	return c.id.Add(1)
}

// Shutdown shuts down the client, waiting for every outstanding request to
// finish.  New requests fail with ErrClientShutdown afterwards.
func (c *Client) Shutdown() {
	c.mtx.Lock()
	c.shutdownOnce.Do(func() {
		log.Tracef("Shutting down RPC client %s", c.config.Host)
		close(c.shutdown)
	})
	c.mtx.Unlock()

	c.wg.Wait()
	c.httpClient.CloseIdleConnections()
}

// isShutdown reports whether Shutdown was called.
func (c *Client) isShutdown() bool {
	select {
	case <-c.shutdown:
		return true
	default:
		return false
	}
}

// addRequest registers an outstanding request with the shutdown wait group.
// It returns ErrClientShutdown once the client is shut down.  Every nil
// return must be paired with a call to c.wg.Done.
func (c *Client) addRequest() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.isShutdown() {
		return ErrClientShutdown
	}
	c.wg.Add(1)
	return nil
}

// encode turns the command into a request and applies the wallet scope of
// the client.
func (c *Client) encode(cmd btcjson.Cmd) (*btcjson.Request, error) {
	req, err := btcjson.EncodeCmd(cmd)
	if err != nil {
		return nil, err
	}

	if _, ok := cmd.(btcjson.WalletCmd); ok && c.wallet != "" &&
		req.Path == "/" {

		req.Path = "/wallet/" + url.PathEscape(c.wallet)
	}
	return req, nil
}

// Send posts the request to the server and returns the raw result.  The
// request is assigned the next id of the client and posted to the path it
// carries.  A reply holding an error object yields that error mapped by
// MapRPCErr.
func (c *Client) Send(ctx context.Context,
	req *btcjson.Request) (json.RawMessage, error) {

	if err := c.addRequest(); err != nil {
		return nil, err
	}
	defer c.wg.Done()

	return c.send(ctx, req)
}

// send posts the request once it was registered with addRequest.
func (c *Client) send(ctx context.Context,
	req *btcjson.Request) (json.RawMessage, error) {

	id := c.NextID()
	req, err := req.WithID(id)
	if err != nil {
		return nil, err
	}
	body, err := jsonAPI.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Method, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.url(req.Path), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for key, value := range c.config.ExtraHeaders {
		httpReq.Header.Set(key, value)
	}

	// Configure basic access authorization.
	user, pass, err := c.config.getAuth()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAuth, err)
	}
	httpReq.SetBasicAuth(user, pass)

	log.Tracef("Sending command [%s] with id %d to %s", req.Method, id,
		req.Path)
	log.Tracef("Request body: %v", newLogClosure(func() string {
		return string(body)
	}))

	httpResponse, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", req.Method, err)
	}
	defer httpResponse.Body.Close()

	// Read the raw bytes and close the response.
	respBytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading json reply: %w", err)
	}

	return handleReply(req.Method, httpResponse.StatusCode, respBytes)
}

// handleReply decodes the JSON-RPC envelope of a reply.  The node answers RPC
// errors with a non-200 status and a regular envelope, so the status code is
// only reported when the body is not an envelope.
func handleReply(method string, status int,
	respBytes []byte) (json.RawMessage, error) {

	if status == http.StatusUnauthorized ||
		status == http.StatusForbidden {

		return nil, fmt.Errorf("%w: status code %d", ErrInvalidAuth,
			status)
	}
	if len(bytes.TrimSpace(respBytes)) == 0 {
		return nil, fmt.Errorf("%s: %w: status code %d", method,
			ErrEmptyResponse, status)
	}

	var resp btcjson.Response
	if err := jsonAPI.Unmarshal(respBytes, &resp); err != nil {
		return nil, fmt.Errorf("status code: %d, response: %q",
			status, string(respBytes))
	}

	if resp.Error != nil {
		log.Debugf("Command [%s] failed: %v", method, resp.Error)
		return nil, MapRPCErr(resp.Error)
	}

	log.Tracef("Command [%s] succeeded", method)
	return resp.Result, nil
}

// SendCmd encodes the command and sends it asynchronously.  The returned
// channel delivers the raw result or the error once the call completes.
func (c *Client) SendCmd(ctx context.Context, cmd btcjson.Cmd) chan *Response {
	req, err := c.encode(cmd)
	if err != nil {
		return newFutureError(err)
	}
	if err := c.addRequest(); err != nil {
		return newFutureError(err)
	}

	responseChan := make(chan *Response, 1)
	go func() {
		defer c.wg.Done()

		result, err := c.send(ctx, req)
		responseChan <- &Response{result: result, err: err}
	}()

	return responseChan
}

// Call encodes the command, sends it and parses the result into res.  A nil
// res discards the result.
func (c *Client) Call(ctx context.Context, cmd btcjson.Cmd,
	res btcjson.Result) error {

	req, err := c.encode(cmd)
	if err != nil {
		return err
	}

	raw, err := c.Send(ctx, req)
	if err != nil {
		return err
	}
	if res == nil {
		return nil
	}

	return btcjson.Parse(raw, res)
}

// RawRequest allows the caller to send a raw or custom request to the server.
// This method may be used to send and receive requests and responses for
// requests that are not handled by this client package, or to proxy partially
// unmarshaled requests to another JSON-RPC server if a request cannot be
// handled directly.
func (c *Client) RawRequest(ctx context.Context, method string,
	params []json.RawMessage) (json.RawMessage, error) {

	// Method may not be empty.
	if method == "" {
		return nil, fmt.Errorf("%w: no method", ErrInvalidParam)
	}

	path := "/"
	if c.wallet != "" {
		path = "/wallet/" + url.PathEscape(c.wallet)
	}
	req, err := btcjson.NewRequest(method, params, path)
	if err != nil {
		return nil, err
	}

	return c.Send(ctx, req)
}
