// Copyright (c) 2017 The Namecoin developers
// Copyright (c) 2019 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpcclient

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"
)

// cookieCheckInterval is how long a cookie is used before the modification
// time of the file is looked at again.
const cookieCheckInterval = 30 * time.Second

// errMalformedCookie is returned for a cookie file without a colon.
var errMalformedCookie = errors.New("malformed cookie file")

// readCookieFile reads the "user:password" line the node writes to its
// .cookie file.
func readCookieFile(path string) (username, password string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return
	}

	s := strings.TrimSpace(string(b))
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		err = errMalformedCookie
		return
	}

	username, password = parts[0], parts[1]
	return
}

// cookieRetriever returns a function that reads the cookie file at path.  The
// file is re-read only when its modification time changed, and its
// modification time is looked at no more than once per cookieCheckInterval.
// The returned function is safe for concurrent use.
func cookieRetriever(path string) func() (username, password string, err error) {
	return newCookieCache(path, time.Now).retrieve
}

// cookieCache holds the last credentials read from a cookie file.
type cookieCache struct {
	path string
	now  func() time.Time

	mtx           sync.Mutex
	lastCheckTime time.Time
	lastModTime   time.Time
	username      string
	password      string
	err           error
}

func newCookieCache(path string, now func() time.Time) *cookieCache {
	return &cookieCache{path: path, now: now}
}

func (c *cookieCache) retrieve() (username, password string, err error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.update()
	return c.username, c.password, c.err
}

func (c *cookieCache) update() {
	now := c.now()
	if !c.lastCheckTime.IsZero() &&
		now.Before(c.lastCheckTime.Add(cookieCheckInterval)) {

		return
	}
	c.lastCheckTime = now

	st, err := os.Stat(c.path)
	if err != nil {
		c.err = err
		return
	}

	modTime := st.ModTime()
	if !modTime.Equal(c.lastModTime) || c.err != nil {
		c.lastModTime = modTime
		c.username, c.password, c.err = readCookieFile(c.path)
		if c.err == nil {
			log.Debugf("Read RPC cookie from %s", c.path)
		}
	}
}
