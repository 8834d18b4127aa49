// Copyright (c) 2014-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"log"
	"time"

	"github.com/btcsuite/corejson/rpcclient"
)

func main() {
	// Connect to a local regtest node using its cookie file.
	connCfg := &rpcclient.ConnConfig{
		Host:       "127.0.0.1:18443",
		CookiePath: "/home/user/.bitcoin/regtest/.cookie",
		DisableTLS: true, // Bitcoin core does not provide TLS
		Timeout:    30 * time.Second,
	}
	client, err := rpcclient.New(connCfg)
	if err != nil {
		log.Fatal(err)
	}
	defer client.Shutdown()

	ctx := context.Background()

	// Get the current block count.
	blockCount, err := client.GetBlockCount(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Block count: %d", blockCount)

	// Issue both requests before waiting on either of them.
	futureInfo := client.GetBlockChainInfoAsync(ctx)
	futureMempool := client.GetMempoolInfoAsync(ctx)

	info, err := futureInfo.Receive()
	if err != nil {
		log.Fatal(err)
	}
	mempool, err := futureMempool.Receive()
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Chain: %s, mempool size: %d", info.Chain, mempool.Size)

	// Wallet calls go to the loaded wallet named "miner".
	miner, err := client.WithWallet("miner")
	if err != nil {
		log.Fatal(err)
	}
	balance, err := miner.GetBalance(ctx, nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Miner balance: %v", balance)
}
