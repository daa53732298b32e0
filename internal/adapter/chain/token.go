// Package chain implements the token distribution contract client over an
// Ethereum JSON-RPC endpoint. It exposes the narrow surface the reward core
// needs: supply and balance reads, a signed transfer from the distributor
// wallet, and the Transfer-event history used to recompute what has already
// been distributed.
package chain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/journalmind/journalmind-backend/internal/config"
)

// erc20ABI is the fragment of the ERC-20 interface the client uses.
const erc20ABI = `[
  {"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"constant":false,"inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"stateMutability":"nonpayable","type":"function"},
  {"anonymous":false,"inputs":[{"indexed":true,"name":"from","type":"address"},{"indexed":true,"name":"to","type":"address"},{"indexed":false,"name":"value","type":"uint256"}],"name":"Transfer","type":"event"}
]`

// receiptPollInterval is how often Transfer polls for the mined receipt.
const receiptPollInterval = 2 * time.Second

// DistributionHistory aggregates every Transfer the distributor wallet has
// ever sent through the token contract. It is recomputed from chain logs on
// each call, never cached, so external transfers are always accounted for.
type DistributionHistory struct {
	TotalDistributed *big.Int
	Recipients       map[common.Address]*big.Int
}

// UniqueRecipientCount returns the number of distinct reward recipients.
func (h *DistributionHistory) UniqueRecipientCount() int {
	return len(h.Recipients)
}

// TokenClient talks to the reward token contract.
type TokenClient struct {
	eth             *ethclient.Client
	abi             abi.ABI
	token           common.Address
	distributor     common.Address
	key             *ecdsa.PrivateKey
	chainID         *big.Int
	deployBlock     uint64
	callTimeout     time.Duration
	transferTimeout time.Duration
	log             *slog.Logger
}

// NewTokenClient dials the RPC endpoint and derives the distributor address
// from the configured signing key.
func NewTokenClient(ctx context.Context, cfg config.ChainConfig, logger *slog.Logger) (*TokenClient, error) {
	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("chain: dial %s: %w", cfg.RPCURL, err)
	}

	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, fmt.Errorf("chain: parse erc20 abi: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.DistributorKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("chain: parse distributor key: %w", err)
	}

	return &TokenClient{
		eth:             eth,
		abi:             parsed,
		token:           common.HexToAddress(cfg.TokenAddress),
		distributor:     crypto.PubkeyToAddress(key.PublicKey),
		key:             key,
		chainID:         big.NewInt(cfg.ChainID),
		deployBlock:     cfg.DeployBlock,
		callTimeout:     cfg.CallTimeout,
		transferTimeout: cfg.TransferTimeout,
		log:             logger.With("adapter", "chain"),
	}, nil
}

// Distributor returns the reward-pool wallet address.
func (c *TokenClient) Distributor() common.Address { return c.distributor }

// Close releases the underlying RPC connection.
func (c *TokenClient) Close() { c.eth.Close() }

// BalanceOf reads the token balance of an address.
func (c *TokenClient) BalanceOf(ctx context.Context, addr common.Address) (*big.Int, error) {
	var out *big.Int
	if err := c.call(ctx, &out, "balanceOf", addr); err != nil {
		return nil, fmt.Errorf("chain: balanceOf %s: %w", addr, err)
	}
	return out, nil
}

// DistributorBalance reads the distributor wallet's token balance.
func (c *TokenClient) DistributorBalance(ctx context.Context) (*big.Int, error) {
	return c.BalanceOf(ctx, c.distributor)
}

// TotalSupply reads the token's total supply.
func (c *TokenClient) TotalSupply(ctx context.Context) (*big.Int, error) {
	var out *big.Int
	if err := c.call(ctx, &out, "totalSupply"); err != nil {
		return nil, fmt.Errorf("chain: totalSupply: %w", err)
	}
	return out, nil
}

// Transfer sends amount from the distributor wallet to the recipient and
// waits for the transaction to be mined. A mined-but-reverted transaction
// is an error. Once the transaction is broadcast it cannot be cancelled;
// only the wait can time out.
func (c *TokenClient) Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	data, err := c.abi.Pack("transfer", to, amount)
	if err != nil {
		return common.Hash{}, fmt.Errorf("chain: pack transfer: %w", err)
	}

	nonce, err := c.eth.PendingNonceAt(ctx, c.distributor)
	if err != nil {
		return common.Hash{}, fmt.Errorf("chain: pending nonce: %w", err)
	}

	gasPrice, err := c.eth.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("chain: suggest gas price: %w", err)
	}

	gasLimit, err := c.eth.EstimateGas(ctx, ethereum.CallMsg{
		From: c.distributor,
		To:   &c.token,
		Data: data,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("chain: estimate gas: %w", err)
	}

	tx := types.NewTransaction(nonce, c.token, big.NewInt(0), gasLimit, gasPrice, data)
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(c.chainID), c.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("chain: sign transaction: %w", err)
	}

	if err := c.eth.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("chain: send transaction: %w", err)
	}

	c.log.InfoContext(ctx, "transfer broadcast",
		slog.String("tx", signed.Hash().Hex()),
		slog.String("to", to.Hex()),
		slog.String("amount", amount.String()),
	)

	if err := c.waitMined(ctx, signed.Hash()); err != nil {
		return signed.Hash(), err
	}
	return signed.Hash(), nil
}

// DistributionHistory scans Transfer events sent by the distributor and
// aggregates per-recipient totals.
func (c *TokenClient) DistributionHistory(ctx context.Context) (*DistributionHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	transferID := c.abi.Events["Transfer"].ID
	fromTopic := common.BytesToHash(common.LeftPadBytes(c.distributor.Bytes(), 32))

	logs, err := c.eth.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(c.deployBlock),
		Addresses: []common.Address{c.token},
		Topics:    [][]common.Hash{{transferID}, {fromTopic}},
	})
	if err != nil {
		return nil, fmt.Errorf("chain: filter transfer logs: %w", err)
	}

	return aggregateTransfers(logs), nil
}

// aggregateTransfers folds Transfer logs into per-recipient totals.
// Topics: [eventID, from, to]; the amount sits in the data segment.
func aggregateTransfers(logs []types.Log) *DistributionHistory {
	h := &DistributionHistory{
		TotalDistributed: new(big.Int),
		Recipients:       make(map[common.Address]*big.Int),
	}

	for _, l := range logs {
		if len(l.Topics) < 3 {
			continue
		}
		to := common.BytesToAddress(l.Topics[2].Bytes())
		amount := new(big.Int).SetBytes(l.Data)

		h.TotalDistributed.Add(h.TotalDistributed, amount)
		if prev, ok := h.Recipients[to]; ok {
			prev.Add(prev, amount)
		} else {
			h.Recipients[to] = new(big.Int).Set(amount)
		}
	}

	return h
}

// call executes a read-only contract call and unpacks the single result.
func (c *TokenClient) call(ctx context.Context, out *(*big.Int), method string, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	data, err := c.abi.Pack(method, args...)
	if err != nil {
		return fmt.Errorf("pack %s: %w", method, err)
	}

	raw, err := c.eth.CallContract(ctx, ethereum.CallMsg{To: &c.token, Data: data}, nil)
	if err != nil {
		return err
	}

	results, err := c.abi.Unpack(method, raw)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(results) != 1 {
		return fmt.Errorf("unpack %s: %d results", method, len(results))
	}

	value, ok := results[0].(*big.Int)
	if !ok {
		return fmt.Errorf("unpack %s: unexpected type %T", method, results[0])
	}

	*out = value
	return nil
}

// waitMined polls for the transaction receipt until it lands or the
// transfer timeout elapses.
func (c *TokenClient) waitMined(ctx context.Context, txHash common.Hash) error {
	ctx, cancel := context.WithTimeout(ctx, c.transferTimeout)
	defer cancel()

	ticker := time.NewTicker(receiptPollInterval)
	defer ticker.Stop()

	for {
		receipt, err := c.eth.TransactionReceipt(ctx, txHash)
		if err == nil {
			if receipt.Status != types.ReceiptStatusSuccessful {
				return fmt.Errorf("chain: transaction %s reverted", txHash.Hex())
			}
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("chain: wait for %s: %w", txHash.Hex(), ctx.Err())
		case <-ticker.C:
		}
	}
}
