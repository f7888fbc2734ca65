// Package chain 查询链上 $ROZI 代币余额，只读，不涉及私钥和签名
package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"Rozi/config"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrNotConfigured  = errors.New("chain rpc not configured")
)

// balanceOf(address) 的函数选择器
var balanceOfSelector = crypto.Keccak256([]byte("balanceOf(address)"))[:4]

// ContractCaller ethclient.Client 满足这个接口
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// Balance 查询结果
type Balance struct {
	Address string
	Raw     *big.Int
	Amount  decimal.Decimal
	Symbol  string
}

func (b Balance) String() string {
	return fmt.Sprintf("%s %s", b.Amount.String(), b.Symbol)
}

// Client ERC-20 余额查询
type Client struct {
	caller   ContractCaller
	token    common.Address
	symbol   string
	decimals int32
	timeout  time.Duration
	cache    *Cache
}

// Dial 连接 JSON-RPC 节点；rdb 不为 nil 时启用余额缓存
func Dial(ctx context.Context, c config.ChainConf, rdb *redis.Client) (*Client, func(), error) {
	if c.RPCURL == "" {
		return nil, func() {}, ErrNotConfigured
	}
	ec, err := ethclient.DialContext(ctx, c.RPCURL)
	if err != nil {
		return nil, func() {}, fmt.Errorf("dial %s: %w", c.RPCURL, err)
	}
	var cache *Cache
	if rdb != nil {
		cache = NewCache(rdb, c.CacheTTL)
	}
	return New(ec, c, cache), ec.Close, nil
}

func New(caller ContractCaller, c config.ChainConf, cache *Cache) *Client {
	return &Client{
		caller:   caller,
		token:    common.HexToAddress(c.TokenContract),
		symbol:   c.Symbol,
		decimals: c.Decimals,
		timeout:  c.Timeout,
		cache:    cache,
	}
}

// BalanceOf 查询地址持有的代币数量
func (c *Client) BalanceOf(ctx context.Context, address string) (Balance, error) {
	if !common.IsHexAddress(address) {
		return Balance{}, fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	holder := common.HexToAddress(address)

	key := fmt.Sprintf("Rozi:balance:%s:%s", c.token.Hex(), holder.Hex())
	raw, err := c.cache.GetOrLoad(ctx, key, func(ctx context.Context) (*big.Int, error) {
		return c.call(ctx, holder)
	})
	if err != nil {
		return Balance{}, err
	}
	return Balance{
		Address: holder.Hex(),
		Raw:     raw,
		Amount:  decimal.NewFromBigInt(raw, -c.decimals),
		Symbol:  c.symbol,
	}, nil
}

func (c *Client) call(ctx context.Context, holder common.Address) (*big.Int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	data := append(append([]byte{}, balanceOfSelector...), common.LeftPadBytes(holder.Bytes(), 32)...)
	out, err := c.caller.CallContract(ctx, ethereum.CallMsg{To: &c.token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("eth_call balanceOf: %w", err)
	}
	if len(out) < 32 {
		return nil, fmt.Errorf("eth_call balanceOf: short result (%d bytes), is %s a token contract?", len(out), c.token.Hex())
	}
	return new(big.Int).SetBytes(out[:32]), nil
}
