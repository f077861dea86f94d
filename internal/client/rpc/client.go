package rpc

import (
	"context"
	"math/big"
	"net/url"
	"time"

	httpclient "gas-estimator/internal/client/http"
	"gas-estimator/internal/estimator"
	"gas-estimator/internal/logger"

	"github.com/ethereum/go-ethereum/common/hexutil"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const estimateGasMethod = "eth_estimateGas"

// Config holds the connection settings for the upstream node
type Config struct {
	URL                 string
	Timeout             time.Duration
	KeepAlive           time.Duration
	MaxIdleConnsPerHost int
	MaxRetries          int
	Metrics             httpclient.MetricsCollector
}

// Client is a JSON-RPC client for gas simulation. One Client is shared by
// all requests for the life of the process.
type Client struct {
	rpc     *gethrpc.Client
	timeout time.Duration
	host    string
	logger  *zap.Logger
}

var _ estimator.Simulator = (*Client)(nil)

// NewClient dials the node at cfg.URL over a pooled HTTP client
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("RPC URL is required")
	}

	parsed, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse RPC URL")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = httpclient.DefaultTimeout
	}

	options := []httpclient.ClientOption{
		httpclient.WithTimeout(timeout),
		httpclient.WithMetricsCollector(cfg.Metrics),
		httpclient.WithMiddleware(httpclient.LoggingMiddleware()),
	}
	if cfg.KeepAlive > 0 {
		options = append(options, httpclient.WithKeepAlive(cfg.KeepAlive))
	}
	if cfg.MaxIdleConnsPerHost > 0 {
		options = append(options, httpclient.WithMaxIdleConnsPerHost(cfg.MaxIdleConnsPerHost))
	}
	if cfg.MaxRetries > 0 {
		retryConfig := httpclient.DefaultRetryConfig()
		retryConfig.MaxRetries = cfg.MaxRetries
		retryConfig.MaxElapsedTime = timeout
		options = append(options, httpclient.WithRetryConfig(retryConfig))
	}

	httpClient := httpclient.NewHTTPClient(options...).StandardClient()

	rpcClient, err := gethrpc.DialOptions(ctx, cfg.URL, gethrpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial RPC endpoint")
	}

	return &Client{
		rpc:     rpcClient,
		timeout: timeout,
		host:    parsed.Host,
		logger:  logger.Log,
	}, nil
}

// EstimateGas forwards req to eth_estimateGas against the latest state
func (c *Client) EstimateGas(ctx context.Context, req *estimator.CallRequest) (*uint256.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()

	var result hexutil.Big
	if err := c.rpc.CallContext(ctx, &result, estimateGasMethod, ToCallArgs(req)); err != nil {
		c.logger.Debug("eth_estimateGas failed",
			zap.String("host", c.host),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, errors.Wrap(err, estimateGasMethod)
	}

	gas, overflow := uint256.FromBig((*big.Int)(&result))
	if overflow || (*big.Int)(&result).Sign() < 0 {
		return nil, errors.Errorf("%s returned out-of-range quantity %s", estimateGasMethod, result.String())
	}

	c.logger.Debug("eth_estimateGas succeeded",
		zap.String("host", c.host),
		zap.String("gas", gas.Dec()),
		zap.Duration("duration", time.Since(start)),
	)

	return gas, nil
}

// Close releases the underlying connections
func (c *Client) Close() {
	c.rpc.Close()
}

// ToCallArgs renders req as the call object accepted by eth_estimateGas.
// Absent fields are omitted so the node applies its own defaults.
func ToCallArgs(req *estimator.CallRequest) map[string]interface{} {
	arg := map[string]interface{}{}
	if req.From != nil {
		arg["from"] = req.From
	}
	if req.To != nil {
		arg["to"] = req.To
	}
	if req.Value != nil {
		arg["value"] = (*hexutil.Big)(req.Value.ToBig())
	}
	if req.Data != nil {
		arg["data"] = req.Data
	}
	if req.Type != nil {
		arg["type"] = hexutil.Uint64(*req.Type)
	}
	if req.Gas != nil {
		arg["gas"] = hexutil.Uint64(*req.Gas)
	}
	if req.GasPrice != nil {
		arg["gasPrice"] = (*hexutil.Big)(req.GasPrice.ToBig())
	}
	if req.MaxFeePerGas != nil {
		arg["maxFeePerGas"] = (*hexutil.Big)(req.MaxFeePerGas.ToBig())
	}
	if req.MaxPriorityFeePerGas != nil {
		arg["maxPriorityFeePerGas"] = (*hexutil.Big)(req.MaxPriorityFeePerGas.ToBig())
	}
	return arg
}
