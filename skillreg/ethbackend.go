// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

package skillreg

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/skillmesh/skillmarket-core/logger"
	"github.com/skillmesh/skillmarket-core/skillerr"
	"github.com/skillmesh/skillmarket-core/wallet"
)

// registryABI is the call surface of the deployed SkillRegistry
// contract. The getSkill return is a single dynamic tuple and the
// event signatures must match the contract's declarations exactly,
// otherwise return data will not decode and log topics will never
// match.
const registryABI = `[
  {"type":"function","name":"mintSkill","stateMutability":"nonpayable","inputs":[{"name":"skillName","type":"string"},{"name":"metadataURI","type":"string"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"transferSkill","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"tokenId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"listSkillForSale","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"},{"name":"price","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"buySkill","stateMutability":"payable","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"removeFromSale","stateMutability":"nonpayable","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"getSkillsForSale","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256[]"}]},
  {"type":"function","name":"getUserSkills","stateMutability":"view","inputs":[{"name":"user","type":"address"}],"outputs":[{"name":"","type":"uint256[]"}]},
  {"type":"function","name":"getAllSkills","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256[]"}]},
  {"type":"function","name":"getSkill","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"tuple","components":[{"name":"tokenId","type":"uint256"},{"name":"skillName","type":"string"},{"name":"creator","type":"address"},{"name":"price","type":"uint256"},{"name":"isForSale","type":"bool"},{"name":"createdAt","type":"uint256"}]}]},
  {"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
  {"type":"event","name":"SkillMinted","inputs":[{"name":"tokenId","type":"uint256","indexed":true},{"name":"skillName","type":"string","indexed":false},{"name":"creator","type":"address","indexed":true},{"name":"metadataURI","type":"string","indexed":false}]},
  {"type":"event","name":"SkillTransferred","inputs":[{"name":"tokenId","type":"uint256","indexed":true},{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true}]},
  {"type":"event","name":"SkillListedForSale","inputs":[{"name":"tokenId","type":"uint256","indexed":true},{"name":"price","type":"uint256","indexed":false}]},
  {"type":"event","name":"SkillSold","inputs":[{"name":"tokenId","type":"uint256","indexed":true},{"name":"seller","type":"address","indexed":true},{"name":"buyer","type":"address","indexed":true},{"name":"price","type":"uint256","indexed":false}]},
  {"type":"event","name":"SkillRemovedFromSale","inputs":[{"name":"tokenId","type":"uint256","indexed":true}]}
]`

const defaultReceiptPollInterval = 2 * time.Second

// EthBackend implements Backend against a SkillRegistry contract
// reachable through a go-ethereum JSON-RPC client. Mutations are
// submitted as legacy transactions signed by the caller's wallet
// signer and block until a receipt is available. There is no
// application-level confirmation timeout, the context bounds the
// wait.
type EthBackend struct {
	client       *ethclient.Client
	contract     abi.ABI
	address      common.Address
	chainID      *big.Int
	pollInterval time.Duration
}

var _ Backend = (*EthBackend)(nil)

// EthBackendOption configures an EthBackend.
type EthBackendOption func(*EthBackend)

// WithReceiptPollInterval overrides how often the backend polls for a
// transaction receipt while waiting for confirmation.
func WithReceiptPollInterval(interval time.Duration) EthBackendOption {
	return func(b *EthBackend) {
		b.pollInterval = interval
	}
}

// NewEthBackend binds to the registry contract at registryAddress.
// The chain id is read once here and reused for every signature.
func NewEthBackend(ctx context.Context, client *ethclient.Client, registryAddress string, opts ...EthBackendOption) (*EthBackend, error) {
	if !common.IsHexAddress(registryAddress) {
		return nil, skillerr.Newf(skillerr.KindConfig, "invalid registry address %q", registryAddress)
	}
	parsed, err := abi.JSON(strings.NewReader(registryABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse registry ABI: %w", err)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, skillerr.WithKind(fmt.Errorf("failed to read chain id: %w", err), skillerr.KindNetwork)
	}
	b := &EthBackend{
		client:       client,
		contract:     parsed,
		address:      common.HexToAddress(registryAddress),
		chainID:      chainID,
		pollInterval: defaultReceiptPollInterval,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// MintSkill mints a new skill and recovers its token id from the
// SkillMinted event in the confirmed receipt.
func (b *EthBackend) MintSkill(ctx context.Context, signer wallet.Signer, skillName, metadataURI string) (uint64, error) {
	receipt, err := b.transact(ctx, signer, nil, "mintSkill", skillName, metadataURI)
	if err != nil {
		return 0, err
	}
	mintedTopic := b.contract.Events["SkillMinted"].ID
	for _, log := range receipt.Logs {
		if log.Address != b.address || len(log.Topics) < 2 || log.Topics[0] != mintedTopic {
			continue
		}
		return new(big.Int).SetBytes(log.Topics[1].Bytes()).Uint64(), nil
	}
	return 0, skillerr.New("mint confirmed but no SkillMinted event found in receipt", skillerr.KindNetwork)
}

func (b *EthBackend) ListSkillForSale(ctx context.Context, signer wallet.Signer, tokenID uint64, priceWei *big.Int) error {
	_, err := b.transact(ctx, signer, nil, "listSkillForSale", tokenVal(tokenID), priceWei)
	return err
}

func (b *EthBackend) BuySkill(ctx context.Context, signer wallet.Signer, tokenID uint64, paymentWei *big.Int) error {
	_, err := b.transact(ctx, signer, paymentWei, "buySkill", tokenVal(tokenID))
	return err
}

func (b *EthBackend) RemoveFromSale(ctx context.Context, signer wallet.Signer, tokenID uint64) error {
	_, err := b.transact(ctx, signer, nil, "removeFromSale", tokenVal(tokenID))
	return err
}

func (b *EthBackend) SkillsForSale(ctx context.Context) ([]uint64, error) {
	return b.idList(ctx, "getSkillsForSale")
}

func (b *EthBackend) UserSkills(ctx context.Context, owner string) ([]uint64, error) {
	return b.idList(ctx, "getUserSkills", common.HexToAddress(owner))
}

func (b *EthBackend) AllSkills(ctx context.Context) ([]uint64, error) {
	return b.idList(ctx, "getAllSkills")
}

func (b *EthBackend) Skill(ctx context.Context, tokenID uint64) (RawSkill, error) {
	out, err := b.call(ctx, "getSkill", tokenVal(tokenID))
	if err != nil {
		return RawSkill{}, err
	}
	return decodeSkill(out)
}

// registrySkill mirrors the contract's Skill tuple field for field so
// the decoded anonymous struct can be converted onto it.
type registrySkill struct {
	TokenId   *big.Int
	SkillName string
	Creator   common.Address
	Price     *big.Int
	IsForSale bool
	CreatedAt *big.Int
}

// decodeSkill converts the unpacked getSkill tuple into a RawSkill.
func decodeSkill(out []any) (RawSkill, error) {
	if len(out) != 1 {
		return RawSkill{}, skillerr.Newf(skillerr.KindNetwork, "getSkill returned %d values, want 1", len(out))
	}
	rec := *abi.ConvertType(out[0], new(registrySkill)).(*registrySkill)
	return RawSkill{
		TokenID:   rec.TokenId.Uint64(),
		Name:      rec.SkillName,
		Creator:   rec.Creator.Hex(),
		PriceWei:  rec.Price,
		IsForSale: rec.IsForSale,
		CreatedAt: rec.CreatedAt.Int64(),
	}, nil
}

func (b *EthBackend) OwnerOf(ctx context.Context, tokenID uint64) (string, error) {
	out, err := b.call(ctx, "ownerOf", tokenVal(tokenID))
	if err != nil {
		return "", err
	}
	return out[0].(common.Address).Hex(), nil
}

func (b *EthBackend) TokenURI(ctx context.Context, tokenID uint64) (string, error) {
	out, err := b.call(ctx, "tokenURI", tokenVal(tokenID))
	if err != nil {
		return "", err
	}
	return out[0].(string), nil
}

// tokenVal widens a token id to the uint256 representation the ABI
// encoder expects.
func tokenVal(tokenID uint64) *big.Int {
	return new(big.Int).SetUint64(tokenID)
}

func (b *EthBackend) idList(ctx context.Context, method string, args ...any) ([]uint64, error) {
	out, err := b.call(ctx, method, args...)
	if err != nil {
		return nil, err
	}
	raw := out[0].([]*big.Int)
	ids := make([]uint64, 0, len(raw))
	for _, id := range raw {
		ids = append(ids, id.Uint64())
	}
	return ids, nil
}

// call executes a read-only contract method and unpacks its outputs.
func (b *EthBackend) call(ctx context.Context, method string, args ...any) ([]any, error) {
	data, err := b.contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s call: %w", method, err)
	}
	msg := ethereum.CallMsg{To: &b.address, Data: data}
	output, err := b.client.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, mapChainError(err)
	}
	out, err := b.contract.Unpack(method, output)
	if err != nil {
		return nil, skillerr.WithKind(fmt.Errorf("failed to decode %s result: %w", method, err), skillerr.KindNetwork)
	}
	return out, nil
}

// transact signs, submits, and confirms one mutating call, returning
// the successful receipt. Gas estimation doubles as a pre-flight
// execution check, so most reverts surface here with a reason before
// anything is broadcast.
func (b *EthBackend) transact(ctx context.Context, signer wallet.Signer, value *big.Int, method string, args ...any) (*types.Receipt, error) {
	data, err := b.contract.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s call: %w", method, err)
	}
	from := common.HexToAddress(signer.Address())

	nonce, err := b.client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, mapChainError(err)
	}
	gasPrice, err := b.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, mapChainError(err)
	}
	gas, err := b.client.EstimateGas(ctx, ethereum.CallMsg{
		From:  from,
		To:    &b.address,
		Value: value,
		Data:  data,
	})
	if err != nil {
		return nil, mapChainError(err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		GasPrice: gasPrice,
		Gas:      gas,
		To:       &b.address,
		Value:    value,
		Data:     data,
	})
	signed, err := signer.SignTx(tx, b.chainID)
	if err != nil {
		return nil, err
	}
	if err := b.client.SendTransaction(ctx, signed); err != nil {
		return nil, mapChainError(err)
	}

	receipt, err := b.waitMined(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, skillerr.Reverted("")
	}
	return receipt, nil
}

// waitMined polls for the transaction receipt until it exists or the
// context ends. Transient lookup failures are logged and retried.
func (b *EthBackend) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := b.client.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			logger.Warnw("receipt lookup failed, retrying", "tx", txHash.Hex(), "error", err)
		}
		select {
		case <-ctx.Done():
			return nil, skillerr.WithKind(fmt.Errorf("gave up waiting for transaction %s: %w", txHash.Hex(), ctx.Err()), skillerr.KindNetwork)
		case <-ticker.C:
		}
	}
}

// mapChainError folds node and execution failures into the error
// taxonomy. Revert reasons are preserved verbatim when the node
// supplies them, either as structured error data or embedded in the
// message text.
func mapChainError(err error) error {
	if reason, reverted := revertReason(err); reverted {
		return skillerr.Reverted(reason)
	}
	return skillerr.WithKind(err, skillerr.KindNetwork)
}

func revertReason(err error) (string, bool) {
	var dataErr interface{ ErrorData() interface{} }
	if errors.As(err, &dataErr) {
		if encoded, ok := dataErr.ErrorData().(string); ok {
			if reason, uerr := abi.UnpackRevert(common.FromHex(encoded)); uerr == nil {
				return reason, true
			}
		}
	}
	msg := err.Error()
	if !strings.Contains(msg, "execution reverted") {
		return "", false
	}
	if _, after, found := strings.Cut(msg, "execution reverted: "); found {
		return after, true
	}
	return "", true
}
