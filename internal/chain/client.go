package chain

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
	"github.com/aptos-labs/aptos-go-sdk/crypto"
	"go.uber.org/zap"

	"github.com/movemint/launchpad-sync/internal/domain"
	"github.com/movemint/launchpad-sync/internal/logger"
)

const (
	launchpadModuleName = "nft_launchpad"
	vestingModuleName   = "vesting"
)

// Config holds the chain client settings
type Config struct {
	// RPCURL is the fullnode REST endpoint
	RPCURL string
	// ModuleAddress is the account that published the launchpad and vesting modules
	ModuleAddress string
	// PrivateKey is the ed25519 key of the service account, hex encoded
	PrivateKey string
}

// Client talks to the launchpad and vesting Move modules through the chain's
// fullnode API. It implements Gateway.
type Client struct {
	client        *aptos.Client
	account       *aptos.Account
	moduleAddress aptos.AccountAddress
}

// NewClient creates a chain client bound to the configured module address
// and signing account.
func NewClient(cfg Config) (*Client, error) {
	networkConfig := aptos.NetworkConfig{
		Name:    "movement",
		NodeUrl: cfg.RPCURL,
	}
	aptosClient, err := aptos.NewClient(networkConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create chain client: %w", err)
	}

	moduleAddress := aptos.AccountAddress{}
	if err := moduleAddress.ParseStringRelaxed(cfg.ModuleAddress); err != nil {
		return nil, fmt.Errorf("failed to parse module address: %w", err)
	}

	account, err := accountFromPrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	return &Client{
		client:        aptosClient,
		account:       account,
		moduleAddress: moduleAddress,
	}, nil
}

func accountFromPrivateKey(privateKeyHex string) (*aptos.Account, error) {
	privateKeyBytes, err := hex.DecodeString(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}

	key := crypto.Ed25519PrivateKey{}
	if err := key.FromBytes(privateKeyBytes); err != nil {
		return nil, fmt.Errorf("failed to load ed25519 private key: %w", err)
	}

	account, err := aptos.NewAccountFromSigner(&key)
	if err != nil {
		return nil, fmt.Errorf("failed to create account from private key: %w", err)
	}
	return account, nil
}

// SignerAddress returns the canonical address of the service account
func (c *Client) SignerAddress() string {
	addr := c.account.AccountAddress()
	return addr.String()
}

func parseCollectionAddress(collectionID string) (aptos.AccountAddress, error) {
	addr := aptos.AccountAddress{}
	if err := addr.ParseStringRelaxed(domain.HexAddress(collectionID)); err != nil {
		return addr, fmt.Errorf("failed to parse collection address %q: %w", collectionID, err)
	}
	return addr, nil
}

func (c *Client) view(module, function string, args [][]byte) ([]any, error) {
	vals, err := c.client.View(&aptos.ViewPayload{
		Module: aptos.ModuleId{
			Address: c.moduleAddress,
			Name:    module,
		},
		Function: function,
		ArgTypes: []aptos.TypeTag{},
		Args:     args,
	})
	if err != nil {
		return nil, fmt.Errorf("view %s::%s failed: %w", module, function, err)
	}
	return vals, nil
}

func (c *Client) collectionView(module, function, collectionID string) ([]any, error) {
	addr, err := parseCollectionAddress(collectionID)
	if err != nil {
		return nil, err
	}
	addrBytes, err := bcs.Serialize(&addr)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize collection address: %w", err)
	}
	return c.view(module, function, [][]byte{addrBytes})
}

// GetRegistry returns the canonical addresses of all registered collections
func (c *Client) GetRegistry(ctx context.Context) ([]string, error) {
	vals, err := c.view(launchpadModuleName, "get_registry", nil)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("get_registry returned no values")
	}

	refs, err := decodeViewValue[[]objectRef](vals[0])
	if err != nil {
		return nil, err
	}

	addrs := make([]string, 0, len(*refs))
	for _, ref := range *refs {
		canonical, err := domain.NormalizeAddress(ref.Inner)
		if err != nil {
			return nil, fmt.Errorf("invalid registry entry: %w", err)
		}
		addrs = append(addrs, canonical)
	}
	return addrs, nil
}

// GetCollectionView returns the parsed aggregate collection view
func (c *Client) GetCollectionView(ctx context.Context, collectionID string) (*CollectionView, error) {
	vals, err := c.collectionView(launchpadModuleName, "get_collection_view_item", collectionID)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("get_collection_view_item returned no values")
	}

	wire, err := decodeViewValue[collectionViewWire](vals[0])
	if err != nil {
		return nil, err
	}
	return wire.toView()
}

// GetCollectionCreator returns the canonical creator address
func (c *Client) GetCollectionCreator(ctx context.Context, collectionID string) (string, error) {
	vals, err := c.collectionView(launchpadModuleName, "get_collection_creator_addr", collectionID)
	if err != nil {
		return "", err
	}
	if len(vals) == 0 {
		return "", fmt.Errorf("get_collection_creator_addr returned no values")
	}

	raw, ok := vals[0].(string)
	if !ok {
		return "", fmt.Errorf("unexpected creator address type %T", vals[0])
	}
	return domain.NormalizeAddress(raw)
}

// GetCollectedFunds returns the sale proceeds in the smallest unit
func (c *Client) GetCollectedFunds(ctx context.Context, collectionID string) (uint64, error) {
	return c.u64View("get_collected_funds", collectionID)
}

// GetSaleDeadline returns the sale cutoff in unix seconds
func (c *Client) GetSaleDeadline(ctx context.Context, collectionID string) (uint64, error) {
	return c.u64View("get_sale_deadline", collectionID)
}

func (c *Client) u64View(function, collectionID string) (uint64, error) {
	vals, err := c.collectionView(launchpadModuleName, function, collectionID)
	if err != nil {
		return 0, err
	}
	if len(vals) == 0 {
		return 0, fmt.Errorf("%s returned no values", function)
	}

	raw, ok := vals[0].(string)
	if !ok {
		return 0, fmt.Errorf("unexpected %s result type %T", function, vals[0])
	}
	return parseU64(function, raw)
}

// IsSaleCompleted reports whether the sale has completed on chain
func (c *Client) IsSaleCompleted(ctx context.Context, collectionID string) (bool, error) {
	vals, err := c.collectionView(launchpadModuleName, "is_sale_completed", collectionID)
	if err != nil {
		return false, err
	}
	if len(vals) == 0 {
		return false, fmt.Errorf("is_sale_completed returned no values")
	}

	completed, ok := vals[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected is_sale_completed result type %T", vals[0])
	}
	return completed, nil
}

// GetMintStages returns the collection's stage list. The signer placeholder
// address and an empty reduction list yield the base fees with no discounts
// applied.
func (c *Client) GetMintStages(ctx context.Context, collectionID string) ([]MintStageInfo, error) {
	collectionAddr, err := parseCollectionAddress(collectionID)
	if err != nil {
		return nil, err
	}
	collectionBytes, err := bcs.Serialize(&collectionAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize collection address: %w", err)
	}

	placeholder := aptos.AccountAddress{}
	if err := placeholder.ParseStringRelaxed("0x0"); err != nil {
		return nil, fmt.Errorf("failed to parse placeholder address: %w", err)
	}
	placeholderBytes, err := bcs.Serialize(&placeholder)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize placeholder address: %w", err)
	}

	emptyReductions, err := serializeAddressVector(nil)
	if err != nil {
		return nil, err
	}

	vals, err := c.view(launchpadModuleName, "get_mint_stages_info",
		[][]byte{placeholderBytes, collectionBytes, emptyReductions})
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, fmt.Errorf("get_mint_stages_info returned no values")
	}

	wires, err := decodeViewValue[[]mintStageWire](vals[0])
	if err != nil {
		return nil, err
	}

	stages := make([]MintStageInfo, 0, len(*wires))
	for i := range *wires {
		info, err := (*wires)[i].toStageInfo()
		if err != nil {
			return nil, err
		}
		stages = append(stages, *info)
	}
	return stages, nil
}

// GetHolderVestingConfig returns the holder vesting view, nil before the
// sale completes
func (c *Client) GetHolderVestingConfig(ctx context.Context, collectionID string) (*HolderVestingConfig, error) {
	vals, err := c.collectionView(vestingModuleName, "get_vesting_config", collectionID)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}

	wire, err := decodeViewValue[moveOption[holderVestingWire]](vals[0])
	if err != nil {
		return nil, err
	}
	inner := wire.unwrap()
	if inner == nil {
		return nil, nil
	}
	return inner.toConfig()
}

// GetCreatorVestingConfig returns the creator vesting view, nil before the
// sale completes
func (c *Client) GetCreatorVestingConfig(ctx context.Context, collectionID string) (*CreatorVestingConfig, error) {
	vals, err := c.collectionView(vestingModuleName, "get_creator_vesting_config", collectionID)
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}

	wire, err := decodeViewValue[moveOption[creatorVestingWire]](vals[0])
	if err != nil {
		return nil, err
	}
	inner := wire.unwrap()
	if inner == nil {
		return nil, nil
	}
	return inner.toConfig()
}

// CheckAndCompleteSale submits the sale-completion entry function. The chain
// rejects it when the completion threshold is not met.
func (c *Client) CheckAndCompleteSale(ctx context.Context, collectionID string) (*TxResult, error) {
	addr, err := parseCollectionAddress(collectionID)
	if err != nil {
		return nil, err
	}
	addrBytes, err := bcs.Serialize(&addr)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize collection address: %w", err)
	}

	return c.submitEntry(ctx, "check_and_complete_sale", [][]byte{addrBytes})
}

// RevealNFT submits the reveal entry function binding metadata to a token
func (c *Client) RevealNFT(ctx context.Context, collectionID, nftTokenID, name, description, uri string, traitNames, traitValues []string) (*TxResult, error) {
	collectionAddr, err := parseCollectionAddress(collectionID)
	if err != nil {
		return nil, err
	}
	collectionBytes, err := bcs.Serialize(&collectionAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize collection address: %w", err)
	}

	tokenAddr := aptos.AccountAddress{}
	if err := tokenAddr.ParseStringRelaxed(nftTokenID); err != nil {
		return nil, fmt.Errorf("failed to parse token address %q: %w", nftTokenID, err)
	}
	tokenBytes, err := bcs.Serialize(&tokenAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize token address: %w", err)
	}

	nameBytes, err := serializeString(name)
	if err != nil {
		return nil, err
	}
	descriptionBytes, err := serializeString(description)
	if err != nil {
		return nil, err
	}
	uriBytes, err := serializeString(uri)
	if err != nil {
		return nil, err
	}
	traitNamesBytes, err := serializeStringVector(traitNames)
	if err != nil {
		return nil, err
	}
	traitValuesBytes, err := serializeStringVector(traitValues)
	if err != nil {
		return nil, err
	}

	return c.submitEntry(ctx, "reveal_nft", [][]byte{
		collectionBytes,
		tokenBytes,
		nameBytes,
		descriptionBytes,
		uriBytes,
		traitNamesBytes,
		traitValuesBytes,
	})
}

// UpdateMintEnabled submits the mint-flag toggle entry function
func (c *Client) UpdateMintEnabled(ctx context.Context, collectionID string, enabled bool) (*TxResult, error) {
	addr, err := parseCollectionAddress(collectionID)
	if err != nil {
		return nil, err
	}
	addrBytes, err := bcs.Serialize(&addr)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize collection address: %w", err)
	}
	enabledBytes, err := bcs.SerializeBool(enabled)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize mint flag: %w", err)
	}

	return c.submitEntry(ctx, "update_mint_enabled", [][]byte{addrBytes, enabledBytes})
}

func (c *Client) submitEntry(ctx context.Context, function string, args [][]byte) (*TxResult, error) {
	rawTxn, err := c.client.BuildTransaction(c.account.AccountAddress(), aptos.TransactionPayload{
		Payload: &aptos.EntryFunction{
			Module: aptos.ModuleId{
				Address: c.moduleAddress,
				Name:    launchpadModuleName,
			},
			Function: function,
			ArgTypes: []aptos.TypeTag{},
			Args:     args,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build %s transaction: %w", function, err)
	}

	signedTxn, err := rawTxn.SignedTransaction(c.account)
	if err != nil {
		return nil, fmt.Errorf("failed to sign %s transaction: %w", function, err)
	}

	submitResult, err := c.client.SubmitTransaction(signedTxn)
	if err != nil {
		return nil, fmt.Errorf("failed to submit %s transaction: %w", function, err)
	}

	logger.InfoCtx(ctx, "submitted transaction",
		zap.String("function", function),
		zap.String("hash", submitResult.Hash))

	userTxn, err := c.client.WaitForTransaction(submitResult.Hash)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for %s transaction %s: %w", function, submitResult.Hash, err)
	}
	if !userTxn.Success {
		return nil, fmt.Errorf("%s transaction %s aborted: %s", function, submitResult.Hash, userTxn.VmStatus)
	}

	return &TxResult{Hash: userTxn.Hash, Version: userTxn.Version}, nil
}

func serializeString(s string) ([]byte, error) {
	data, err := bcs.SerializeSingle(func(ser *bcs.Serializer) {
		ser.WriteString(s)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize string argument: %w", err)
	}
	return data, nil
}

func serializeStringVector(items []string) ([]byte, error) {
	data, err := bcs.SerializeSingle(func(ser *bcs.Serializer) {
		ser.Uleb128(uint32(len(items)))
		for _, item := range items {
			ser.WriteString(item)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize string vector argument: %w", err)
	}
	return data, nil
}

func serializeAddressVector(addrs []aptos.AccountAddress) ([]byte, error) {
	data, err := bcs.SerializeSingle(func(ser *bcs.Serializer) {
		ser.Uleb128(uint32(len(addrs)))
		for i := range addrs {
			addrs[i].MarshalBCS(ser)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize address vector argument: %w", err)
	}
	return data, nil
}
