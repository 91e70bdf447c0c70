package chain

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/movemint/launchpad-sync/internal/domain"
)

// moveOption is the Move Option<T> wire encoding: a single-element-or-empty
// list under "vec". It never leaks past this package.
type moveOption[T any] struct {
	Vec []T `json:"vec"`
}

func (o moveOption[T]) unwrap() *T {
	if len(o.Vec) == 0 {
		return nil
	}
	return &o.Vec[0]
}

// objectRef is the wire encoding of an on-chain object handle
type objectRef struct {
	Inner string `json:"inner"`
}

// collectionViewWire mirrors the aggregate struct returned by
// get_collection_view_item. Unsigned integers arrive as decimal strings.
type collectionViewWire struct {
	CollectionName      string `json:"collection_name"`
	Description         string `json:"description"`
	URI                 string `json:"uri"`
	PlaceholderURI      string `json:"placeholder_uri"`
	MaxSupply           string `json:"max_supply"`
	CurrentSupply       string `json:"current_supply"`
	SaleDeadline        string `json:"sale_deadline"`
	SaleCompleted       bool   `json:"sale_completed"`
	MintEnabled         bool   `json:"mint_enabled"`
	TotalFundsCollected string `json:"total_funds_collected"`

	RoyaltyAddress    moveOption[string] `json:"royalty_addr"`
	RoyaltyPercentage moveOption[string] `json:"royalty_percentage"`

	FASymbol     string `json:"fa_symbol"`
	FAName       string `json:"fa_name"`
	FAIconURI    string `json:"fa_icon_uri"`
	FAProjectURI string `json:"fa_project_uri"`

	DevWalletAddress moveOption[string]             `json:"dev_wallet_addr"`
	FADistribution   moveOption[faDistributionWire] `json:"fa_distribution"`

	VestingCliff           moveOption[string] `json:"vesting_cliff"`
	VestingDuration        moveOption[string] `json:"vesting_duration"`
	CreatorVestingCliff    moveOption[string] `json:"creator_vesting_cliff"`
	CreatorVestingDuration moveOption[string] `json:"creator_vesting_duration"`

	RefundNFTsBurned  moveOption[string] `json:"refund_nfts_burned"`
	RefundTotalAmount moveOption[string] `json:"refund_total_amount"`
}

// faDistributionWire mirrors the fungible-asset distribution struct.
// Amounts are u128 decimal strings.
type faDistributionWire struct {
	FAMetadata           objectRef `json:"fa_metadata"`
	TotalMinted          string    `json:"total_minted"`
	LpAmount             string    `json:"lp_amount"`
	VestingAmount        string    `json:"vesting_amount"`
	DevWalletAmount      string    `json:"dev_wallet_amount"`
	CreatorVestingAmount string    `json:"creator_vesting_amount"`
}

// mintStageWire mirrors one element of the get_mint_stages_info result
type mintStageWire struct {
	Name             string             `json:"name"`
	MintFee          string             `json:"mint_fee"`
	StartTime        string             `json:"start_time"`
	EndTime          string             `json:"end_time"`
	StageType        int                `json:"stage_type"`
	MintLimitPerAddr moveOption[string] `json:"mint_limit_per_addr"`
}

// holderVestingWire mirrors the vesting program's holder config struct
type holderVestingWire struct {
	StartTime    string `json:"start_time"`
	TotalPool    string `json:"total_pool"`
	AmountPerNFT string `json:"amount_per_nft"`
}

// creatorVestingWire mirrors the vesting program's creator config struct
type creatorVestingWire struct {
	WalletAddress string `json:"wallet_addr"`
	StartTime     string `json:"start_time"`
	TotalPool     string `json:"total_pool"`
}

// decodeViewValue converts one element of a view result (decoded by the SDK
// into generic JSON shapes) into a typed wire struct.
func decodeViewValue[T any](raw any) (*T, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to re-encode view value: %w", err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to decode view value: %w", err)
	}
	return &out, nil
}

func parseU64(field, s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q as u64: %w", field, s, err)
	}
	return v, nil
}

// parseU128 parses a u128 decimal string into a float64. Values beyond the
// float64 integer range lose precision; the cached amounts are advisory.
func parseU128(field, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s %q as u128: %w", field, s, err)
	}
	return v, nil
}

func parseOptionalU64(field string, o moveOption[string]) (*uint64, error) {
	s := o.unwrap()
	if s == nil {
		return nil, nil
	}
	v, err := parseU64(field, *s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func parseOptionalU128(field string, o moveOption[string]) (*float64, error) {
	s := o.unwrap()
	if s == nil {
		return nil, nil
	}
	v, err := parseU128(field, *s)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (w *collectionViewWire) toView() (*CollectionView, error) {
	view := &CollectionView{
		CollectionName: w.CollectionName,
		Description:    w.Description,
		URI:            w.URI,
		PlaceholderURI: w.PlaceholderURI,
		SaleCompleted:  w.SaleCompleted,
		MintEnabled:    w.MintEnabled,
		FASymbol:       w.FASymbol,
		FAName:         w.FAName,
		FAIconURI:      w.FAIconURI,
		FAProjectURI:   w.FAProjectURI,
	}

	var err error
	if view.MaxSupply, err = parseU64("max_supply", w.MaxSupply); err != nil {
		return nil, err
	}
	if view.CurrentSupply, err = parseU64("current_supply", w.CurrentSupply); err != nil {
		return nil, err
	}
	if view.SaleDeadline, err = parseU64("sale_deadline", w.SaleDeadline); err != nil {
		return nil, err
	}
	if view.TotalFundsCollected, err = parseU64("total_funds_collected", w.TotalFundsCollected); err != nil {
		return nil, err
	}

	if addr := w.RoyaltyAddress.unwrap(); addr != nil {
		normalized, err := domain.NormalizeAddress(*addr)
		if err != nil {
			return nil, fmt.Errorf("invalid royalty_addr: %w", err)
		}
		view.RoyaltyAddress = &normalized
	}
	if pct := w.RoyaltyPercentage.unwrap(); pct != nil {
		v, err := parseU64("royalty_percentage", *pct)
		if err != nil {
			return nil, err
		}
		f := float64(v)
		view.RoyaltyPercentage = &f
	}
	if addr := w.DevWalletAddress.unwrap(); addr != nil {
		normalized, err := domain.NormalizeAddress(*addr)
		if err != nil {
			return nil, fmt.Errorf("invalid dev_wallet_addr: %w", err)
		}
		view.DevWalletAddress = &normalized
	}

	if dist := w.FADistribution.unwrap(); dist != nil {
		parsed, err := dist.toDistribution()
		if err != nil {
			return nil, err
		}
		view.FADistribution = parsed
	}

	if view.VestingCliff, err = parseOptionalU64("vesting_cliff", w.VestingCliff); err != nil {
		return nil, err
	}
	if view.VestingDuration, err = parseOptionalU64("vesting_duration", w.VestingDuration); err != nil {
		return nil, err
	}
	if view.CreatorVestingCliff, err = parseOptionalU64("creator_vesting_cliff", w.CreatorVestingCliff); err != nil {
		return nil, err
	}
	if view.CreatorVestingDuration, err = parseOptionalU64("creator_vesting_duration", w.CreatorVestingDuration); err != nil {
		return nil, err
	}

	if view.RefundNFTsBurned, err = parseOptionalU64("refund_nfts_burned", w.RefundNFTsBurned); err != nil {
		return nil, err
	}
	if view.RefundTotalAmount, err = parseOptionalU128("refund_total_amount", w.RefundTotalAmount); err != nil {
		return nil, err
	}

	return view, nil
}

func (w *faDistributionWire) toDistribution() (*FADistribution, error) {
	metadataAddr, err := domain.NormalizeAddress(w.FAMetadata.Inner)
	if err != nil {
		return nil, fmt.Errorf("invalid fa_metadata address: %w", err)
	}

	dist := &FADistribution{MetadataAddress: metadataAddr}
	if dist.TotalMinted, err = parseU128("total_minted", w.TotalMinted); err != nil {
		return nil, err
	}
	if dist.LpAmount, err = parseU128("lp_amount", w.LpAmount); err != nil {
		return nil, err
	}
	if dist.VestingAmount, err = parseU128("vesting_amount", w.VestingAmount); err != nil {
		return nil, err
	}
	if dist.DevWalletAmount, err = parseU128("dev_wallet_amount", w.DevWalletAmount); err != nil {
		return nil, err
	}
	if dist.CreatorVestingAmount, err = parseU128("creator_vesting_amount", w.CreatorVestingAmount); err != nil {
		return nil, err
	}
	return dist, nil
}

func (w *mintStageWire) toStageInfo() (*MintStageInfo, error) {
	info := &MintStageInfo{
		Name:      w.Name,
		StageType: domain.StageType(w.StageType),
	}

	var err error
	if info.MintFee, err = parseU64("mint_fee", w.MintFee); err != nil {
		return nil, err
	}
	if info.StartTime, err = parseU64("start_time", w.StartTime); err != nil {
		return nil, err
	}
	if info.EndTime, err = parseU64("end_time", w.EndTime); err != nil {
		return nil, err
	}
	if info.MintLimitPerAddr, err = parseOptionalU64("mint_limit_per_addr", w.MintLimitPerAddr); err != nil {
		return nil, err
	}
	return info, nil
}

func (w *holderVestingWire) toConfig() (*HolderVestingConfig, error) {
	cfg := &HolderVestingConfig{}

	var err error
	if cfg.StartTime, err = parseU64("start_time", w.StartTime); err != nil {
		return nil, err
	}
	if cfg.TotalPool, err = parseU128("total_pool", w.TotalPool); err != nil {
		return nil, err
	}
	if cfg.AmountPerNFT, err = parseU128("amount_per_nft", w.AmountPerNFT); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (w *creatorVestingWire) toConfig() (*CreatorVestingConfig, error) {
	wallet, err := domain.NormalizeAddress(w.WalletAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid creator vesting wallet_addr: %w", err)
	}

	cfg := &CreatorVestingConfig{WalletAddress: wallet}
	if cfg.StartTime, err = parseU64("start_time", w.StartTime); err != nil {
		return nil, err
	}
	if cfg.TotalPool, err = parseU128("total_pool", w.TotalPool); err != nil {
		return nil, err
	}
	return cfg, nil
}
