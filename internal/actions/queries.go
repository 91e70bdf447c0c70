package actions

import (
	"context"
	"fmt"

	"github.com/movemint/launchpad-sync/internal/domain"
	"github.com/movemint/launchpad-sync/internal/store/schema"
)

// MintStageDTO is the read-side shape of a mint stage
type MintStageDTO struct {
	Name             string  `json:"name"`
	MintFee          uint64  `json:"mint_fee"`
	StartTime        uint64  `json:"start_time"`
	EndTime          uint64  `json:"end_time"`
	StageType        int32   `json:"stage_type"`
	MintLimitPerAddr *uint64 `json:"mint_limit_per_addr,omitempty"`
}

// CollectionDTO is the read-side shape of a cached collection
type CollectionDTO struct {
	CollectionID        string            `json:"collection_id"`
	CollectionName      string            `json:"collection_name"`
	Description         string            `json:"description"`
	URI                 string            `json:"uri"`
	PlaceholderURI      string            `json:"placeholder_uri"`
	CreatorAddress      string            `json:"creator_address"`
	MaxSupply           uint64            `json:"max_supply"`
	CurrentSupply       uint64            `json:"current_supply"`
	OwnerCount          *uint64           `json:"owner_count,omitempty"`
	MintEnabled         bool              `json:"mint_enabled"`
	SaleDeadline        uint64            `json:"sale_deadline"`
	SaleCompleted       bool              `json:"sale_completed"`
	SaleStatus          domain.SaleStatus `json:"sale_status"`
	TotalFundsCollected uint64            `json:"total_funds_collected"`
	FASymbol            string            `json:"fa_symbol"`
	FAName              string            `json:"fa_name"`
	MintStages          []MintStageDTO    `json:"mint_stages,omitempty"`
	UpdatedAt           int64             `json:"updated_at"`
}

// ListMintingCollections returns the collections currently open for minting,
// newest first
func (a *Actions) ListMintingCollections(ctx context.Context) ([]CollectionDTO, error) {
	collections, err := a.store.ListMintingCollections(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CollectionDTO, 0, len(collections))
	for i := range collections {
		out = append(out, a.toDTO(&collections[i], nil))
	}
	return out, nil
}

// GetCollection returns one cached collection with its mint stages
func (a *Actions) GetCollection(ctx context.Context, collectionID string) (*CollectionDTO, error) {
	canonical, err := domain.NormalizeAddress(collectionID)
	if err != nil {
		return nil, fmt.Errorf("invalid collection id: %w", err)
	}

	collection, err := a.store.GetCollection(ctx, canonical)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, domain.ErrCollectionNotFound
	}

	stages, err := a.store.GetMintStages(ctx, canonical)
	if err != nil {
		return nil, err
	}

	dto := a.toDTO(collection, stages)
	return &dto, nil
}

func (a *Actions) toDTO(collection *schema.Collection, stages []schema.MintStage) CollectionDTO {
	dto := CollectionDTO{
		CollectionID:        collection.CollectionID,
		CollectionName:      collection.CollectionName,
		Description:         collection.Description,
		URI:                 collection.URI,
		PlaceholderURI:      collection.PlaceholderURI,
		CreatorAddress:      collection.CreatorAddress,
		MaxSupply:           collection.MaxSupply,
		CurrentSupply:       collection.CurrentSupply,
		OwnerCount:          collection.OwnerCount,
		MintEnabled:         collection.MintEnabled,
		SaleDeadline:        collection.SaleDeadline,
		SaleCompleted:       collection.SaleCompleted,
		SaleStatus:          domain.ClassifySale(collection.SaleCompleted, collection.SaleDeadline, a.clock.Now()),
		TotalFundsCollected: collection.TotalFundsCollected,
		FASymbol:            collection.FASymbol,
		FAName:              collection.FAName,
		UpdatedAt:           collection.UpdatedAt.Unix(),
	}
	for _, stage := range stages {
		dto.MintStages = append(dto.MintStages, MintStageDTO{
			Name:             stage.Name,
			MintFee:          stage.MintFee,
			StartTime:        stage.StartTime,
			EndTime:          stage.EndTime,
			StageType:        int32(stage.StageType),
			MintLimitPerAddr: stage.MintLimitPerAddr,
		})
	}
	return dto
}
