package domain

// Launchpad event types published to JetStream when the sync observes a
// state transition. Best-effort: consumers must tolerate missed events and
// re-read the store.
const (
	// EventSaleCompleted fires once when a collection's sale flips to completed
	EventSaleCompleted = "sale_completed"
	// EventNFTRevealed fires after a reveal transaction lands and the item is recorded
	EventNFTRevealed = "nft_revealed"
	// EventCollectionDiscovered fires when the registry reports a collection the store has never seen
	EventCollectionDiscovered = "collection_discovered"
)

// LaunchpadEvent is the JSON payload published for collection state transitions
type LaunchpadEvent struct {
	EventType    string `json:"event_type"`
	CollectionID string `json:"collection_id"`
	NFTTokenID   string `json:"nft_token_id,omitempty"`
	OwnerAddress string `json:"owner_address,omitempty"`
	Timestamp    int64  `json:"timestamp"`
}
