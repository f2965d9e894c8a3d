package constants

// Redis key formats
const (
	// Match service
	KeyDealerRating = "dealer:rating:%s" // Format: dealer:rating:{dealer_id}, value "sum|count"
)
