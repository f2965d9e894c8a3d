package constants

// NSQ topics
const (
	// Booking lifecycle
	TopicBookingRequested = "booking.requested"
	TopicBookingApproved  = "booking.approved"
	TopicBookingRejected  = "booking.rejected"

	// Trip lifecycle
	TopicTripStatus = "trip.status_changed"

	// Rating ledger
	TopicRatingSubmitted = "rating.submitted"
)

// NSQ channels
const (
	ChannelNotifications = "notifications"
)
