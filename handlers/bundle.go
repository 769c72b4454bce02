package handlers

// HandlerBundle aggregates every HTTP handler so route registration can
// receive a single dependency.
type HandlerBundle struct {
	Auth         *AuthHandler
	Availability *AvailabilityHandler
	Grid         *GridHandler
	Room         *RoomHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
}
