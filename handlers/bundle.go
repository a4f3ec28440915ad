package handlers

import (
	userRepo "tutorlink/database/repository/user"
)

// HandlerBundle groups every handler the router needs so route
// registration takes one argument. UserRepo rides along for the auth
// middleware's token-hash fallback lookups.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth         *AuthHandler
	User         *UserHandler
	Tutor        *TutorHandler
	Availability *AvailabilityHandler
	Booking      *BookingHandler
	Session      *SessionHandler
	Student      *StudentHandler
	Admin        *AdminHandler
}
