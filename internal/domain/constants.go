package domain

// Default configuration values
const (
	DefaultSlotStepMinutes = 60
)

// Значения для пакетных бронирований
const (
	PackageServiceID = "package"
	PackageUserID    = "package-admin"
	AnonymousUserID  = "anonymous"
)
