package usecase

// NewOrderNumber exposes the order-number generator hook to external tests.
var NewOrderNumber = &newOrderNumber
