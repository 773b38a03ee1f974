package models

import "errors"

var (
	ErrAccountNotFound     = errors.New("account not found")
	ErrDonationNotFound    = errors.New("donation not found")
	ErrDuplicateOrder      = errors.New("order already confirmed")
	ErrInvalidRewardKind   = errors.New("invalid reward kind")
	ErrAmountOutOfRange    = errors.New("amount out of range")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
)
