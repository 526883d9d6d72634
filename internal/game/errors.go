package game

import "errors"

var (
	// ErrInvalidPromotion is returned when the chosen kind is not a rook,
	// bishop, knight or queen. The promotion stays pending.
	ErrInvalidPromotion = errors.New("invalid promotion piece")
	// ErrNoPromotionPending is returned by ChoosePromotion when no pawn is
	// waiting to be promoted.
	ErrNoPromotionPending = errors.New("no promotion pending")
)
