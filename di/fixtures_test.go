package di_test

import "github.com/sghaida/wirebox/di"

// Fixture services wired by the tests. BasketService and PaymentService
// reference each other through accessors, the shape the resolver exists to
// support.

type DB struct {
	DSN string
}

type Logger struct {
	Level string
}

type BasketService struct {
	DB      *DB
	Payment di.Accessor[*PaymentService]
}

type PaymentService struct {
	Logger *Logger
	Basket di.Accessor[*BasketService]
}
