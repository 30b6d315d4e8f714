package models

import "time"

type BankAccount struct {
	ID            string
	UserID        string
	AccountNumber string
	AccountName   string
	AccountType   string
	Balance       int64
	Currency      string
	CreatedAt     time.Time
}
