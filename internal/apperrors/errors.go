package apperrors

import "errors"

// ErrValidation indicates input data that failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrProductNotFound indicates the referenced product does not exist for the
// requesting account.
var ErrProductNotFound = errors.New("product not found")

// ErrInvalidQuantity indicates a movement quantity that is not a positive integer.
var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

// ErrInsufficientStock indicates a sale quantity exceeding the current stock.
var ErrInsufficientStock = errors.New("insufficient stock remaining")

// ErrTransactionNotFound indicates the referenced movement record does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// ErrInvalidCredentials indicates a failed phone/password match.
var ErrInvalidCredentials = errors.New("invalid phone number or password")

// ErrPhoneTaken indicates an account already registered with the phone number.
var ErrPhoneTaken = errors.New("an account with this phone number already exists")

// ErrAccountNotFound indicates the referenced account does not exist.
var ErrAccountNotFound = errors.New("account not found")
