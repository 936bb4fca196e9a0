package request

import "strings"

// InitPaymentRequest is the checkout-initiation payload. The gateway and the
// storefront both hit this endpoint, one as JSON and one as query params, so
// total_amount arrives as either a number or a string; it is coerced
// downstream.
type InitPaymentRequest struct {
	TranID        string      `json:"tran_id" form:"tran_id"`
	TotalAmount   interface{} `json:"total_amount" form:"total_amount"`
	Currency      string      `json:"currency" form:"currency"`
	CartID        string      `json:"cart_id" form:"cart_id"`
	CustomerName  string      `json:"cus_name" form:"cus_name"`
	CustomerEmail string      `json:"cus_email" form:"cus_email"`
	CustomerPhone string      `json:"cus_phone" form:"cus_phone"`
}

func (r InitPaymentRequest) ResolveTranID() string {
	return strings.TrimSpace(r.TranID)
}

// CompleteOrderRequest is sent by the storefront callback page after a
// successful redirect; either identifier may be missing.
type CompleteOrderRequest struct {
	CartID string `json:"cart_id" form:"cart_id"`
	TranID string `json:"tran_id" form:"tran_id"`
}

// RefundRequest triggers a refund against a settled bank transaction.
type RefundRequest struct {
	BankTranID   string      `json:"bank_tran_id"`
	RefundAmount interface{} `json:"refund_amount"`
	Remarks      string      `json:"refund_remarks"`
}

// IdentifierRequest covers the single-field pass-through endpoints; each
// route reads the one field it requires.
type IdentifierRequest struct {
	ValID       string `json:"val_id"`
	RefundRefID string `json:"refund_ref_id"`
	SessionKey  string `json:"sessionkey"`
	TranID      string `json:"tran_id"`
}
