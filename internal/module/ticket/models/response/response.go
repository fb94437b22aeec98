package response

type PurchaseReceipt struct {
	PurchaseID  string `json:"purchase_id"`
	AccountID   int64  `json:"account_id"`
	TotalAmount int    `json:"total_amount"`
	TotalSeats  int    `json:"total_seats"`
}
