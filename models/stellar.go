package models

// KeypairResponse represents the API response for keypair generation
type KeypairResponse struct {
	Success   bool   `json:"success"`
	PublicKey string `json:"publicKey"`
	SecretKey string `json:"secretKey"`
}

// PaymentRequest represents the request body for the create-payment endpoint.
// AssetCode and AssetIssuer are optional: an empty or "XLM" code means the
// native asset, any other code requires an issuer.
type PaymentRequest struct {
	SourceSecret       string `json:"sourceSecret"`
	DestinationAddress string `json:"destinationAddress"`
	Amount             string `json:"amount"`
	AssetCode          string `json:"assetCode"`
	AssetIssuer        string `json:"assetIssuer"`
}

// TrustlineRequest represents the request body for the create-trustline
// endpoint. Limit is optional; the ledger maximum is used when omitted.
type TrustlineRequest struct {
	SecretKey   string `json:"secretKey"`
	AssetCode   string `json:"assetCode"`
	AssetIssuer string `json:"assetIssuer"`
	Limit       string `json:"limit"`
}

// SignedTransactionResponse carries a signed, base64-encoded transaction
// envelope ready for submission.
type SignedTransactionResponse struct {
	Success   bool   `json:"success"`
	SignedXDR string `json:"signedXDR"`
}

// SubmitRequest represents the request body for the submit-transaction endpoint
type SubmitRequest struct {
	SignedXDR string `json:"signedXDR"`
}

// SubmitResponse represents Horizon's acknowledgment of a submitted transaction
type SubmitResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
	Ledger        int32  `json:"ledger"`
	Hash          string `json:"hash"`
}

// Balance is a single asset balance held by an account
type Balance struct {
	AssetType string `json:"assetType"`
	AssetCode string `json:"assetCode,omitempty"`
	Issuer    string `json:"issuer,omitempty"`
	Balance   string `json:"balance"`
}

// AccountDetailsResponse represents the API response for the account endpoint.
// Exists is false when the account has not been created on the ledger.
type AccountDetailsResponse struct {
	Success        bool      `json:"success"`
	PublicKey      string    `json:"publicKey"`
	Exists         bool      `json:"exists"`
	Balances       []Balance `json:"balances"`
	SequenceNumber int64     `json:"sequenceNumber"`
}

// ErrorResponse is the uniform error body for 4xx/5xx responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
