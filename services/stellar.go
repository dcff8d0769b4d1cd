package services

import (
	"errors"
	"net/http"

	"github.com/stellar/go/clients/horizonclient"
	"github.com/stellar/go/keypair"
	"github.com/stellar/go/txnbuild"

	"github.com/stellarpay/stellar-payment-service/config"
	"github.com/stellarpay/stellar-payment-service/models"
)

// transactionTimeout bounds every built transaction to 30 seconds.
const transactionTimeout = 30

// nativeAssetCode is the asset code callers use for the ledger's base
// currency. A payment with this code (or no code) needs no issuer.
const nativeAssetCode = "XLM"

var (
	// ErrIssuerRequired is returned when a non-native asset code is given
	// without an issuer.
	ErrIssuerRequired = errors.New("assetIssuer is required for non-native assets")

	// ErrInvalidPublicKey is returned when an account address fails to parse.
	ErrInvalidPublicKey = errors.New("invalid public key format")
)

// StellarService builds, signs, and submits Stellar transactions. It holds
// no state beyond the Horizon client and network passphrase fixed at startup.
type StellarService struct {
	horizon           horizonclient.ClientInterface
	networkPassphrase string
}

// NewStellarService creates a new StellarService instance
func NewStellarService(cfg config.Config) *StellarService {
	return &StellarService{
		horizon:           cfg.Horizon,
		networkPassphrase: cfg.NetworkPassphrase,
	}
}

// CreateKeypair generates a random keypair. Nothing is stored; the caller
// owns the secret.
func (s *StellarService) CreateKeypair() (*models.KeypairResponse, error) {
	kp, err := keypair.Random()
	if err != nil {
		return nil, errors.New("failed to generate keypair: " + err.Error())
	}

	return &models.KeypairResponse{
		Success:   true,
		PublicKey: kp.Address(),
		SecretKey: kp.Seed(),
	}, nil
}

// CreatePayment builds and signs a single-operation payment transaction and
// returns its base64 envelope. The transaction is not submitted.
func (s *StellarService) CreatePayment(req models.PaymentRequest) (string, error) {
	asset, err := resolveAsset(req.AssetCode, req.AssetIssuer)
	if err != nil {
		return "", err
	}

	sourceKP, err := keypair.ParseFull(req.SourceSecret)
	if err != nil {
		return "", errors.New("invalid source secret key: " + err.Error())
	}

	paymentOp := txnbuild.Payment{
		Destination: req.DestinationAddress,
		Amount:      req.Amount,
		Asset:       asset,
	}

	return s.buildAndSign(sourceKP, &paymentOp)
}

// CreateTrustline builds and signs a change-trust transaction authorizing
// the account to hold the given asset. An empty limit means the ledger
// maximum.
func (s *StellarService) CreateTrustline(req models.TrustlineRequest) (string, error) {
	sourceKP, err := keypair.ParseFull(req.SecretKey)
	if err != nil {
		return "", errors.New("invalid secret key: " + err.Error())
	}

	asset := txnbuild.CreditAsset{Code: req.AssetCode, Issuer: req.AssetIssuer}
	line, err := asset.ToChangeTrustAsset()
	if err != nil {
		return "", errors.New("failed to create trustline asset: " + err.Error())
	}

	limit := req.Limit
	if limit == "" {
		limit = txnbuild.MaxTrustlineLimit
	}

	trustOp := txnbuild.ChangeTrust{
		Line:  line,
		Limit: limit,
	}

	return s.buildAndSign(sourceKP, &trustOp)
}

// SubmitTransaction forwards a signed envelope to Horizon. The envelope is
// decoded first as a shape check, then the original base64 string is sent
// untouched so fee-bump and multi-signature envelopes pass through as-is.
func (s *StellarService) SubmitTransaction(signedXDR string) (*models.SubmitResponse, error) {
	if _, err := txnbuild.TransactionFromXDR(signedXDR); err != nil {
		return nil, errors.New("failed to decode transaction envelope: " + err.Error())
	}

	resp, err := s.horizon.SubmitTransactionXDR(signedXDR)
	if err != nil {
		if herr, ok := err.(*horizonclient.Error); ok {
			return nil, errors.New("transaction submission failed: " + herr.Problem.Detail)
		}
		return nil, errors.New("failed to submit transaction: " + err.Error())
	}

	return &models.SubmitResponse{
		Success:       true,
		TransactionID: resp.ID,
		Ledger:        resp.Ledger,
		Hash:          resp.Hash,
	}, nil
}

// AccountDetails retrieves an account's balances and sequence number. An
// account Horizon has never seen is reported with Exists set to false.
func (s *StellarService) AccountDetails(publicKey string) (*models.AccountDetailsResponse, error) {
	if _, err := keypair.ParseAddress(publicKey); err != nil {
		return nil, ErrInvalidPublicKey
	}

	account, err := s.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: publicKey})
	if err != nil {
		if herr, ok := err.(*horizonclient.Error); ok && herr.Response != nil && herr.Response.StatusCode == http.StatusNotFound {
			return &models.AccountDetailsResponse{
				Success:   true,
				PublicKey: publicKey,
				Exists:    false,
				Balances:  []models.Balance{},
			}, nil
		}
		return nil, errors.New("failed to fetch account details: " + err.Error())
	}

	balances := make([]models.Balance, 0, len(account.Balances))
	for _, b := range account.Balances {
		balances = append(balances, models.Balance{
			AssetType: b.Type,
			AssetCode: b.Code,
			Issuer:    b.Issuer,
			Balance:   b.Balance,
		})
	}

	return &models.AccountDetailsResponse{
		Success:        true,
		PublicKey:      publicKey,
		Exists:         true,
		Balances:       balances,
		SequenceNumber: account.Sequence,
	}, nil
}

// buildAndSign fetches the source account's current state, builds a
// transaction with the fixed base fee and timeout, and signs it with the
// source keypair.
func (s *StellarService) buildAndSign(source *keypair.Full, ops ...txnbuild.Operation) (string, error) {
	sourceAccount, err := s.horizon.AccountDetail(horizonclient.AccountRequest{AccountID: source.Address()})
	if err != nil {
		return "", errors.New("failed to fetch source account details: " + err.Error())
	}

	tx, err := txnbuild.NewTransaction(
		txnbuild.TransactionParams{
			SourceAccount:        &sourceAccount,
			Operations:           ops,
			BaseFee:              txnbuild.MinBaseFee,
			Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(transactionTimeout)},
			IncrementSequenceNum: true,
		},
	)
	if err != nil {
		return "", errors.New("failed to build transaction: " + err.Error())
	}

	tx, err = tx.Sign(s.networkPassphrase, source)
	if err != nil {
		return "", errors.New("failed to sign transaction: " + err.Error())
	}

	signedXDR, err := tx.Base64()
	if err != nil {
		return "", errors.New("failed to encode transaction: " + err.Error())
	}

	return signedXDR, nil
}

// resolveAsset maps an asset code and issuer to an SDK asset. An empty code
// or the native code selects the base currency; any supplied issuer is
// ignored in that case.
func resolveAsset(code, issuer string) (txnbuild.Asset, error) {
	if code == "" || code == nativeAssetCode {
		return txnbuild.NativeAsset{}, nil
	}
	if issuer == "" {
		return nil, ErrIssuerRequired
	}
	return txnbuild.CreditAsset{Code: code, Issuer: issuer}, nil
}
