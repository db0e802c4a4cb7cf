package constant

import (
	"errors"
	"fmt"
)

// 错误类别
const (
	KindInputValidation = "input_validation"
	KindStorage         = "storage"
	KindRateFetch       = "rate_fetch"
	KindInvoiceRelay    = "invoice_relay"
	KindConfiguration   = "configuration"
)

// 面向用户的提示
const (
	MsgEmailRequired     = "Please enter your email."
	MsgMethodRequired    = "Please select a payment method."
	MsgAssetRequired     = "Please select a cryptocurrency."
	MsgCouponRequired    = "Please enter a coupon code."
	MsgCouponInvalid     = "Invalid coupon code."
	MsgPaymentLinkFailed = "Failed to create payment link. Please contact support or try again."
)

// 中继接口错误码
const (
	CodeInvalidAmount = "INVALID_AMOUNT"
	CodeApiError      = "API_ERROR"
	CodeServerError   = "SERVER_ERROR"
	CodeMissingToken  = "CRYPTO_PAY_API_TOKEN is not set"
)

var (
	SlotNotFound          = errors.New("slot: key not found")
	SlotStoreNotReady     = errors.New("slot: store not initialized")
	RateSourceInvalid     = errors.New("rate source returned no usable USDT quote")
	RelayNoRedirectUrl    = errors.New("no URL returned from payment backend")
	RelayBackendNotFound  = errors.New("card payment backend not registered")
	CryptoPayTokenMissing = errors.New(CodeMissingToken)
	InvoiceAmountInvalid  = errors.New(CodeInvalidAmount)
)

// CheckoutError 带类别和用户提示的错误
type CheckoutError struct {
	Kind    string
	Message string
	Err     error
}

func (e *CheckoutError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CheckoutError) Unwrap() error {
	return e.Err
}

func InputValidationError(message string) error {
	return &CheckoutError{Kind: KindInputValidation, Message: message}
}

func InvoiceRelayError(err error) error {
	return &CheckoutError{Kind: KindInvoiceRelay, Message: MsgPaymentLinkFailed, Err: err}
}

func ConfigurationError(err error) error {
	return &CheckoutError{Kind: KindConfiguration, Message: err.Error(), Err: err}
}

func StorageError(key string, err error) error {
	return &CheckoutError{Kind: KindStorage, Message: key, Err: err}
}

func RateFetchError(source string, err error) error {
	return &CheckoutError{Kind: KindRateFetch, Message: source, Err: err}
}

// IsKind 判断错误类别
func IsKind(err error, kind string) bool {
	var ce *CheckoutError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// UserMessage 取出面向用户的提示
func UserMessage(err error) string {
	var ce *CheckoutError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return ""
}

// UpstreamError 支付服务商拒绝或不可达
type UpstreamError struct {
	Reason interface{}
	Raw    interface{}
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream error %v: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("upstream error %v", e.Reason)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
