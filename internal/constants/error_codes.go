package constants

const (
	ErrCodeAccountLocked        = "ACCOUNT_LOCKED"
	ErrCodeAccountNotFound      = "ACCOUNT_NOT_FOUND"
	ErrCodeInsufficientBalance  = "INSUFFICIENT_BALANCE"
	ErrCodeDuplicateTransaction = "DUPLICATE_TRANSACTION"
	ErrCodeTransactionNotFound  = "TRANSACTION_NOT_FOUND"
	ErrCodeClientMismatch       = "CLIENT_MISMATCH"
	ErrCodeAlreadyDisputed      = "ALREADY_DISPUTED"
	ErrCodeNotUnderDispute      = "NOT_UNDER_DISPUTE"
	ErrCodeInvalidRecord        = "INVALID_RECORD"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

const (
	ErrMsgAccountLocked        = "account is locked"
	ErrMsgAccountNotFound      = "account not found"
	ErrMsgInsufficientBalance  = "insufficient balance"
	ErrMsgDuplicateTransaction = "transaction id already used"
	ErrMsgTransactionNotFound  = "referenced transaction not found"
	ErrMsgClientMismatch       = "transaction belongs to another client"
	ErrMsgAlreadyDisputed      = "transaction is not open for dispute"
	ErrMsgNotUnderDispute      = "transaction is not under dispute"
	ErrMsgInvalidRecord        = "invalid transaction record"
	ErrMsgInternalError        = "internal error"
)

var errorMessages = map[string]string{
	ErrCodeAccountLocked:        ErrMsgAccountLocked,
	ErrCodeAccountNotFound:      ErrMsgAccountNotFound,
	ErrCodeInsufficientBalance:  ErrMsgInsufficientBalance,
	ErrCodeDuplicateTransaction: ErrMsgDuplicateTransaction,
	ErrCodeTransactionNotFound:  ErrMsgTransactionNotFound,
	ErrCodeClientMismatch:       ErrMsgClientMismatch,
	ErrCodeAlreadyDisputed:      ErrMsgAlreadyDisputed,
	ErrCodeNotUnderDispute:      ErrMsgNotUnderDispute,
	ErrCodeInvalidRecord:        ErrMsgInvalidRecord,
	ErrCodeInternalError:        ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRecord:
		return 400
	case ErrCodeAccountNotFound, ErrCodeTransactionNotFound:
		return 404
	case ErrCodeAccountLocked, ErrCodeInsufficientBalance, ErrCodeDuplicateTransaction,
		ErrCodeClientMismatch, ErrCodeAlreadyDisputed, ErrCodeNotUnderDispute:
		return 409
	default:
		return 500
	}
}
