package custody

import "errors"

type SuccessHandler interface {
	OnSuccess(walletID string, asset Asset)
}

type WalletNotFoundHandler interface {
	OnWalletNotFound(walletID string)
}

type AssetNotHeldHandler interface {
	OnAssetNotHeld(walletID string, asset Asset)
}

type DefaultErrorHandler interface {
	OnError(err error)
}

// DispatchResult hands the outcome of a trade to the most specific handler
// implemented by the given value. Errors without a specific handler go to
// DefaultErrorHandler, if implemented. Other outcomes are ignored.
func DispatchResult(
	err error,
	walletID string,
	asset Asset,
	handler interface{},
) {
	if err == nil {
		if h, ok := handler.(SuccessHandler); ok {
			h.OnSuccess(walletID, asset)
		}
		return
	}

	switch {
	case errors.Is(err, ErrWalletNotFound):
		if h, ok := handler.(WalletNotFoundHandler); ok {
			h.OnWalletNotFound(walletID)
			return
		}
	case errors.Is(err, ErrAssetNotHeld):
		if h, ok := handler.(AssetNotHeldHandler); ok {
			h.OnAssetNotHeld(walletID, asset)
			return
		}
	}

	if h, ok := handler.(DefaultErrorHandler); ok {
		h.OnError(err)
	}
}
