package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeMethodNotAllowed     = "method_not_allowed"
	codeNotFound             = "not_found"
	codeInvalidRequestBody   = "invalid_request_body"
	codeInvalidID            = "invalid_id"
	codeProductNameRequired  = "product_name_required"
	codeInvalidPrice         = "invalid_price"
	codeInvalidStock         = "invalid_stock"
	codeInvalidWeight        = "invalid_weight"
	codeExpiryDateRequired   = "expiry_date_required"
	codeProductAlreadyExists = "product_already_exists"
	codeProductNotFound      = "product_not_found"
	codeInvalidQuantity      = "invalid_quantity"
	codeInsufficientStock    = "insufficient_stock"
	codeExpiredProduct       = "expired_product"
	codeEmptyCart            = "empty_cart"
	codeInsufficientBalance  = "insufficient_balance"
	codeForbidden            = "forbidden"
	codeInternalError        = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}
