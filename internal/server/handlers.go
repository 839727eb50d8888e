package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/awesomegic/gicbank/internal/bank"
	"github.com/awesomegic/gicbank/internal/caldate"
	"github.com/awesomegic/gicbank/internal/interest"
	"github.com/awesomegic/gicbank/internal/ledger"
	"github.com/awesomegic/gicbank/internal/statement"
)

type handlers struct {
	svc *bank.Service
}

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// CreateTransactionRequest represents the body of POST /api/v1/transactions.
type CreateTransactionRequest struct {
	Account string `json:"account"`
	Date    string `json:"date"`
	Type    string `json:"type"`
	Amount  string `json:"amount"`
}

// TransactionsResponse carries the account's full updated history.
type TransactionsResponse struct {
	Account      string               `json:"account"`
	Transactions []ledger.Transaction `json:"transactions"`
}

// CreateTransaction handles POST /api/v1/transactions.
func (h *handlers) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if req.Account == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing account")
		return
	}

	date, err := caldate.Parse(req.Date)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Date should be a valid YYYYMMDD date")
		return
	}

	kind := ledger.Kind(req.Type)
	if kind != ledger.Deposit && kind != ledger.Withdrawal {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Type should be D or W")
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() || amount.Exponent() < -2 {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Amount should be positive with at most 2 decimal places")
		return
	}

	txns, err := h.svc.InputTransaction(req.Account, date, kind, amount)
	if err != nil {
		observe("transaction", "rejected")
		writeJSONError(w, http.StatusConflict, "invalid_transaction", err.Error())
		return
	}
	observe("transaction", "ok")

	writeJSON(w, http.StatusCreated, TransactionsResponse{Account: req.Account, Transactions: txns})
}

// DefineRuleRequest represents the body of POST /api/v1/rules.
type DefineRuleRequest struct {
	Date   string `json:"date"`
	RuleID string `json:"rule_id"`
	Rate   string `json:"rate"`
}

// RulesResponse carries the full rule timeline.
type RulesResponse struct {
	Rules []interest.Rule `json:"rules"`
}

// DefineRule handles POST /api/v1/rules.
func (h *handlers) DefineRule(w http.ResponseWriter, r *http.Request) {
	var req DefineRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_request", "Failed to parse request body")
		return
	}
	if req.RuleID == "" {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Missing rule_id")
		return
	}

	date, err := caldate.Parse(req.Date)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Date should be a valid YYYYMMDD date")
		return
	}

	rate, err := decimal.NewFromString(req.Rate)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Rate should be numeric")
		return
	}

	rules, err := h.svc.DefineRule(date, req.RuleID, rate)
	if err != nil {
		observe("rule", "rejected")
		status := http.StatusConflict
		if errors.Is(err, interest.ErrRateOutOfRange) {
			status = http.StatusBadRequest
		}
		writeJSONError(w, status, "invalid_rule", err.Error())
		return
	}
	observe("rule", "ok")

	writeJSON(w, http.StatusCreated, RulesResponse{Rules: rules})
}

// GetStatement handles GET /api/v1/accounts/{account}/statements/{yearMonth}.
func (h *handlers) GetStatement(w http.ResponseWriter, r *http.Request) {
	account := chi.URLParam(r, "account")

	year, month, err := caldate.ParseYearMonth(chi.URLParam(r, "yearMonth"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid_parameter", "Statement month should be a valid YYYYMM month")
		return
	}

	st, err := h.svc.Statement(account, year, month)
	if err != nil {
		observe("statement", "rejected")
		status := http.StatusConflict
		if errors.Is(err, statement.ErrUnknownAccount) {
			status = http.StatusNotFound
		}
		writeJSONError(w, status, "invalid_statement_request", err.Error())
		return
	}
	observe("statement", "ok")

	writeJSON(w, http.StatusOK, st)
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeJSONError writes a JSON error response.
func writeJSONError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, ErrorResponse{Error: code, ErrorDescription: description})
}
