package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/larriantoniy/sms_miniapp/internal/domain"
	"github.com/larriantoniy/sms_miniapp/internal/ports"
)

// Client реализует ports.BillingAPI поверх HTTP/JSON.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// Error — ошибка, о которой сообщил сам сервер (не-2xx ответ).
// Message пустой, если тело не разобралось или поля error там не было.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: %d", e.Status)
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

type userDataResponse struct {
	BalanceUSDT  decimal.Decimal       `json:"balance_USDT"`
	BalanceTON   decimal.Decimal       `json:"balance_TON"`
	SMSPriceUSDT decimal.Decimal       `json:"sms_price_usdt"`
	SMSPriceTON  decimal.Decimal       `json:"sms_price_ton"`
	Transactions []transactionResponse `json:"transactions"`
}

type transactionResponse struct {
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Timestamp int64           `json:"timestamp"`
}

type smsRequest struct {
	UserID  string   `json:"user_id"`
	Token   string   `json:"token"`
	Numbers []string `json:"numbers"`
	Message string   `json:"message"`
}

// paymentRequest: amount уходит числом, а не строкой, поэтому float64.
type paymentRequest struct {
	UserID   string  `json:"user_id"`
	Token    string  `json:"token"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	TxHash   string  `json:"tx_hash"`
}

type addressResponse struct {
	Address string `json:"address"`
	Network string `json:"network"`
}

// messageResponse — общая форма успешного ответа на POST.
type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (c *Client) UserData(ctx context.Context, s *domain.Session) (*domain.AccountSnapshot, error) {
	var resp userDataResponse
	path := fmt.Sprintf("/user_data/%s/%s", url.PathEscape(s.UserID), url.PathEscape(s.Token))
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	snap := &domain.AccountSnapshot{
		BalanceUSDT:  resp.BalanceUSDT,
		BalanceTON:   resp.BalanceTON,
		SMSPriceUSDT: resp.SMSPriceUSDT,
		SMSPriceTON:  resp.SMSPriceTON,
		Transactions: make([]domain.Transaction, 0, len(resp.Transactions)),
	}
	for _, t := range resp.Transactions {
		snap.Transactions = append(snap.Transactions, domain.Transaction{
			Kind:      domain.TransactionKind(t.Type),
			Amount:    t.Amount,
			Currency:  t.Currency,
			Timestamp: time.UnixMilli(t.Timestamp),
		})
	}
	return snap, nil
}

func (c *Client) SubmitSMS(ctx context.Context, s *domain.Session, numbers []string, message string) (string, error) {
	var resp messageResponse
	err := c.post(ctx, "/submit_sms_request", smsRequest{
		UserID:  s.UserID,
		Token:   s.Token,
		Numbers: numbers,
		Message: message,
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) PaymentAddress(ctx context.Context, currency string) (*ports.DepositInfo, error) {
	var resp addressResponse
	if err := c.get(ctx, "/get_payment_address/"+url.PathEscape(currency), &resp); err != nil {
		return nil, err
	}
	return &ports.DepositInfo{Address: resp.Address, Network: resp.Network}, nil
}

func (c *Client) SubmitPayment(ctx context.Context, s *domain.Session, d domain.DepositDraft) (string, error) {
	var resp messageResponse
	err := c.post(ctx, "/submit_payment", paymentRequest{
		UserID:   s.UserID,
		Token:    s.Token,
		Amount:   d.Amount.InexactFloat64(),
		Currency: d.Currency,
		TxHash:   strings.TrimSpace(d.TxHash),
	}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		var e errorResponse
		if json.Unmarshal(data, &e) == nil {
			apiErr.Message = e.Error
		}
		c.logger.Debug("api error", "method", req.Method, "path", req.URL.Path,
			"status", resp.StatusCode, "error", apiErr.Message)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("unmarshal %s: %w", req.URL.Path, err)
		}
	}
	return nil
}
