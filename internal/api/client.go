package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"consentdash/internal/jsonutil"
)

// DefaultTransactionLimit is used when callers pass a non-positive limit.
const DefaultTransactionLimit = 50

const defaultMaxTries = 3

// Client talks to the consent ledger backend. GETs retry transient failures
// with exponential backoff; mutations are sent exactly once.
type Client struct {
	baseURL  string
	http     *http.Client
	tracer   oteltrace.Tracer
	maxTries uint
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTracer sets the tracer used for per-request spans.
func WithTracer(t oteltrace.Tracer) Option {
	return func(c *Client) { c.tracer = t }
}

// WithMaxTries sets the retry budget for GET requests.
func WithMaxTries(n uint) Option {
	return func(c *Client) { c.maxTries = n }
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{Timeout: 15 * time.Second},
		tracer:   noop.NewTracerProvider().Tracer("consentdash/api"),
		maxTries: defaultMaxTries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetConsents lists consents, optionally filtered by patient and status.
// Backend ordering is preserved; the UI does not resort.
func (c *Client) GetConsents(ctx context.Context, patientID, status string) ([]Consent, error) {
	q := url.Values{}
	if patientID != "" {
		q.Set("patientId", patientID)
	}
	if status != "" {
		q.Set("status", status)
	}
	var env struct {
		Consents []Consent `json:"consents"`
	}
	if err := c.getJSON(ctx, "/consents", q, &env); err != nil {
		return nil, err
	}
	return env.Consents, nil
}

// CreateConsent submits a signed consent. Never retried.
func (c *Client) CreateConsent(ctx context.Context, req CreateConsentRequest) (*Consent, error) {
	var created Consent
	if err := c.sendJSON(ctx, http.MethodPost, "/consents", req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateConsentStatus transitions a consent to a new status. Never retried.
func (c *Client) UpdateConsentStatus(ctx context.Context, id, status string) (*Consent, error) {
	path := "/consents/" + url.PathEscape(id)
	body := map[string]string{"status": status}
	var updated Consent
	if err := c.sendJSON(ctx, http.MethodPatch, path, body, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// GetPatients fetches one roster page matching the search term.
func (c *Client) GetPatients(ctx context.Context, page, pageSize int, search string) (*PatientPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(pageSize))
	if search != "" {
		q.Set("search", search)
	}
	var pp PatientPage
	if err := c.getJSON(ctx, "/patients", q, &pp); err != nil {
		return nil, err
	}
	return &pp, nil
}

// GetPatient fetches a single patient by backend id.
func (c *Client) GetPatient(ctx context.Context, id string) (*Patient, error) {
	var p Patient
	if err := c.getJSON(ctx, "/patients/"+url.PathEscape(id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetPatientRecords fetches the medical records owned by a patient.
func (c *Client) GetPatientRecords(ctx context.Context, id string) ([]MedicalRecord, error) {
	var env struct {
		Records []MedicalRecord `json:"records"`
	}
	path := "/patients/" + url.PathEscape(id) + "/records"
	if err := c.getJSON(ctx, path, nil, &env); err != nil {
		return nil, err
	}
	return env.Records, nil
}

// GetTransactions lists ledger transactions, optionally scoped to a wallet.
func (c *Client) GetTransactions(ctx context.Context, walletAddress string, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = DefaultTransactionLimit
	}
	q := url.Values{}
	if walletAddress != "" {
		q.Set("walletAddress", walletAddress)
	}
	q.Set("limit", strconv.Itoa(limit))
	var env struct {
		Transactions []Transaction `json:"transactions"`
	}
	if err := c.getJSON(ctx, "/transactions", q, &env); err != nil {
		return nil, err
	}
	return env.Transactions, nil
}

// GetStats fetches the aggregate platform snapshot.
func (c *Client) GetStats(ctx context.Context) (*PlatformStats, error) {
	var stats PlatformStats
	if err := c.getJSON(ctx, "/stats", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// getJSON performs a traced GET with retry on transient failures.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v interface{}) error {
	op := "GET " + path
	ctx, span := c.tracer.Start(ctx, op, oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer span.End()

	operation := func() (struct{}, error) {
		err := c.do(ctx, http.MethodGet, path, query, nil, v)
		var fe *FetchError
		if errors.As(err, &fe) && !fe.Retryable() {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}
	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(c.maxTries),
	)
	finishSpan(span, op, err)
	return err
}

// sendJSON performs a traced mutation (POST/PATCH) with no retry: the
// backend anchors these on chain, so a duplicate send is worse than a
// surfaced failure.
func (c *Client) sendJSON(ctx context.Context, method, path string, body, v interface{}) error {
	op := method + " " + path
	ctx, span := c.tracer.Start(ctx, op, oteltrace.WithSpanKind(oteltrace.SpanKindClient))
	defer span.End()

	err := c.do(ctx, method, path, nil, body, v)
	finishSpan(span, op, err)
	return err
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, v interface{}) error {
	op := method + " " + path
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &FetchError{Op: op, Err: err}
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &FetchError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return &FetchError{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	if v == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := jsonutil.DecodeWithContext(resp.Body, v, op); err != nil {
		return &FetchError{Op: op, Err: err}
	}
	return nil
}

func finishSpan(span oteltrace.Span, op string, err error) {
	if err == nil {
		span.SetStatus(codes.Ok, "")
		return
	}
	var fe *FetchError
	if errors.As(err, &fe) && fe.StatusCode != 0 {
		span.SetAttributes(attribute.Int("http.status_code", fe.StatusCode))
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, op)
}
