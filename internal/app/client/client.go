package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"orderprocessor/internal/app/client/config"
	"orderprocessor/internal/domain/order"
)

// App is the HTTP client behind the opctl commands. The session token
// is kept in a file under the config directory between invocations.
type App struct {
	client  *http.Client
	config  *config.Config
	log     *slog.Logger
	baseURL string
	token   string
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	app := &App{
		client:  client,
		config:  cfg,
		log:     log,
		baseURL: scheme + cfg.ServerAddress,
	}

	if data, err := os.ReadFile(cfg.TokenPath); err == nil {
		app.token = strings.TrimSpace(string(data))
	}

	return app, nil
}

type registerResponse struct {
	ID     int    `json:"user_id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

type loginResponse struct {
	Token  string `json:"token"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

type orderResponse struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
	Error  string `json:"error"`
}

type findOrderResponse struct {
	Status string       `json:"status"`
	Order  *order.Order `json:"order"`
}

type readyResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}

// HealthCheck probes the liveness endpoint.
func (a *App) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return nil
}

// ReadyCheck probes the readiness endpoint and returns the per-dependency report.
func (a *App) ReadyCheck(ctx context.Context) (string, string, string, error) {
	resp, err := a.doRequest(ctx, http.MethodGet, "/health/ready", nil)
	if err != nil {
		return "", "", "", err
	}

	var ready readyResponse
	if err := a.parseResponse(resp, &ready); err != nil {
		return "", "", "", err
	}

	return ready.Status, ready.Database, ready.Cache, nil
}

func (a *App) Register(ctx context.Context, login, email, password string) (int, error) {
	body := map[string]string{"login": login, "email": email, "password": password}

	resp, err := a.doRequest(ctx, http.MethodPost, "/user/register", body)
	if err != nil {
		return 0, err
	}

	var reg registerResponse
	if err := a.parseResponse(resp, &reg); err != nil {
		return 0, err
	}

	if reg.Status != "Ok" {
		return 0, fmt.Errorf("registration failed: %s", reg.Error)
	}

	return reg.ID, nil
}

// Login authenticates and persists the session token for later commands.
func (a *App) Login(ctx context.Context, login, password string) error {
	body := map[string]string{"login": login, "password": password}

	resp, err := a.doRequest(ctx, http.MethodPost, "/user/login", body)
	if err != nil {
		return err
	}

	var lr loginResponse
	if err := a.parseResponse(resp, &lr); err != nil {
		return err
	}

	if lr.Status != "Ok" || lr.Token == "" {
		return fmt.Errorf("login failed: %s", lr.Error)
	}

	a.token = lr.Token
	if err := os.WriteFile(a.config.TokenPath, []byte(lr.Token), 0600); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	return nil
}

func (a *App) CreateOrder(ctx context.Context, product string, amount float64) (int, error) {
	body := map[string]any{"product": product, "amount": amount}

	resp, err := a.doRequest(ctx, http.MethodPost, "/api/orders", body)
	if err != nil {
		return 0, err
	}

	var or orderResponse
	if err := a.parseResponse(resp, &or); err != nil {
		return 0, err
	}

	return or.ID, nil
}

func (a *App) ListOrders(ctx context.Context) (order.ListResponse, error) {
	resp, err := a.doRequest(ctx, http.MethodGet, "/api/orders", nil)
	if err != nil {
		return order.ListResponse{}, err
	}

	var list order.ListResponse
	if err := a.parseResponse(resp, &list); err != nil {
		return order.ListResponse{}, err
	}

	return list, nil
}

func (a *App) GetOrder(ctx context.Context, id int) (*order.Order, error) {
	resp, err := a.doRequest(ctx, http.MethodGet, "/api/orders/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var found findOrderResponse
	if err := a.parseResponse(resp, &found); err != nil {
		return nil, err
	}

	return found.Order, nil
}

func (a *App) UpdateOrderStatus(ctx context.Context, id int, status order.Status) (*order.Order, error) {
	body := map[string]string{"status": string(status)}

	resp, err := a.doRequest(ctx, http.MethodPatch, "/api/orders/"+strconv.Itoa(id)+"/status", body)
	if err != nil {
		return nil, err
	}

	var found findOrderResponse
	if err := a.parseResponse(resp, &found); err != nil {
		return nil, err
	}

	return found.Order, nil
}

func (a *App) DeleteOrder(ctx context.Context, id int) error {
	resp, err := a.doRequest(ctx, http.MethodDelete, "/api/orders/"+strconv.Itoa(id), nil)
	if err != nil {
		return err
	}

	return a.parseResponse(resp, nil)
}

func (a *App) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

func (a *App) parseResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("unauthorized, run 'opctl auth login' first")
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return apiError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// apiError extracts a readable message from a huma problem document.
func apiError(status int, data []byte) error {
	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(data, &problem); err == nil && problem.Detail != "" {
		return fmt.Errorf("server error (%d): %s", status, problem.Detail)
	}

	return fmt.Errorf("server returned status %d", status)
}
