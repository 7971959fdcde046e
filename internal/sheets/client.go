package sheets

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	tokenURL      = "https://oauth2.googleapis.com/token"
	sheetsScope   = "https://www.googleapis.com/auth/spreadsheets"
)

// Client is the Google Sheets implementation of Grid. It authenticates as a
// service account and caches the access token until shortly before expiry.
type Client struct {
	spreadsheetID string
	email         string
	privateKey    *rsa.PrivateKey

	tokenCache  string
	tokenExpire time.Time
	mu          sync.RWMutex
	httpClient  *http.Client
}

// NewClient builds a Sheets client for one spreadsheet. privateKeyPEM is the
// service account key in PKCS#8 PEM form.
func NewClient(spreadsheetID, email, privateKeyPEM string) (*Client, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privateKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	return &Client{
		spreadsheetID: spreadsheetID,
		email:         email,
		privateKey:    key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// accessToken returns a valid bearer token, exchanging a signed service
// account assertion when the cached one is stale. Double-checked locking so
// concurrent callers refresh once; tokens are renewed 60s early.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.RLock()
	if c.tokenCache != "" && time.Now().Before(c.tokenExpire) {
		token := c.tokenCache
		c.mu.RUnlock()
		return token, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.tokenCache != "" && time.Now().Before(c.tokenExpire) {
		return c.tokenCache, nil
	}

	now := time.Now()
	assertion := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":   c.email,
		"scope": sheetsScope,
		"aud":   tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	signed, err := assertion.SignedString(c.privateKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token assertion: %w", err)
	}

	form := url.Values{}
	form.Set("grant_type", "urn:ietf:params:oauth:grant-type:jwt-bearer")
	form.Set("assertion", signed)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		Error       string `json:"error"`
		ErrorDesc   string `json:"error_description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if result.Error != "" {
		return "", fmt.Errorf("token exchange error: %s (%s)", result.Error, result.ErrorDesc)
	}

	c.tokenCache = result.AccessToken
	c.tokenExpire = time.Now().Add(time.Duration(result.ExpiresIn-60) * time.Second)

	return result.AccessToken, nil
}

// doRequest performs an authenticated Sheets API call and decodes the
// response into result (when non-nil). Non-2xx responses surface the API's
// error message.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return fmt.Errorf("failed to obtain access token: %w", err)
	}

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method,
		sheetsBaseURL+"/"+c.spreadsheetID+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Error struct {
				Code    int    `json:"code"`
				Message string `json:"message"`
				Status  string `json:"status"`
			} `json:"error"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("sheets API error [%d %s]: %s (path=%s)",
				apiErr.Error.Code, apiErr.Error.Status, apiErr.Error.Message, path)
		}
		return fmt.Errorf("sheets API error: HTTP %d (path=%s)", resp.StatusCode, path)
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}

func sheetRange(sheet, a1Range string) string {
	return url.PathEscape(fmt.Sprintf("%s!%s", sheet, a1Range))
}

// GetRange implements Grid.
func (c *Client) GetRange(ctx context.Context, sheet, a1Range string) ([][]string, error) {
	var result struct {
		Values [][]interface{} `json:"values"`
	}
	path := "/values/" + sheetRange(sheet, a1Range)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}

	rows := make([][]string, len(result.Values))
	for i, row := range result.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellToString(cell)
		}
		rows[i] = cells
	}
	return rows, nil
}

// UpdateRange implements Grid. Values are written RAW so carrier phone
// numbers and zero-padded ids survive untouched.
func (c *Client) UpdateRange(ctx context.Context, sheet, a1Range string, values [][]string) error {
	path := "/values/" + sheetRange(sheet, a1Range) + "?valueInputOption=RAW"
	body := map[string]interface{}{
		"values": values,
	}
	return c.doRequest(ctx, http.MethodPut, path, body, nil)
}

// AppendRows implements Grid.
func (c *Client) AppendRows(ctx context.Context, sheet string, values [][]string) error {
	path := "/values/" + sheetRange(sheet, "A:Z") +
		":append?valueInputOption=RAW&insertDataOption=INSERT_ROWS"
	body := map[string]interface{}{
		"values": values,
	}
	return c.doRequest(ctx, http.MethodPost, path, body, nil)
}

// ClearRange implements Grid.
func (c *Client) ClearRange(ctx context.Context, sheet, a1Range string) error {
	path := "/values/" + sheetRange(sheet, a1Range) + ":clear"
	return c.doRequest(ctx, http.MethodPost, path, map[string]interface{}{}, nil)
}

func cellToString(cell interface{}) string {
	switch v := cell.(type) {
	case string:
		return v
	case float64:
		// The API returns untyped numbers for numeric cells.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
