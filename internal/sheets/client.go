package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Client talks to the Google Sheets v4 API with the caller's OAuth bearer
// token. One Client is built per request from the session credential; the
// editable flag carries the store-side write capability for that caller.
type Client struct {
	BaseURL       string
	SpreadsheetID string
	Token         string
	HTTP          *http.Client

	editable bool
}

func NewClient(spreadsheetID, accessToken string, editable bool) *Client {
	return &Client{
		BaseURL:       defaultBaseURL,
		SpreadsheetID: spreadsheetID,
		Token:         accessToken,
		editable:      editable,
		HTTP: &http.Client{
			Timeout: 20 * time.Second,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

func (c *Client) CanEdit() bool { return c.editable }

type valueRange struct {
	Range  string     `json:"range,omitempty"`
	Values [][]string `json:"values,omitempty"`
}

func (c *Client) GetRange(ctx context.Context, rangeRef string) ([][]string, error) {
	u := fmt.Sprintf("%s/%s/values/%s", c.BaseURL, c.SpreadsheetID, url.PathEscape(rangeRef))

	var out valueRange
	if err := c.do(ctx, http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return out.Values, nil
}

func (c *Client) UpdateRange(ctx context.Context, rangeRef string, values [][]string) error {
	u := fmt.Sprintf("%s/%s/values/%s?valueInputOption=USER_ENTERED",
		c.BaseURL, c.SpreadsheetID, url.PathEscape(rangeRef))
	return c.do(ctx, http.MethodPut, u, valueRange{Values: values}, nil)
}

func (c *Client) ClearRange(ctx context.Context, rangeRef string) error {
	u := fmt.Sprintf("%s/%s/values/%s:clear", c.BaseURL, c.SpreadsheetID, url.PathEscape(rangeRef))
	return c.do(ctx, http.MethodPost, u, struct{}{}, nil)
}

func (c *Client) AppendRow(ctx context.Context, rangeRef string, row []string) error {
	u := fmt.Sprintf("%s/%s/values/%s:append?valueInputOption=USER_ENTERED",
		c.BaseURL, c.SpreadsheetID, url.PathEscape(rangeRef))
	return c.do(ctx, http.MethodPost, u, valueRange{Values: [][]string{row}}, nil)
}

func (c *Client) BatchUpdate(ctx context.Context, data []RangeValues) error {
	payload := struct {
		ValueInputOption string       `json:"valueInputOption"`
		Data             []valueRange `json:"data"`
	}{ValueInputOption: "USER_ENTERED"}

	for _, d := range data {
		payload.Data = append(payload.Data, valueRange{Range: d.Range, Values: d.Values})
	}

	u := fmt.Sprintf("%s/%s/values:batchUpdate", c.BaseURL, c.SpreadsheetID)
	return c.do(ctx, http.MethodPost, u, payload, nil)
}

func (c *Client) BatchClear(ctx context.Context, rangeRefs []string) error {
	payload := struct {
		Ranges []string `json:"ranges"`
	}{Ranges: rangeRefs}

	u := fmt.Sprintf("%s/%s/values:batchClear", c.BaseURL, c.SpreadsheetID)
	return c.do(ctx, http.MethodPost, u, payload, nil)
}

// DeleteRow physically removes one row, shifting the rest up. Row deletion
// needs the sheet's numeric GID, not its name.
func (c *Client) DeleteRow(ctx context.Context, sheetGID int64, rowIndex int) error {
	type dimensionRange struct {
		SheetID    int64  `json:"sheetId"`
		Dimension  string `json:"dimension"`
		StartIndex int    `json:"startIndex"`
		EndIndex   int    `json:"endIndex"`
	}
	payload := struct {
		Requests []map[string]any `json:"requests"`
	}{
		Requests: []map[string]any{
			{
				"deleteDimension": map[string]any{
					"range": dimensionRange{
						SheetID:    sheetGID,
						Dimension:  "ROWS",
						StartIndex: rowIndex,
						EndIndex:   rowIndex + 1,
					},
				},
			},
		},
	}

	u := fmt.Sprintf("%s/%s:batchUpdate", c.BaseURL, c.SpreadsheetID)
	return c.do(ctx, http.MethodPost, u, payload, nil)
}

func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &TransportError{Status: resp.StatusCode, Body: string(b)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Err: err}
		}
	}
	return nil
}
