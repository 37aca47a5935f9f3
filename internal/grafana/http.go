package grafana

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dashmover/dashmover/internal/config"
	"github.com/dashmover/dashmover/internal/logger"
	"github.com/dashmover/dashmover/models"
	"github.com/go-resty/resty/v2"
)

// searchPageLimit matches the Grafana /api/search hard page cap.
const searchPageLimit = 5000

type httpClient struct {
	client *resty.Client
	cfg    config.Grafana

	logger *logger.Logger
}

// NewHTTPClient constructs an HTTP/REST implementation of [Client].
// It normalises and validates the base URL from cfg.Endpoint, configures the
// underlying resty client with the resolved base URL and per-request
// timeout, and installs the authentication header: either the static
// cfg.AuthHeader pair, or "Authorization: <AuthType><APIToken>".
//
// Returns an error if cfg.Endpoint is empty or cannot be parsed as a valid
// URL.
func NewHTTPClient(cfg config.Grafana, timeout time.Duration, log *logger.Logger) (Client, error) {
	baseURL, err := normalizeBaseURL(cfg.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid grafana endpoint: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Cache-Control", "no-cache")

	if cfg.AuthHeader.Key != "" {
		client.SetHeader(cfg.AuthHeader.Key, cfg.AuthHeader.Value)
	} else {
		authType := cfg.AuthType
		if authType == "" {
			authType = config.DefaultAuthType
		}
		client.SetHeader("Authorization", authType+cfg.APIToken)
	}

	return &httpClient{client: client, cfg: cfg, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SearchDashboards implements [Client]. It GETs /api/search with
// type=dash-db, scoped to the configured org.
func (h *httpClient) SearchDashboards(ctx context.Context) ([]models.SearchHit, error) {
	return h.search(ctx, models.SearchTypeDashboard)
}

// SearchFolders implements [Client]. It GETs /api/search with
// type=dash-folder, scoped to the configured org.
func (h *httpClient) SearchFolders(ctx context.Context) ([]models.SearchHit, error) {
	return h.search(ctx, models.SearchTypeFolder)
}

func (h *httpClient) search(ctx context.Context, searchType string) ([]models.SearchHit, error) {
	var hits []models.SearchHit

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(searchPageLimit)).
		SetQueryParam("type", searchType).
		SetResult(&hits)
	if h.cfg.OrgID != 0 {
		req.SetQueryParam("orgId", strconv.FormatInt(h.cfg.OrgID, 10))
	}

	resp, err := req.Get("/api/search")
	if err != nil {
		return nil, fmt.Errorf("%w: search request: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return hits, nil
}

// dashboardEnvelope is the body of GET /api/dashboards/uid/{uid}.
type dashboardEnvelope struct {
	Dashboard json.RawMessage `json:"dashboard"`
	Meta      struct {
		FolderUID   string `json:"folderUid"`
		FolderTitle string `json:"folderTitle"`
	} `json:"meta"`
}

// GetDashboard implements [Client]. It fetches the full payload from
// GET /api/dashboards/uid/{uid} and extracts uid/title/folder attributes,
// keeping the dashboard body opaque.
func (h *httpClient) GetDashboard(ctx context.Context, uid string) (models.Dashboard, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("uid", uid).
		Get("/api/dashboards/uid/{uid}")
	if err != nil {
		return models.Dashboard{}, fmt.Errorf("%w: get dashboard %s: %v", ErrTransient, uid, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Dashboard{}, err
	}

	var envelope dashboardEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.Dashboard{}, fmt.Errorf("decode dashboard %s: %w", uid, err)
	}
	if len(envelope.Dashboard) == 0 {
		return models.Dashboard{}, fmt.Errorf("%w: dashboard %s has no body", ErrValidation, uid)
	}

	var head struct {
		UID   string `json:"uid"`
		Title string `json:"title"`
	}
	if err = json.Unmarshal(envelope.Dashboard, &head); err != nil {
		return models.Dashboard{}, fmt.Errorf("decode dashboard head %s: %w", uid, err)
	}

	return models.Dashboard{
		UID:         head.UID,
		Title:       head.Title,
		FolderUID:   envelope.Meta.FolderUID,
		FolderTitle: envelope.Meta.FolderTitle,
		OrgID:       h.cfg.OrgID,
		Payload:     envelope.Dashboard,
		FetchedAt:   time.Now().UTC(),
	}, nil
}

// PostDashboard implements [Client]. It POSTs the payload to
// /api/dashboards/db as an idempotent upsert keyed by the uid inside the
// payload. Pushing the same payload twice leaves the destination in the
// state reached after the first push.
func (h *httpClient) PostDashboard(ctx context.Context, dashboard models.Dashboard, folderUID string, overwrite bool) (string, error) {
	body := struct {
		Dashboard json.RawMessage `json:"dashboard"`
		FolderUID string          `json:"folderUid,omitempty"`
		Overwrite bool            `json:"overwrite"`
	}{
		Dashboard: dashboard.Payload,
		FolderUID: folderUID,
		Overwrite: overwrite,
	}

	var result struct {
		UID string `json:"uid"`
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post("/api/dashboards/db")
	if err != nil {
		return "", fmt.Errorf("%w: post dashboard %s: %v", ErrTransient, dashboard.UID, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if result.UID == "" {
		result.UID = dashboard.UID
	}
	return result.UID, nil
}

// CreateFolder implements [Client]. It POSTs to /api/folders; ParentUID is
// sent as parentUid when set.
func (h *httpClient) CreateFolder(ctx context.Context, folder models.Folder) error {
	body := struct {
		UID       string `json:"uid"`
		Title     string `json:"title"`
		ParentUID string `json:"parentUid,omitempty"`
	}{
		UID:       folder.UID,
		Title:     folder.Title,
		ParentUID: folder.ParentUID,
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/api/folders")
	if err != nil {
		return fmt.Errorf("%w: create folder %s: %v", ErrTransient, folder.UID, err)
	}

	return mapHTTPError(resp)
}

// ListFolders implements [Client]. It GETs /api/folders scoped to the
// configured org and, when parentUID is non-empty, to that parent folder.
func (h *httpClient) ListFolders(ctx context.Context, parentUID string) ([]models.Folder, error) {
	var rows []struct {
		UID   string `json:"uid"`
		Title string `json:"title"`
	}

	req := h.client.R().
		SetContext(ctx).
		SetResult(&rows)
	if h.cfg.OrgID != 0 {
		req.SetQueryParam("orgId", strconv.FormatInt(h.cfg.OrgID, 10))
	}
	if parentUID != "" {
		req.SetQueryParam("parentUid", parentUID)
	}

	resp, err := req.Get("/api/folders")
	if err != nil {
		return nil, fmt.Errorf("%w: list folders: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	folders := make([]models.Folder, 0, len(rows))
	for _, row := range rows {
		folders = append(folders, models.Folder{UID: row.UID, Title: row.Title, ParentUID: parentUID})
	}
	return folders, nil
}

// FolderByTitle implements [Client]. It scans ListFolders output for an
// exact title match and returns nil when absent.
func (h *httpClient) FolderByTitle(ctx context.Context, title, parentUID string) (*models.Folder, error) {
	folders, err := h.ListFolders(ctx, parentUID)
	if err != nil {
		return nil, err
	}

	for i := range folders {
		if folders[i].Title == title {
			return &folders[i], nil
		}
	}
	return nil, nil
}

// ListDatasources implements [Client]. It GETs /api/datasources scoped to
// the configured org.
func (h *httpClient) ListDatasources(ctx context.Context) ([]models.Datasource, error) {
	var datasources []models.Datasource

	req := h.client.R().
		SetContext(ctx).
		SetQueryParam("limit", strconv.Itoa(searchPageLimit)).
		SetResult(&datasources)
	if h.cfg.OrgID != 0 {
		req.SetQueryParam("orgId", strconv.FormatInt(h.cfg.OrgID, 10))
	}

	resp, err := req.Get("/api/datasources")
	if err != nil {
		return nil, fmt.Errorf("%w: list datasources: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return datasources, nil
}

// SwitchOrg implements [Client]. It POSTs /api/user/using/{org} and then
// reads /api/org back to verify the active org actually changed; some
// deployments accept the switch call but keep the token pinned to one org.
func (h *httpClient) SwitchOrg(ctx context.Context) error {
	if !h.cfg.SwitchOrgEnabled() || h.cfg.OrgID == 0 {
		return nil
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("org", strconv.FormatInt(h.cfg.OrgID, 10)).
		Post("/api/user/using/{org}")
	if err != nil {
		return fmt.Errorf("%w: switch org request: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	var current struct {
		ID int64 `json:"id"`
	}
	resp, err = h.client.R().
		SetContext(ctx).
		SetResult(&current).
		Get("/api/org")
	if err != nil {
		return fmt.Errorf("%w: read active org: %v", ErrTransient, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if current.ID != h.cfg.OrgID {
		return fmt.Errorf("%w: wanted org %d, active org is %d", ErrOrgSwitch, h.cfg.OrgID, current.ID)
	}

	h.logger.Debug().Int64("org_id", h.cfg.OrgID).Msg("switched active organization")
	return nil
}
