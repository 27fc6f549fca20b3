package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/internal/hotel"
)

// Service keeps the chain's room inventory in step with a remote feed. It only
// ever adds hotels and rooms.
type Service struct {
	cfg      config.InventoryConfig
	chain    *hotel.Chain
	client   *http.Client
	onChange func()
}

// Option configures a Service.
type Option func(*Service)

// WithChangeHook registers fn to run after a sync cycle that added hotels or
// rooms, e.g. to flush cached listings.
func WithChangeHook(fn func()) Option {
	return func(s *Service) {
		s.onChange = fn
	}
}

// SyncResult summarises one sync cycle.
type SyncResult struct {
	Fetched     int
	HotelsAdded int
	RoomsAdded  int
	Rejected    int
}

// NewService creates and initializes a new inventory service.
func NewService(cfg config.InventoryConfig, chain *hotel.Chain, opts ...Option) *Service {
	var transport http.RoundTripper = &http.Transport{}
	if cfg.HTTPProxy != "" {
		proxyURL, err := url.Parse(cfg.HTTPProxy)
		if err != nil {
			log.Printf("Warning: Invalid proxy URL %q: %v. Inventory sync will not use a proxy.", cfg.HTTPProxy, err)
		} else {
			transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 100
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}

	s := &Service{
		cfg:   cfg,
		chain: chain,
		client: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run syncs once immediately and then on every interval until ctx is done.
func (s *Service) Run(ctx context.Context) {
	if !s.cfg.Enabled || s.cfg.URL == "" {
		log.Println("Inventory sync is disabled. Not starting.")
		return
	}
	log.Println("Starting inventory sync service...")

	s.logSync(ctx)

	timer := time.NewTimer(s.cfg.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Inventory sync service shutting down.")
			return
		case <-timer.C:
			s.logSync(ctx)
			timer.Reset(s.cfg.Interval)
		}
	}
}

func (s *Service) logSync(ctx context.Context) {
	result, err := s.SyncOnce(ctx)
	if err != nil {
		log.Printf("Inventory sync failed: %v", err)
		return
	}
	log.Printf("Inventory sync finished: %d items, %d hotels added, %d rooms added, %d rejected",
		result.Fetched, result.HotelsAdded, result.RoomsAdded, result.Rejected)
}

// SyncOnce fetches every feed page and adds unknown hotels and rooms. A fetch
// error that leaves no items aborts the cycle; items fetched before a later
// page failed are still applied.
func (s *Service) SyncOnce(ctx context.Context) (SyncResult, error) {
	var result SyncResult

	var items []FeedItem
	total := 1
	pageSize := s.cfg.PageSize
	var fetchErr error
	for page := 1; (page-1)*pageSize < total; page++ {
		resp, err := s.fetchPage(ctx, page)
		if err != nil {
			log.Printf("Error fetching inventory page %d: %v", page, err)
			fetchErr = err
			break
		}
		if resp.Data.Total == 0 || len(resp.Data.Items) == 0 {
			break
		}
		total = resp.Data.Total
		items = append(items, resp.Data.Items...)
	}
	result.Fetched = len(items)

	if fetchErr != nil && len(items) == 0 {
		return result, fetchErr
	}

	for _, item := range items {
		_, created, err := ensureHotel(s.chain, item.Hotel)
		if err != nil {
			log.Printf("Warning: skipping room %d of %q: %v", item.Room, item.Hotel, err)
			result.Rejected++
			continue
		}
		if created {
			result.HotelsAdded++
		}

		added, err := addRoom(s.chain, item)
		if err != nil {
			log.Printf("Warning: skipping room %d of %q: %v", item.Room, item.Hotel, err)
			result.Rejected++
			continue
		}
		if added {
			result.RoomsAdded++
		}
	}
	if (result.HotelsAdded > 0 || result.RoomsAdded > 0) && s.onChange != nil {
		s.onChange()
	}
	return result, nil
}

// fetchPage fetches a single page of the inventory feed.
func (s *Service) fetchPage(ctx context.Context, page int) (*FeedResponse, error) {
	u, err := url.Parse(s.cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed url: %w", err)
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(s.cfg.PageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	for key, value := range s.cfg.Headers {
		req.Header.Set(key, value)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var feedResp FeedResponse
	if err := json.Unmarshal(body, &feedResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feed response: %w", err)
	}

	if feedResp.Code != 0 {
		return nil, fmt.Errorf("feed returned non-zero application code: %d", feedResp.Code)
	}

	return &feedResp, nil
}
