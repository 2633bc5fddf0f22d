// Package client is a typed client for the data service. It attaches
// the session's bearer token to every request; login and signup update
// the session, logout clears it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"DestinyRealEstate/apperr"
	"DestinyRealEstate/models"
	"DestinyRealEstate/session"
)

type Client struct {
	base string
	hc   *http.Client
	sess *session.Session
}

func New(base string, sess *session.Session) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		hc:   &http.Client{Timeout: 15 * time.Second},
		sess: sess,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token, ok := c.sess.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		if payload.Error == "" {
			payload.Error = resp.Status
		}
		switch {
		case resp.StatusCode == http.StatusBadRequest:
			return apperr.Validationf("%s", payload.Error)
		case resp.StatusCode == http.StatusNotFound:
			return apperr.NotFoundf("%s", payload.Error)
		case resp.StatusCode == http.StatusConflict:
			return apperr.Transitionf("%s", payload.Error)
		case resp.StatusCode == http.StatusPreconditionFailed:
			return apperr.Preconditionf("%s", payload.Error)
		default:
			return fmt.Errorf("%s %s: %s", method, path, payload.Error)
		}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Login authenticates and stores the returned token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (models.User, error) {
	var resp models.AuthResponse
	err := c.do(ctx, http.MethodPost, "/api/auth/login", models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return models.User{}, err
	}
	if err := c.sess.Set(resp.Token); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (models.User, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", req, &resp); err != nil {
		return models.User{}, err
	}
	if err := c.sess.Set(resp.Token); err != nil {
		return models.User{}, err
	}
	return resp.User, nil
}

// Logout clears the session token; subsequent requests go out without
// a bearer header.
func (c *Client) Logout() error {
	return c.sess.Clear()
}

func (c *Client) Me(ctx context.Context) (models.User, error) {
	var resp struct {
		User models.User `json:"user"`
	}
	err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &resp)
	return resp.User, err
}

// Properties fetches listings matching the filters. An empty filter
// returns the whole catalog.
func (c *Client) Properties(ctx context.Context, f models.SearchFilters) ([]models.Property, error) {
	q := url.Values{}
	if f.Location != "" {
		q.Set("location", f.Location)
	}
	if f.PriceMin != nil {
		q.Set("price_min", fmt.Sprintf("%g", *f.PriceMin))
	}
	if f.PriceMax != nil {
		q.Set("price_max", fmt.Sprintf("%g", *f.PriceMax))
	}
	if f.Duration != nil {
		q.Set("duration", string(*f.Duration))
	}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Bedrooms != nil {
		q.Set("bedrooms", fmt.Sprintf("%d", *f.Bedrooms))
	}
	if f.Bathrooms != nil {
		q.Set("bathrooms", fmt.Sprintf("%d", *f.Bathrooms))
	}
	if len(f.Amenities) > 0 {
		q.Set("amenities", strings.Join(f.Amenities, ","))
	}
	if f.Verified != nil {
		q.Set("verified", fmt.Sprintf("%t", *f.Verified))
	}
	if f.Available != nil {
		q.Set("available", fmt.Sprintf("%t", *f.Available))
	}

	path := "/api/properties"
	if enc := q.Encode(); enc != "" {
		path += "?" + enc
	}
	var resp struct {
		Properties []models.Property `json:"properties"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	return resp.Properties, err
}

func (c *Client) CreateProperty(ctx context.Context, req models.CreatePropertyRequest) (models.Property, error) {
	var resp struct {
		Property models.Property `json:"property"`
	}
	err := c.do(ctx, http.MethodPost, "/api/properties", req, &resp)
	return resp.Property, err
}

func (c *Client) Projects(ctx context.Context) ([]models.ConstructionProject, error) {
	var resp struct {
		Projects []models.ConstructionProject `json:"projects"`
	}
	err := c.do(ctx, http.MethodGet, "/api/construction", nil, &resp)
	return resp.Projects, err
}

func (c *Client) CreateProject(ctx context.Context, req models.CreateProjectRequest) (models.ConstructionProject, error) {
	var resp struct {
		Project models.ConstructionProject `json:"project"`
	}
	err := c.do(ctx, http.MethodPost, "/api/construction", req, &resp)
	return resp.Project, err
}

func (c *Client) Wishlist(ctx context.Context) ([]models.WishlistItem, error) {
	var resp struct {
		Wishlist []models.WishlistItem `json:"wishlist"`
	}
	err := c.do(ctx, http.MethodGet, "/api/wishlist", nil, &resp)
	return resp.Wishlist, err
}

func (c *Client) AddToWishlist(ctx context.Context, propertyID string) (models.WishlistItem, error) {
	var resp struct {
		WishlistItem models.WishlistItem `json:"wishlistItem"`
	}
	err := c.do(ctx, http.MethodPost, "/api/wishlist", map[string]string{"propertyId": propertyID}, &resp)
	return resp.WishlistItem, err
}

func (c *Client) RemoveFromWishlist(ctx context.Context, propertyID string) error {
	return c.do(ctx, http.MethodDelete, "/api/wishlist/"+propertyID, nil, nil)
}
